package planner

import (
	"fmt"

	"github.com/backmassage/thumbsheet/internal/config"
	"github.com/backmassage/thumbsheet/internal/naming"
)

// MontagePlan is everything needed to produce one contact sheet.
type MontagePlan struct {
	InputPath       string
	OutputPath      string
	WindowSeconds   int
	IntervalSeconds int
	Width           int
	Tile            config.TileGrid
}

// BuildPlan produces the plan for input from cfg. The output path comes
// from naming.SummaryPath and is independent of cfg.
func BuildPlan(cfg *config.Config, input string) *MontagePlan {
	return &MontagePlan{
		InputPath:       input,
		OutputPath:      naming.SummaryPath(input),
		WindowSeconds:   cfg.WindowSeconds,
		IntervalSeconds: cfg.IntervalSeconds,
		Width:           cfg.Width,
		Tile:            cfg.Tile,
	}
}

// SelectExpr is the ffmpeg select filter expression for the plan.
func (p *MontagePlan) SelectExpr() string {
	return fmt.Sprintf("lte(t,%d)*not(mod(t,%d))", p.WindowSeconds, p.IntervalSeconds)
}

// FilterGraph returns the -vf value: select, scale (aspect preserved), tile.
// The select expression is single-quoted so its commas are not read as
// filter separators.
func (p *MontagePlan) FilterGraph() string {
	return fmt.Sprintf("select='%s',scale=%d:-1,tile=%s", p.SelectExpr(), p.Width, p.Tile)
}
