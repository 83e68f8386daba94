package main

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/thumbsheet/internal/pipeline"
	"github.com/backmassage/thumbsheet/internal/term"
)

var _ pipeline.Observer = (*progressUI)(nil)

// progressUI renders a spinner with running counts. The total is unknown
// up front since files are dispatched while the tree is still being walked.
type progressUI struct {
	bar     *progressbar.ProgressBar
	created int
	skipped int
	failed  int
}

func newProgressUI(w io.Writer) *progressUI {
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Scanning"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionEnableColorCodes(term.Enabled()),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return &progressUI{bar: bar}
}

func (p *progressUI) OnOutcome(_ string, o pipeline.Outcome) {
	switch o {
	case pipeline.OutcomeCreated, pipeline.OutcomePlanned:
		p.created++
	case pipeline.OutcomeSkipped:
		p.skipped++
	case pipeline.OutcomeFailed:
		p.failed++
	}
	p.bar.Describe(p.description())
	_ = p.bar.Add(1)
}

func (p *progressUI) OnDone(pipeline.RunStats) {
	_ = p.bar.Finish()
}

func (p *progressUI) description() string {
	return fmt.Sprintf("%d created, %d skipped, %d failed", p.created, p.skipped, p.failed)
}
