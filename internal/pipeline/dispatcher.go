package pipeline

import (
	"context"
	"os"
	"strings"

	"github.com/backmassage/thumbsheet/internal/config"
	"github.com/backmassage/thumbsheet/internal/display"
	"github.com/backmassage/thumbsheet/internal/ffmpeg"
	"github.com/backmassage/thumbsheet/internal/logging"
	"github.com/backmassage/thumbsheet/internal/naming"
	"github.com/backmassage/thumbsheet/internal/planner"
	"github.com/backmassage/thumbsheet/internal/probe"
)

// Outcome is the terminal state of one file.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // Not a video.
	OutcomeSkipped                // Sheet already exists.
	OutcomeCreated
	OutcomeFailed
	OutcomePlanned // Dry run: would have been created.
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCreated:
		return "created"
	case OutcomeFailed:
		return "failed"
	case OutcomePlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// ProbeFunc reads media metadata. Only used for verbose frame counts.
type ProbeFunc func(ctx context.Context, path string) (*probe.ProbeResult, error)

// stderrTailLines is how much ffmpeg output is echoed after a failure when
// it was not already streamed to the terminal.
const stderrTailLines = 5

// Dispatcher decides what to do with a single file and, for videos without
// a sheet, runs ffmpeg to completion before returning.
type Dispatcher struct {
	cfg   *config.Config
	log   *logging.Logger
	exec  ffmpeg.ExecFunc
	probe ProbeFunc
	stats *RunStats
}

// NewDispatcher returns a Dispatcher that records into stats. exec must not
// be nil; probe may be.
func NewDispatcher(cfg *config.Config, log *logging.Logger, exec ffmpeg.ExecFunc, probe ProbeFunc, stats *RunStats) *Dispatcher {
	if stats == nil {
		stats = &RunStats{}
	}
	return &Dispatcher{cfg: cfg, log: log, exec: exec, probe: probe, stats: stats}
}

// Dispatch handles one regular file. Non-videos are ignored silently. A
// video whose sheet already exists is skipped without invoking ffmpeg.
// Failures are logged with the input path and reported as OutcomeFailed;
// they never propagate.
func (d *Dispatcher) Dispatch(ctx context.Context, path string) Outcome {
	if !naming.IsCandidate(path) {
		return OutcomeIgnored
	}
	d.stats.Candidates++

	o := d.dispatch(ctx, path)
	d.stats.record(o)
	return o
}

func (d *Dispatcher) dispatch(ctx context.Context, path string) Outcome {
	plan := planner.BuildPlan(d.cfg, path)

	// Existence only: a zero-byte or corrupt sheet still counts.
	if _, err := os.Stat(plan.OutputPath); err == nil {
		d.log.Debug("Skipping (thumbnail exists): %s", path)
		return OutcomeSkipped
	}

	args := ffmpeg.Build(plan, d.cfg.Verbose)
	d.log.Info("Generating thumbnail for: %s", path)
	d.log.Debug("  $ %s", display.CommandLine(args))
	d.logSampling(ctx, plan)

	if d.cfg.DryRun {
		d.log.Success("[DRY] Would create %s", plan.OutputPath)
		return OutcomePlanned
	}

	res := d.exec(ctx, args)
	if res.Err != nil {
		if ctx.Err() != nil {
			d.log.Warn("Interrupted while processing %s", path)
		} else {
			d.log.Error("Error generating thumbnail for %s: %s", path, failureReason(res))
			if !d.cfg.Verbose {
				logStderr(d.log, res.Stderr)
			}
		}
		return OutcomeFailed
	}

	if fi, err := os.Stat(plan.OutputPath); err == nil {
		d.stats.OutputBytes += fi.Size()
		d.log.Success("Thumbnail created: %s (%s)", plan.OutputPath, display.FormatBytes(fi.Size()))
	} else {
		d.log.Success("Thumbnail created: %s", plan.OutputPath)
	}
	return OutcomeCreated
}

// logSampling reports, in verbose mode, how many frames the sheet will hold.
func (d *Dispatcher) logSampling(ctx context.Context, plan *planner.MontagePlan) {
	if !d.log.Verbose() || d.probe == nil {
		return
	}
	pr, err := d.probe(ctx, plan.InputPath)
	if err != nil {
		d.log.Debug("  probe failed: %v", err)
		return
	}
	dur := pr.Format.Duration
	tiled := len(plan.TiledTimes(dur))
	d.log.Debug("  %s, %.1fs: %d of %d slots filled", pr.Resolution(), dur, tiled, plan.Tile.Slots())
	if dropped := plan.DroppedFrames(dur); dropped > 0 {
		d.log.Debug("  %d sampled frames do not fit the %s grid", dropped, plan.Tile)
	}
}

// failureReason prefers a classified stderr message over the bare exit error.
func failureReason(res ffmpeg.ExecResult) string {
	if reason := ffmpeg.Classify(res.Stderr); reason != "" {
		return reason
	}
	return res.Err.Error()
}

func logStderr(log *logging.Logger, stderr string) {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return
	}
	lines := strings.Split(stderr, "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	for _, l := range lines {
		log.Error("  %s", l)
	}
}
