package pipeline

import (
	"context"
	"time"

	"github.com/backmassage/thumbsheet/internal/config"
	"github.com/backmassage/thumbsheet/internal/display"
	"github.com/backmassage/thumbsheet/internal/ffmpeg"
	"github.com/backmassage/thumbsheet/internal/logging"
)

// Options carries the optional collaborators of a run.
type Options struct {
	Exec     ffmpeg.ExecFunc // Defaults to ffmpeg.Executor(cfg.Verbose).
	Probe    ProbeFunc       // nil disables verbose frame counts.
	Observer Observer        // nil for none.

	beforeList func(dir string) // Runs just before a directory is listed.
}

// Run walks cfg.VideosDir, dispatches every regular file in walk order, and
// returns aggregate stats. Per-file and per-directory failures are logged
// and counted; Run itself never fails. The caller is expected to have
// checked that the root exists.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, opts Options) RunStats {
	start := time.Now()
	var stats RunStats

	exec := opts.Exec
	if exec == nil {
		exec = ffmpeg.Executor(cfg.Verbose)
	}
	d := NewDispatcher(cfg, log, exec, opts.Probe, &stats)

	logHeader(cfg, log)

	w := &Walker{
		OnDir: func(dir string) {
			stats.Dirs++
			if opts.beforeList != nil {
				opts.beforeList(dir)
			}
		},
		OnDirError: func(dir string, err error) {
			stats.DirErrors++
			log.Error("Error reading directory %s: %v", dir, err)
		},
		OnFile: func(ctx context.Context, path string) {
			stats.Files++
			o := d.Dispatch(ctx, path)
			if o != OutcomeIgnored && opts.Observer != nil {
				opts.Observer.OnOutcome(path, o)
			}
		},
	}
	w.Walk(ctx, cfg.VideosDir)

	if ctx.Err() != nil {
		log.Warn("Interrupted")
	}

	stats.Elapsed = time.Since(start)
	if opts.Observer != nil {
		opts.Observer.OnDone(stats)
	}
	logSummary(cfg, log, &stats)
	return stats
}

// --- Logging helpers ---

func logHeader(cfg *config.Config, log *logging.Logger) {
	log.Info("Processing videos in: %s", cfg.VideosDir)
	log.Info("Montage: one frame every %ds within the first %ds, %dpx wide, %s grid",
		cfg.IntervalSeconds, cfg.WindowSeconds, cfg.Width, cfg.Tile)
	if cfg.DryRun {
		log.Warn("DRY RUN: no thumbnails will be written")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Processing complete")
	log.Debug("Scanned %d directories, %d files, %d videos", stats.Dirs, stats.Files, stats.Candidates)
	if cfg.DryRun {
		log.Info("Would create: %d", stats.Planned)
	} else {
		log.Info("Created: %d (%s)", stats.Created, display.FormatBytes(stats.OutputBytes))
	}
	log.Info("Skipped (exists): %d", stats.Skipped)

	if stats.Failed > 0 {
		log.Warn("Failed: %d", stats.Failed)
	} else {
		log.Info("Failed: 0")
	}
	if stats.DirErrors > 0 {
		log.Warn("Unreadable directories: %d", stats.DirErrors)
	}
	log.Info("Elapsed: %s", display.FormatDuration(stats.Elapsed))
}
