// Command thumbsheet walks a directory tree and writes a JPEG contact sheet
// next to every .mp4/.mkv video that does not already have one.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/thumbsheet/internal/check"
	"github.com/backmassage/thumbsheet/internal/config"
	"github.com/backmassage/thumbsheet/internal/display"
	"github.com/backmassage/thumbsheet/internal/logging"
	"github.com/backmassage/thumbsheet/internal/pipeline"
	"github.com/backmassage/thumbsheet/internal/probe"
	"github.com/backmassage/thumbsheet/internal/term"
)

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

// errReported marks failures that were already logged; main only sets the
// exit status for them.
var errReported = errors.New("reported")

// errMissingRoot is returned when the videos directory does not exist.
var errMissingRoot = fmt.Errorf("%w: videos directory missing", errReported)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "thumbsheet: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thumbsheet",
		Short: "Generate contact-sheet thumbnails for a video library",
		Long: `thumbsheet recursively scans a directory for .mp4 and .mkv files and,
for each video without one, renders <name>_summary.jpg next to it: a grid
of frames sampled at a fixed interval from the start of the video.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), flags)
	}
	return cmd
}

func run(parent context.Context, flags *config.Flags) error {
	// 1. Resolve defaults, config file, and flags; validate.
	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)

	// 2. --check: diagnostics only.
	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return errReported
		}
		return nil
	}

	// 3. The root must exist; anything below it is handled per directory.
	if fi, err := os.Stat(cfg.VideosDir); err != nil || !fi.IsDir() {
		log.Error("Directory does not exist: %s", cfg.VideosDir)
		return errMissingRoot
	}

	// 4. ffmpeg is required; ffprobe only feeds verbose diagnostics.
	haveProbe := true
	if err := check.CheckDeps(); err != nil {
		if !errors.Is(err, check.ErrFfprobeNotFound) {
			log.Error("%v", err)
			return errReported
		}
		log.Warn("%v", err)
		haveProbe = false
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := pipeline.Options{}
	if cfg.Verbose && haveProbe {
		opts.Probe = probe.Probe
	}
	if cfg.ShowProgress && term.IsTerminal(os.Stderr) {
		opts.Observer = newProgressUI(os.Stderr)
	}

	pipeline.Run(ctx, &cfg, log, opts)
	return nil
}
