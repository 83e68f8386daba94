package config

// This file implements CLI flag binding on a pflag.FlagSet (owned by the
// cobra root command). Flags are staged into a separate Config and only the
// ones the user actually set are copied over, so a --config file sits
// between the defaults and the command line.

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flags holds the staged flag values for one command invocation.
type Flags struct {
	fs      *pflag.FlagSet
	staged  Config
	negated negatedFlags
}

// negatedFlags holds boolean flags that are applied after parsing rather
// than bound to a Config field directly.
type negatedFlags struct {
	forceColor bool
	noColor    bool
}

// BindFlags registers every flag on fs and returns the handle used to
// resolve the effective Config after parsing.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs, staged: DefaultConfig()}

	defineScanFlags(fs, &f.staged)
	defineMontageFlags(fs, &f.staged)
	defineBehaviorFlags(fs, &f.staged)
	defineDisplayFlags(fs, &f.staged, &f.negated)

	return f
}

// defineScanFlags registers -d/--videos-dir and --config.
func defineScanFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.VideosDir, "videos-dir", "d", cfg.VideosDir, "Root directory to scan for videos")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config file applied before flags")
}

// defineMontageFlags registers the sampling and layout flags.
func defineMontageFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.IntervalSeconds, "montage-interval-seconds", cfg.IntervalSeconds, "Frame sampling interval in seconds")
	fs.IntVar(&cfg.WindowSeconds, "montage-window-seconds", cfg.WindowSeconds, "Only sample frames within the first N seconds")
	fs.Var(&tileValue{&cfg.Tile}, "tile", "Tile grid for the output montage (<columns>x<rows>)")
}

// defineBehaviorFlags registers --dry-run, --check and --progress.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Log the ffmpeg commands without running them")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.ShowProgress, "progress", false, "Show a progress spinner on stderr")
}

// defineDisplayFlags registers -v/--verbose, --color, --no-color and -l/--log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log skipped files and every ffmpeg command")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
}

// Resolve builds the effective Config: defaults, then the --config file (if
// any), then every flag explicitly set on the command line.
func (f *Flags) Resolve() (Config, error) {
	cfg := DefaultConfig()

	if f.staged.ConfigFile != "" {
		cfg.ConfigFile = f.staged.ConfigFile
		if err := LoadFile(f.staged.ConfigFile, &cfg); err != nil {
			return cfg, err
		}
	}

	f.applyChanged(&cfg)
	applyNegatedFlags(&cfg, &f.negated)
	return cfg, nil
}

// applyChanged copies staged values for flags the user set.
func (f *Flags) applyChanged(cfg *Config) {
	set := func(name string, apply func()) {
		if f.fs.Changed(name) {
			apply()
		}
	}
	s := &f.staged

	set("videos-dir", func() { cfg.VideosDir = s.VideosDir })
	set("montage-interval-seconds", func() { cfg.IntervalSeconds = s.IntervalSeconds })
	set("montage-window-seconds", func() { cfg.WindowSeconds = s.WindowSeconds })
	set("tile", func() { cfg.Tile = s.Tile })
	set("dry-run", func() { cfg.DryRun = s.DryRun })
	set("check", func() { cfg.CheckOnly = s.CheckOnly })
	set("progress", func() { cfg.ShowProgress = s.ShowProgress })
	set("verbose", func() { cfg.Verbose = s.Verbose })
	set("log", func() { cfg.LogFile = s.LogFile })
}

// applyNegatedFlags resolves --color / --no-color into ColorMode. --no-color wins.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	}
}

// pflag.Value adapter for TileGrid.

type tileValue struct{ p *TileGrid }

func (t *tileValue) String() string {
	if t.p == nil {
		return ""
	}
	return t.p.String()
}

func (t *tileValue) Type() string { return "CxR" }

func (t *tileValue) Set(s string) error {
	tile, err := ParseTile(s)
	if err != nil {
		return fmt.Errorf("invalid tile %q (use <columns>x<rows>, e.g. 5x5)", s)
	}
	*t.p = tile
	return nil
}
