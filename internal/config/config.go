// Package config holds runtime configuration: defaults, YAML file overlay,
// CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by Validate and ParseTile.
var (
	ErrInvalidTile     = errors.New("invalid tile grid (use <columns>x<rows>, e.g. 5x5)")
	ErrInvalidColor    = errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	ErrEmptyVideosDir  = errors.New("videos directory must not be empty")
	ErrNonPositiveSecs = errors.New("montage window and interval must be positive")
	ErrNonPositiveW    = errors.New("frame width must be positive")
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// TileGrid is the columns x rows layout of the output montage.
type TileGrid struct {
	Columns int
	Rows    int
}

// Slots returns how many frames fit in the grid.
func (t TileGrid) Slots() int { return t.Columns * t.Rows }

// String renders the grid in ffmpeg's tile filter syntax ("5x5").
func (t TileGrid) String() string {
	return strconv.Itoa(t.Columns) + "x" + strconv.Itoa(t.Rows)
}

// ParseTile parses "<columns>x<rows>". Both parts must be positive integers.
func ParseTile(s string) (TileGrid, error) {
	cols, rows, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return TileGrid{}, fmt.Errorf("%w: %q", ErrInvalidTile, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cols))
	if err != nil || c <= 0 {
		return TileGrid{}, fmt.Errorf("%w: %q", ErrInvalidTile, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rows))
	if err != nil || r <= 0 {
		return TileGrid{}, fmt.Errorf("%w: %q", ErrInvalidTile, s)
	}
	return TileGrid{Columns: c, Rows: r}, nil
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], then by CLI flags, and is read-only
// once the pipeline starts.
type Config struct {
	// Scan root.
	VideosDir string // Default: "/mnt/o/_obs/_test".

	// Montage sampling.
	WindowSeconds   int      // Default: 750. Frames after this point are never sampled.
	IntervalSeconds int      // Default: 30.
	Tile            TileGrid // Default: 5x5.
	Width           int      // Default: 320 px, height follows aspect ratio.

	// Behavior flags.
	DryRun       bool // Log the commands that would run; write nothing.
	CheckOnly    bool // Run --check diagnostics and exit.
	ShowProgress bool // Spinner on stderr while walking.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Optional YAML file loaded before flags apply.
}

// DefaultConfig returns a Config with the script's defaults.
func DefaultConfig() Config {
	return Config{
		VideosDir:       "/mnt/o/_obs/_test",
		WindowSeconds:   750,
		IntervalSeconds: 30,
		Tile:            TileGrid{Columns: 5, Rows: 5},
		Width:           320,
		ColorMode:       ColorAuto,
	}
}

// fileConfig is the YAML shape. Pointer fields distinguish "absent" from
// zero so a partial file only overrides what it names.
type fileConfig struct {
	VideosDir       *string `yaml:"videos_dir"`
	WindowSeconds   *int    `yaml:"montage_window_seconds"`
	IntervalSeconds *int    `yaml:"montage_interval_seconds"`
	Tile            *string `yaml:"tile"`
	Width           *int    `yaml:"width"`
	Verbose         *bool   `yaml:"verbose"`
	Color           *string `yaml:"color"`
	LogFile         *string `yaml:"log_file"`
}

// LoadFile reads a YAML config file and overlays the keys it sets onto cfg.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.VideosDir != nil {
		cfg.VideosDir = *fc.VideosDir
	}
	if fc.WindowSeconds != nil {
		cfg.WindowSeconds = *fc.WindowSeconds
	}
	if fc.IntervalSeconds != nil {
		cfg.IntervalSeconds = *fc.IntervalSeconds
	}
	if fc.Tile != nil {
		tile, err := ParseTile(*fc.Tile)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Tile = tile
	}
	if fc.Width != nil {
		cfg.Width = *fc.Width
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != nil {
		cfg.ColorMode = ColorMode(strings.ToLower(*fc.Color))
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks numeric ranges and enum fields. The videos directory is
// only required when not in CheckOnly mode; its existence is checked by the
// caller since a missing root is a distinct, fatal condition.
func (c *Config) Validate() error {
	if c.WindowSeconds <= 0 || c.IntervalSeconds <= 0 {
		return ErrNonPositiveSecs
	}
	if c.Width <= 0 {
		return ErrNonPositiveW
	}
	if c.Tile.Columns <= 0 || c.Tile.Rows <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTile, c.Tile)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.ColorMode)
	}

	if c.CheckOnly {
		return nil
	}
	c.VideosDir = NormalizeDirArg(c.VideosDir)
	if c.VideosDir == "" {
		return ErrEmptyVideosDir
	}

	// ffmpeg reads "name:..." as a protocol URL, so a bare relative path such
	// as "clip:1.mp4" (from -d .) must never reach it.
	abs, err := filepath.Abs(c.VideosDir)
	if err != nil {
		return fmt.Errorf("resolve videos dir %s: %w", c.VideosDir, err)
	}
	c.VideosDir = abs
	return nil
}
