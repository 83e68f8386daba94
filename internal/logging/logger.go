// Package logging provides the leveled console + file logger used across the
// tool. It is a thin printf-style façade over log/slog: console output goes
// through github.com/lmittmann/tint, the optional log file gets plain
// slog text records.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"

	"github.com/backmassage/thumbsheet/internal/config"
	"github.com/backmassage/thumbsheet/internal/term"
)

// LevelSuccess sits between INFO and WARN, so it is shown whenever INFO is.
const LevelSuccess = slog.Level(2)

// Logger provides leveled, optionally colored logging with optional file sink.
// ERROR records go to stderr; everything else to stdout.
type Logger struct {
	mu      sync.Mutex
	out     *slog.Logger
	errOut  *slog.Logger
	fileLog *slog.Logger
	file    *os.File
	verbose bool
}

// NewLogger resolves colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stdout, os.Stderr)
}

func newLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	l := &Logger{
		out:     slog.New(consoleHandler(stdout, level)),
		errOut:  slog.New(consoleHandler(stderr, level)),
		verbose: cfg.Verbose,
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.fileLog = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: fileLevelNames,
		}))
	}
	return l, nil
}

func consoleHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  "15:04:05",
		NoColor:     !term.Enabled(),
		ReplaceAttr: consoleLevelNames,
	})
}

// consoleLevelNames renders levels as short colored tags. tint does not know
// about LevelSuccess, so every level is rendered here for a uniform look.
func consoleLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch {
	case lvl >= slog.LevelError:
		return slog.String(a.Key, color.New(color.FgHiRed, color.Bold).Sprint("ERR"))
	case lvl >= slog.LevelWarn:
		return slog.String(a.Key, color.New(color.FgHiYellow, color.Bold).Sprint("WRN"))
	case lvl >= LevelSuccess:
		return slog.String(a.Key, color.New(color.FgHiGreen, color.Bold).Sprint("OK "))
	case lvl >= slog.LevelInfo:
		return slog.String(a.Key, color.New(color.FgHiBlue, color.Bold).Sprint("INF"))
	default:
		return slog.String(a.Key, color.New(color.FgHiCyan).Sprint("DBG"))
	}
}

// fileLevelNames names LevelSuccess in the plain-text file sink, which would
// otherwise print it as "INFO+2".
func fileLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelSuccess {
			return slog.String(a.Key, "SUCCESS")
		}
	}
	return a
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.fileLog = nil
		return err
	}
	return nil
}

// Verbose reports whether DEBUG records are emitted.
func (l *Logger) Verbose() bool { return l.verbose }

func (l *Logger) line(level slog.Level, text string) {
	ctx := context.Background()
	if level >= slog.LevelError {
		l.errOut.Log(ctx, level, text)
	} else {
		l.out.Log(ctx, level, text)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fileLog != nil {
		l.fileLog.Log(ctx, level, text)
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(slog.LevelInfo, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line(LevelSuccess, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(slog.LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(slog.LevelError, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line(slog.LevelDebug, fmt.Sprintf(format, args...))
}
