package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/thumbsheet/internal/config"
)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := testConfig()
	var stdout, stderr bytes.Buffer
	l, err := newLogger(&cfg, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	l.Info("scanning %s", "/videos")
	if !strings.Contains(stdout.String(), "scanning /videos") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "\033[") {
		t.Errorf("ColorNever output contains ANSI escapes: %q", stdout.String())
	}
}

func TestNewLogger_ErrorsGoToStderr(t *testing.T) {
	cfg := testConfig()
	var stdout, stderr bytes.Buffer
	l, err := newLogger(&cfg, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}

	l.Error("boom")
	l.Warn("careful")
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("stderr = %q, want error record", stderr.String())
	}
	if strings.Contains(stdout.String(), "boom") {
		t.Error("error record leaked to stdout")
	}
	if !strings.Contains(stdout.String(), "WRN") || !strings.Contains(stdout.String(), "careful") {
		t.Errorf("stdout = %q, want warning record", stdout.String())
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	cfg := testConfig()
	var stdout, stderr bytes.Buffer
	l, _ := newLogger(&cfg, &stdout, &stderr)
	l.Debug("hidden")
	if stdout.Len() != 0 {
		t.Errorf("Debug wrote without verbose: %q", stdout.String())
	}

	cfg.Verbose = true
	stdout.Reset()
	l, _ = newLogger(&cfg, &stdout, &stderr)
	l.Debug("shown")
	if !strings.Contains(stdout.String(), "DBG") || !strings.Contains(stdout.String(), "shown") {
		t.Errorf("verbose Debug output = %q", stdout.String())
	}
	if !l.Verbose() {
		t.Error("Verbose() = false, want true")
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "thumbsheet.log")

	var stdout, stderr bytes.Buffer
	l, err := newLogger(&cfg, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	l.Success("created %s", "a_summary.jpg")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	// Logging after Close must not panic or reopen the file.
	l.Info("after close")

	b, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"level=INFO", "to file", "level=SUCCESS", "a_summary.jpg"} {
		if !bytes.Contains(b, []byte(want)) {
			t.Errorf("log file missing %q: %s", want, b)
		}
	}
	if bytes.Contains(b, []byte("after close")) {
		t.Error("record written after Close")
	}
}
