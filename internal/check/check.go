// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation (CheckDeps) for ffmpeg, ffprobe, and the filters a
// contact sheet needs.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// requiredFilters are the ffmpeg filters used by every montage.
var requiredFilters = []string{"select", "scale", "tile"}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// RunCheck runs the interactive --check flow: ffmpeg and ffprobe
// availability, required filters, the mjpeg encoder, and a tiny test
// montage. It returns false if anything required for a sheet is missing.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	if !checkFfmpeg(log) {
		return false
	}
	checkFfprobe(log)

	ok := checkFilters(log)
	ok = checkMJPEG(log) && ok
	ok = checkTestMontage(log) && ok
	return ok
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) bool {
	if _, err := lookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		return false
	}
	out, err := exec.Command("ffmpeg", "-version").Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return true
	}
	log.Success("ffmpeg: %s", firstLine(string(out)))
	return true
}

// checkFfprobe reports ffprobe availability. Missing ffprobe only disables
// the verbose frame-count diagnostics.
func checkFfprobe(log Logger) {
	if _, err := lookPath("ffprobe"); err != nil {
		log.Warn("ffprobe not found (verbose frame counts disabled)")
		return
	}
	log.Success("ffprobe: found")
}

// checkFilters confirms every filter in requiredFilters is compiled in.
func checkFilters(log Logger) bool {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-filters").Output()
	if err != nil {
		log.Warn("Could not list filters: %v", err)
		return false
	}
	available := ParseFilterList(string(out))
	ok := true
	for _, f := range requiredFilters {
		if available[f] {
			log.Success("filter %s: available", f)
		} else {
			log.Error("filter %s: missing", f)
			ok = false
		}
	}
	return ok
}

// checkMJPEG confirms the JPEG encoder used for .jpg output exists.
func checkMJPEG(log Logger) bool {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return false
	}
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == "mjpeg" {
			log.Success("encoder mjpeg: available")
			return true
		}
	}
	log.Error("encoder mjpeg: missing")
	return false
}

// checkTestMontage renders a 2x2 sheet from a synthetic source to the null
// muxer, exercising the same filter chain shape as a real run.
func checkTestMontage(log Logger) bool {
	log.Info("Testing montage filter chain...")
	if runSilent("ffmpeg", testMontageArgs()...) {
		log.Success("Test montage works")
		return true
	}
	log.Error("Test montage failed")
	return false
}

// CheckDeps is the pre-pipeline validation. ffmpeg is required; a missing
// ffprobe is returned as ErrFfprobeNotFound so the caller can warn and
// continue.
func CheckDeps() error {
	if _, err := lookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := lookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// --- internal helpers ---

// ParseFilterList extracts filter names from `ffmpeg -filters` output.
// Data lines look like " ... tile              V->V       Tile several ...".
func ParseFilterList(out string) map[string]bool {
	names := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || !strings.Contains(fields[2], "->") {
			continue
		}
		names[fields[1]] = true
	}
	return names
}

// testMontageArgs returns the ffmpeg arguments for a minimal montage encode.
func testMontageArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "testsrc=duration=4:size=160x90:rate=1",
		"-vf", "select='lte(t,3)*not(mod(t,1))',scale=80:-1,tile=2x2",
		"-frames:v", "1", "-c:v", "mjpeg",
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}
