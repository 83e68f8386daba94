package ffmpeg

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/backmassage/thumbsheet/internal/config"
	"github.com/backmassage/thumbsheet/internal/planner"
)

func testPlan(input string) *planner.MontagePlan {
	cfg := config.DefaultConfig()
	return planner.BuildPlan(&cfg, input)
}

func TestBuild_Defaults(t *testing.T) {
	args := Build(testPlan("/videos/a/video1.mp4"), false)

	want := []string{
		"ffmpeg", "-hide_banner", "-nostdin", "-n",
		"-loglevel", "error",
		"-i", "/videos/a/video1.mp4",
		"-vf", "select='lte(t,750)*not(mod(t,30))',scale=320:-1,tile=5x5",
		"-frames:v", "1", "-update", "1",
		"/videos/a/video1_summary.jpg",
	}
	if strings.Join(args, "\x00") != strings.Join(want, "\x00") {
		t.Errorf("Build:\n got %q\nwant %q", args, want)
	}
}

func TestBuild_VerboseLogLevel(t *testing.T) {
	args := Build(testPlan("/v/x.mkv"), true)
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-loglevel info") {
		t.Errorf("verbose build should use -loglevel info: %s", joined)
	}
}

func TestBuild_PathsAreSingleArgs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/v/My Movie (2020).mkv", "/v/My Movie (2020)_summary.jpg"},
		{"/v/Ep%03d.mkv", "/v/Ep%03d_summary.jpg"},
		{"/v/100% done.mp4", "/v/100% done_summary.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			args := Build(testPlan(tt.in), false)
			n := len(args)
			if args[n-1] != tt.want {
				t.Errorf("output arg = %q, want %q", args[n-1], tt.want)
			}
			// Without -update 1, image2 would expand %03d in the output name.
			if args[n-3] != "-update" || args[n-2] != "1" {
				t.Errorf("output not preceded by -update 1: %q", args)
			}
			found := false
			for i, a := range args {
				if a == "-i" && args[i+1] == tt.in {
					found = true
				}
			}
			if !found {
				t.Errorf("input path not passed as a single argument: %q", args)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   string
	}{
		{"corrupt", "[mov,mp4] /v/x.mp4: Invalid data found when processing input", "invalid or corrupt input"},
		{"truncated", "[mov,mp4,m4a] moov atom not found\n/v/x.mp4: Invalid data found when processing input", "truncated file (moov atom not found)"},
		{"mkv header", "[matroska,webm] EBML header parsing failed", "invalid or corrupt input"},
		{"exists", "File '/v/x_summary.jpg' already exists. Exiting.", "output already exists"},
		{"permission", "/v/x_summary.jpg: Permission denied", "permission denied"},
		{"empty output", "Output file is empty, nothing was encoded", "no video frames selected"},
		{"unknown", "something unexpected", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.stderr); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecute_CapturesFailure(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	res := Execute(context.Background(), []string{sh, "-c", "echo broken >&2; exit 3"}, false)
	if res.Err == nil {
		t.Fatal("expected non-nil error for exit 3")
	}
	if strings.TrimSpace(res.Stderr) != "broken" {
		t.Errorf("Stderr = %q, want broken", res.Stderr)
	}
}

func TestExecutor_SpawnFailure(t *testing.T) {
	run := Executor(false)
	res := run(context.Background(), []string{"/nonexistent/ffmpeg-binary"})
	if res.Err == nil {
		t.Error("expected spawn error for missing binary")
	}
}
