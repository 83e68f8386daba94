package planner

import (
	"testing"

	"github.com/backmassage/thumbsheet/internal/config"
)

func defaultPlan(t *testing.T, input string) *MontagePlan {
	t.Helper()
	cfg := config.DefaultConfig()
	return BuildPlan(&cfg, input)
}

func TestBuildPlan_Defaults(t *testing.T) {
	p := defaultPlan(t, "/a/b/Movie.MKV")

	if p.InputPath != "/a/b/Movie.MKV" {
		t.Errorf("InputPath = %q", p.InputPath)
	}
	if p.OutputPath != "/a/b/Movie_summary.jpg" {
		t.Errorf("OutputPath = %q, want /a/b/Movie_summary.jpg", p.OutputPath)
	}
	if p.WindowSeconds != 750 || p.IntervalSeconds != 30 || p.Width != 320 {
		t.Errorf("window/interval/width = %d/%d/%d", p.WindowSeconds, p.IntervalSeconds, p.Width)
	}
}

func TestBuildPlan_OutputIndependentOfConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.IntervalSeconds = 5
	cfg.WindowSeconds = 60
	cfg.Tile = config.TileGrid{Columns: 2, Rows: 8}
	cfg.Width = 640

	a := BuildPlan(&cfg, "/a/b/Movie.MKV")
	b := defaultPlan(t, "/a/b/Movie.MKV")
	if a.OutputPath != b.OutputPath {
		t.Errorf("output path depends on config: %q vs %q", a.OutputPath, b.OutputPath)
	}
}

func TestFilterGraph(t *testing.T) {
	p := defaultPlan(t, "/v/x.mp4")
	want := "select='lte(t,750)*not(mod(t,30))',scale=320:-1,tile=5x5"
	if got := p.FilterGraph(); got != want {
		t.Errorf("FilterGraph() = %q, want %q", got, want)
	}

	p.IntervalSeconds = 10
	p.Tile = config.TileGrid{Columns: 4, Rows: 3}
	want = "select='lte(t,750)*not(mod(t,10))',scale=320:-1,tile=4x3"
	if got := p.FilterGraph(); got != want {
		t.Errorf("FilterGraph() = %q, want %q", got, want)
	}
}

func TestSampleTimes_TenMinuteVideo(t *testing.T) {
	p := defaultPlan(t, "/v/x.mp4")
	times := p.SampleTimes(600)

	if len(times) != 20 {
		t.Fatalf("got %d frames, want 20: %v", len(times), times)
	}
	for i, ts := range times {
		if ts != i*30 {
			t.Errorf("times[%d] = %d, want %d", i, ts, i*30)
		}
	}
	if times[len(times)-1] != 570 {
		t.Errorf("last frame at %d, want 570", times[len(times)-1])
	}
}

func TestSampleTimes_LongVideoStopsAtWindow(t *testing.T) {
	p := defaultPlan(t, "/v/x.mp4")
	times := p.SampleTimes(1200)

	if len(times) != 26 {
		t.Fatalf("got %d frames, want 26 (0..750 step 30)", len(times))
	}
	if last := times[len(times)-1]; last != 750 {
		t.Errorf("last frame at %d, want 750", last)
	}
}

func TestSampleTimes_UnknownDuration(t *testing.T) {
	p := defaultPlan(t, "/v/x.mp4")
	if got := len(p.SampleTimes(0)); got != 26 {
		t.Errorf("unknown duration: got %d frames, want 26", got)
	}
}

func TestSampleTimes_ShortVideo(t *testing.T) {
	p := defaultPlan(t, "/v/x.mp4")
	times := p.SampleTimes(12.5)
	if len(times) != 1 || times[0] != 0 {
		t.Errorf("12.5s video: got %v, want [0]", times)
	}
}

func TestTiledTimes_Overflow(t *testing.T) {
	p := defaultPlan(t, "/v/x.mp4")
	p.WindowSeconds = 39 * 30 // 40 candidate frames: 0..1170

	sampled := p.SampleTimes(0)
	if len(sampled) != 40 {
		t.Fatalf("sampled %d frames, want 40", len(sampled))
	}

	tiled := p.TiledTimes(0)
	if len(tiled) != 25 {
		t.Fatalf("tiled %d frames, want 25", len(tiled))
	}
	for i := range tiled {
		if tiled[i] != sampled[i] {
			t.Errorf("tiled[%d] = %d, want earliest frame %d", i, tiled[i], sampled[i])
		}
	}
	if got := p.DroppedFrames(0); got != 15 {
		t.Errorf("DroppedFrames = %d, want 15", got)
	}
}

func TestTiledTimes_FitsInGrid(t *testing.T) {
	p := defaultPlan(t, "/v/x.mp4")
	if got := len(p.TiledTimes(600)); got != 20 {
		t.Errorf("tiled %d frames, want 20", got)
	}
	if got := p.DroppedFrames(600); got != 0 {
		t.Errorf("DroppedFrames = %d, want 0", got)
	}
}
