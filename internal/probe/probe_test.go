package probe

import (
	"context"
	"os/exec"
	"testing"
)

// Matroska recording with cover art ahead of the real video stream.
const sampleWithCover = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 600,
      "height": 900,
      "disposition": { "default": 0, "attached_pic": 1 }
    },
    {
      "index": 1,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "avg_frame_rate": "60/1",
      "disposition": { "default": 1, "attached_pic": 0 }
    },
    {
      "index": 2,
      "codec_name": "aac",
      "codec_type": "audio",
      "disposition": { "default": 1 }
    }
  ],
  "format": {
    "filename": "/rec/2024-05-01 20-00-00.mkv",
    "format_name": "matroska,webm",
    "duration": "1437.123000",
    "size": "1234567890"
  }
}`

// Audio-only file: no primary video.
const sampleAudioOnly = `{
  "streams": [
    { "index": 0, "codec_name": "opus", "codec_type": "audio" }
  ],
  "format": { "filename": "voice.mkv", "format_name": "matroska,webm", "duration": "10.0" }
}`

func TestParseJSON_SkipsCoverArt(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleWithCover))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if pr.Format.Duration != 1437.123 {
		t.Errorf("duration: got %f, want 1437.123", pr.Format.Duration)
	}
	if pr.PrimaryVideo == nil {
		t.Fatal("PrimaryVideo is nil")
	}
	if pr.PrimaryVideo.IsAttachedPic {
		t.Error("cover art chosen as primary video")
	}
	if pr.Resolution() != "1920x1080" {
		t.Errorf("Resolution() = %q", pr.Resolution())
	}
}

func TestParseJSON_NoVideo(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleAudioOnly))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if pr.PrimaryVideo != nil {
		t.Errorf("PrimaryVideo = %+v, want nil", pr.PrimaryVideo)
	}
	if pr.Resolution() != "unknown" {
		t.Errorf("Resolution() = %q, want unknown", pr.Resolution())
	}
	if pr.Format.Duration != 10 {
		t.Errorf("duration: got %f", pr.Format.Duration)
	}
}

func TestParseJSON_MissingDuration(t *testing.T) {
	pr, err := ParseJSON([]byte(`{"streams": [], "format": {"filename": "x.mp4"}}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if pr.Format.Duration != 0 {
		t.Errorf("duration: got %f, want 0", pr.Format.Duration)
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestProbe_MissingFile(t *testing.T) {
	if _, err := exec.LookPath(Binary); err != nil {
		t.Skip("ffprobe not available")
	}
	if _, err := Probe(context.Background(), "/nonexistent/video.mp4"); err == nil {
		t.Error("expected error probing a missing file")
	}
}
