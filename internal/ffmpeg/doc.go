// Package ffmpeg is the boundary to the external encoder: it renders a
// MontagePlan into an ffmpeg argv, runs it, and classifies stderr from
// failed runs into a short human-readable reason.
//
// There is exactly one invocation per video and no retry: a failed run is
// reported once and the caller moves on.
package ffmpeg
