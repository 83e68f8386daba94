// Package probe inspects a video with a single ffprobe JSON call. The
// pipeline only uses it in verbose mode, to report how many frames a sheet
// will hold; dispatch never depends on a probe succeeding.
package probe
