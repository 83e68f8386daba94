package naming

import (
	"path/filepath"
	"strings"
)

// SummarySuffix is appended to the video's base name to form the sheet name.
const SummarySuffix = "_summary.jpg"

// videoExtensions is the candidate allow-set (lowercase, with leading dot).
var videoExtensions = map[string]bool{
	".mp4": true,
	".mkv": true,
}

// IsCandidate reports whether path has a video extension, compared
// case-insensitively. No content sniffing is done.
func IsCandidate(path string) bool {
	return videoExtensions[strings.ToLower(ext(filepath.Base(path)))]
}

// SummaryPath returns the contact-sheet path for a video:
//
//	<dir>/<basename without extension>_summary.jpg
func SummaryPath(videoPath string) string {
	dir := filepath.Dir(videoPath)
	base := filepath.Base(videoPath)
	stem := strings.TrimSuffix(base, ext(base))
	return filepath.Join(dir, stem+SummarySuffix)
}

// ext is filepath.Ext, except that a name made only of dots before its last
// dot (".mp4", "..mkv") has no extension: it is a dotfile, not a video.
func ext(base string) string {
	e := filepath.Ext(base)
	if strings.Trim(base[:len(base)-len(e)], ".") == "" {
		return ""
	}
	return e
}
