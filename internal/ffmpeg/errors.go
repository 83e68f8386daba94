package ffmpeg

import "regexp"

// stderrReasons maps common ffmpeg failure lines to a short reason. Checked
// in order by [Classify]; the first match wins.
var stderrReasons = []struct {
	re     *regexp.Regexp
	reason string
}{
	{regexp.MustCompile(`moov atom not found`), "truncated file (moov atom not found)"},
	{regexp.MustCompile(`Invalid data found when processing input|EBML header parsing failed`), "invalid or corrupt input"},
	{regexp.MustCompile(`(?i)already exists`), "output already exists"},
	{regexp.MustCompile(`Permission denied`), "permission denied"},
	{regexp.MustCompile(`No such file or directory`), "file not found"},
	{regexp.MustCompile(`(?i)does not contain any stream|Output file is empty|matches no streams`), "no video frames selected"},
	{regexp.MustCompile(`(?i)Unknown encoder|Encoder .* not found|No such filter`), "ffmpeg build lacks a required encoder or filter"},
}

// Classify returns a short reason for a failed run's stderr, or "" when no
// known pattern matches.
func Classify(stderr string) string {
	for _, r := range stderrReasons {
		if r.re.MatchString(stderr) {
			return r.reason
		}
	}
	return ""
}
