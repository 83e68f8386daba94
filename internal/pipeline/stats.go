package pipeline

import "time"

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Dirs        int // Directories listed (or attempted).
	DirErrors   int // Directories that could not be listed.
	Files       int // Regular files seen.
	Candidates  int // Files with a video extension.
	Created     int
	Skipped     int // Sheet already existed.
	Failed      int
	Planned     int // Dry-run only.
	OutputBytes int64
	Elapsed     time.Duration
}

// record updates the outcome counters for one candidate.
func (s *RunStats) record(o Outcome) {
	switch o {
	case OutcomeCreated:
		s.Created++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	case OutcomePlanned:
		s.Planned++
	}
}

// Dispatched is how many candidates reached the encoder (or would have, in a dry run).
func (s *RunStats) Dispatched() int {
	return s.Created + s.Failed + s.Planned
}
