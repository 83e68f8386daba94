package pipeline

// Observer receives run events so the CLI can render progress without the
// pipeline writing to the terminal itself. Calls arrive sequentially from
// the walking goroutine.
type Observer interface {
	// OnOutcome is called once per candidate file after it reaches a
	// terminal outcome.
	OnOutcome(path string, o Outcome)
	// OnDone is called once when the walk finishes.
	OnDone(stats RunStats)
}
