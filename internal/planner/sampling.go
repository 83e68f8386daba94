package planner

// SampleTimes returns the timestamps (seconds) the select filter keeps for a
// video of the given duration: 0, I, 2I, ... up to and including the window,
// and strictly before the end of the video. A non-positive duration means
// unknown, in which case only the window bounds the result.
func (p *MontagePlan) SampleTimes(duration float64) []int {
	if p.IntervalSeconds <= 0 || p.WindowSeconds < 0 {
		return nil
	}
	times := make([]int, 0, p.WindowSeconds/p.IntervalSeconds+1)
	for t := 0; t <= p.WindowSeconds; t += p.IntervalSeconds {
		if duration > 0 && float64(t) >= duration {
			break
		}
		times = append(times, t)
	}
	return times
}

// TiledTimes returns the sampled timestamps that actually land on the sheet:
// the earliest Columns*Rows of SampleTimes.
func (p *MontagePlan) TiledTimes(duration float64) []int {
	times := p.SampleTimes(duration)
	if slots := p.Tile.Slots(); len(times) > slots {
		times = times[:slots]
	}
	return times
}

// DroppedFrames is how many sampled frames do not fit on the sheet.
func (p *MontagePlan) DroppedFrames(duration float64) int {
	return len(p.SampleTimes(duration)) - len(p.TiledTimes(duration))
}
