package component

import "math"

// window positions a grid value relative to repeating activity windows.
// Positions are measured from the grid origin. With duration > 0 the timeline
// is cut into cycles of startDelay followed by duration, at most repeats of
// them when repeats > 0. With duration = 0 a single window opens after
// startDelay and never closes.
type window struct {
	startDelay float64
	duration   float64
	repeats    uint64
}

// elapsed returns the time since the start of the window containing u, and
// whether u falls inside a window at all.
func (w window) elapsed(u float64) (float64, bool) {
	if w.duration == 0 {
		return u - w.startDelay, u >= w.startDelay
	}

	cycle := w.startDelay + w.duration
	k := math.Floor(u / cycle)
	if w.repeats > 0 && k >= float64(w.repeats) {
		return 0, false
	}
	p := u - k*cycle
	if p < w.startDelay {
		return 0, false
	}
	return p - w.startDelay, true
}
