package swipe

import "math"

// targetActive resolves the panel index a pace lands on. In loop mode the
// index may overshoot into the {-1, count} overscan slots reserved for
// seamless wrap rendering; position correction rectifies it later.
func targetActive(active, pace int, loop bool, count, maxPace int) int {
	if pace == 0 {
		return active
	}
	if loop {
		return clampInt(active+pace, -1, count)
	}
	return clampInt(active+pace, 0, maxPace)
}

// targetOffset resolves the track offset for a target panel plus a live
// drag displacement. It is the single source of truth for where the track
// sits after any pace or drag request.
func targetOffset(target int, extra float64, loop bool, panelSize, minOffset float64) float64 {
	position := float64(target) * panelSize
	if !loop {
		// Never scroll past the last panel.
		position = math.Min(position, -minOffset)
	}
	offset := extra - position
	if !loop {
		offset = clampFloat(offset, minOffset, 0)
	}
	return offset
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
