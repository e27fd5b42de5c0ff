package swipe

import "math"

// geometry captures the measurements that bound the track position.
// It is a pure value; deriving from it never touches model state.
type geometry struct {
	containerSize float64
	panelSize     float64
	count         int
}

// trackSize is the total main-axis size of all panels.
func (g geometry) trackSize() float64 {
	return g.panelSize * float64(g.count)
}

// minOffset is the most negative legal track offset. It is 0 when the
// content fits the container; overflow toward positive is never needed.
func (g geometry) minOffset() float64 {
	off := g.containerSize - g.trackSize()
	if off > 0 {
		return 0
	}
	return off
}

// maxPace is the number of panel-sizes of slack available for clamped
// forward motion in non-loop mode.
func (g geometry) maxPace() int {
	if g.panelSize <= 0 {
		return 0
	}
	return int(math.Ceil(math.Abs(g.minOffset()) / g.panelSize))
}

func (m *Model[P]) geom() geometry {
	return geometry{
		containerSize: m.containerSize(),
		panelSize:     m.size,
		count:         m.Count(),
	}
}

func (m *Model[P]) containerSize() float64 {
	if m.rect == nil {
		return 0
	}
	if m.opts.Vertical {
		return float64(m.rect.height)
	}
	return float64(m.rect.width)
}
