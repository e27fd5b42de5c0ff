package swipe

import tea "github.com/charmbracelet/bubbletea"

// moveRequest describes one position update: a pace (whole panels), a live
// drag displacement, or a zero-pace snap back to the nearest valid offset.
type moveRequest struct {
	pace   int
	offset float64
	notify bool
}

// move applies a position update through the resolver and returns the
// change notification command when the active index actually moved.
// With one panel or none, every move is a no-op.
func (m *Model[P]) move(req moveRequest) tea.Cmd {
	if m.Count() <= 1 {
		return nil
	}

	g := m.geom()
	target := targetActive(m.active, req.pace, m.opts.Loop, g.count, g.maxPace())
	offset := targetOffset(target, req.offset, m.opts.Loop, g.panelSize, g.minOffset())

	if m.opts.Loop {
		m.compensateEdges(offset, g)
	}

	previous := m.active
	m.active = target
	m.offset = offset

	if req.notify && target != previous {
		return changed(m.ActiveIndicator())
	}
	return nil
}

// compensateEdges repositions the first and last panels outside the
// visible range so scrolling past either end reveals the wrap-adjacent
// panel instead of empty space. No panel is renumbered.
func (m *Model[P]) compensateEdges(offset float64, g geometry) {
	if g.count <= 1 || len(m.edgeOffsets) != g.count {
		return
	}

	if offset != g.minOffset() {
		outRight := offset < g.minOffset()
		if outRight {
			m.edgeOffsets[0] = g.trackSize()
		} else {
			m.edgeOffsets[0] = 0
		}
	}
	if offset != 0 {
		outLeft := offset > 0
		if outLeft {
			m.edgeOffsets[g.count-1] = -g.trackSize()
		} else {
			m.edgeOffsets[g.count-1] = 0
		}
	}
}

// correctPosition silently unwraps the active index from the loop
// overscan slots before a new gesture or navigation starts. The move runs
// with animation suppressed so the user never sees the jump.
func (m *Model[P]) correctPosition() {
	m.swiping = true
	switch {
	case m.active <= -1:
		m.move(moveRequest{pace: m.Count()})
	case m.active >= m.Count():
		m.move(moveRequest{pace: -m.Count()})
	}
}
