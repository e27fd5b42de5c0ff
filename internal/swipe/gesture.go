package swipe

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Next advances one panel, respecting loop and bounds.
func (m *Model[P]) Next() tea.Cmd {
	return m.beginMove(moveStepMsg{pace: 1})
}

// Prev retreats one panel, respecting loop and bounds.
func (m *Model[P]) Prev() tea.Cmd {
	return m.beginMove(moveStepMsg{pace: -1})
}

// SwipeTo jumps to the given panel index. Out-of-range indices are
// normalized by modulo, never rejected. With immediate set the jump
// renders without a transition.
func (m *Model[P]) SwipeTo(index int, immediate bool) tea.Cmd {
	return m.beginMove(moveStepMsg{target: index, hasTarget: true, immediate: immediate})
}

// beginMove starts the two-phase commit for programmatic navigation: the
// overscan correction applies now with animation suppressed, and the
// animated move arrives as a follow-up step once the corrected position
// has rendered.
func (m *Model[P]) beginMove(msg moveStepMsg) tea.Cmd {
	if m.Count() <= 1 {
		return nil
	}
	m.correctPosition()
	m.tracker.Reset()
	m.moveSeq++
	msg.seq = m.moveSeq
	return step(msg)
}

func (m *Model[P]) handleMoveStep(msg moveStepMsg) tea.Cmd {
	if msg.seq != m.moveSeq || m.Count() <= 1 {
		return nil
	}

	pace := msg.pace
	if msg.hasTarget {
		pace = m.normalizeTarget(msg.target) - m.active
	}

	var cmds []tea.Cmd
	if msg.immediate {
		// Keep the transition suppressed through the move and release it
		// one step later, after the jump has rendered.
		cmds = append(cmds, unswipe(msg.seq))
	} else {
		m.swiping = false
	}
	if cmd := m.move(moveRequest{pace: pace, notify: true}); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// normalizeTarget maps an explicit index onto a reachable target. In loop
// mode, index == count is a request for a seamless forward wrap: it
// animates through the overscan slot unless the track already sits on
// panel 0.
func (m *Model[P]) normalizeTarget(index int) int {
	count := m.Count()
	if m.opts.Loop && index == count {
		if m.active == 0 {
			return 0
		}
		return count
	}
	return ((index % count) + count) % count
}

// touchStart opens a gesture: it stops autoplay, rectifies any overscan
// position, and supersedes pending programmatic moves.
func (m *Model[P]) touchStart(x, y int) {
	if !m.opts.Touchable || m.rect == nil {
		return
	}
	m.stopAutoplay()
	m.moveSeq++
	m.touchStartAt = m.now()
	m.tracker.Start(x, y)
	m.correctPosition()
	m.dragging = true
}

// touchMove tracks the finger directly while the gesture direction
// matches the configured orientation. Mismatched moves are dropped.
func (m *Model[P]) touchMove(x, y int) {
	if !m.opts.Touchable || !m.dragging {
		return
	}
	m.tracker.Move(x, y)
	if m.directionMatches() {
		m.move(moveRequest{offset: m.delta()})
	}
}

// touchEnd decides whether the gesture commits to navigation or snaps
// back, then resumes autoplay.
func (m *Model[P]) touchEnd() tea.Cmd {
	if !m.opts.Touchable || !m.dragging {
		return nil
	}
	m.dragging = false

	var cmd tea.Cmd
	delta := m.delta()
	elapsed := float64(m.now().Sub(m.touchStartAt)) / float64(time.Millisecond)
	if elapsed <= 0 {
		elapsed = 1
	}
	velocity := delta / elapsed

	commits := math.Abs(velocity) > m.opts.CommitVelocity || math.Abs(delta) > m.size/2
	if commits && m.directionMatches() {
		cmd = m.move(moveRequest{pace: m.commitPace(delta), notify: true})
	} else if delta != 0 {
		// Snap back to the nearest valid offset, no notification.
		m.move(moveRequest{})
	}

	m.swiping = false
	return tea.Batch(cmd, m.armAutoplay())
}

// commitPace decides how many panels a committed gesture moves. Loop mode
// moves a single panel and only when the net displacement and the delta
// direction agree; non-loop mode supports multi-panel flicks.
func (m *Model[P]) commitPace(delta float64) int {
	if m.opts.Loop {
		if m.gestureOffset() > 0 {
			if delta > 0 {
				return -1
			}
			return 1
		}
		return 0
	}
	if m.size <= 0 {
		return 0
	}
	if delta > 0 {
		return -int(math.Ceil(delta / m.size))
	}
	return -int(math.Floor(delta / m.size))
}

// delta is the gesture displacement along the configured orientation.
func (m *Model[P]) delta() float64 {
	if m.opts.Vertical {
		return m.tracker.DeltaY()
	}
	return m.tracker.DeltaX()
}

// gestureOffset is the absolute displacement along the orientation.
func (m *Model[P]) gestureOffset() float64 {
	if m.opts.Vertical {
		return m.tracker.OffsetY()
	}
	return m.tracker.OffsetX()
}

func (m *Model[P]) directionMatches() bool {
	if m.opts.Vertical {
		return m.tracker.IsVertical()
	}
	return m.tracker.IsHorizontal()
}
