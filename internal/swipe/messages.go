package swipe

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg is emitted exactly once per committed navigation with the
// new normalized active index. Live drags and snap-backs never emit it.
type ChangedMsg struct {
	Index int
}

func changed(index int) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{Index: index}
	}
}

// moveStepMsg is the second phase of a programmatic move: the non-animated
// overscan correction has been applied and rendered, so the animated move
// itself can run. Messages with a stale sequence are dropped; a newer
// gesture or command has superseded them.
type moveStepMsg struct {
	seq       int
	pace      int
	target    int
	hasTarget bool
	immediate bool
}

func step(msg moveStepMsg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// unswipeMsg clears the swiping flag one step after an immediate jump,
// so the jump itself renders without a transition.
type unswipeMsg struct {
	seq int
}

func unswipe(seq int) tea.Cmd {
	return func() tea.Msg {
		return unswipeMsg{seq: seq}
	}
}

// autoplayMsg fires a scheduled automatic advance. The generation ties it
// to the timer that armed it; stale generations are ignored.
type autoplayMsg struct {
	gen int
}
