package swipe

import tea "github.com/charmbracelet/bubbletea"

// Update handles messages for the controller. Mouse press, motion and
// release drive the gesture machine; wheel events page; window size is
// the resize source and focus/blur the visibility source.
func (m Model[P]) Update(msg tea.Msg) (Model[P], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.FocusMsg:
		m.visible = true
		m.reinit()
		return m, m.armAutoplay()

	case tea.BlurMsg:
		m.visible = false
		m.stopAutoplay()
		return m, nil

	case moveStepMsg:
		return m, m.handleMoveStep(msg)

	case unswipeMsg:
		if msg.seq == m.moveSeq {
			m.swiping = false
		}
		return m, nil

	case autoplayMsg:
		return m, m.handleAutoplay(msg)
	}

	return m, nil
}

// handleResize stores the new measurement and re-initializes at the
// current panel. Redundant events re-run the same initialization and land
// on identical state.
func (m Model[P]) handleResize(msg tea.WindowSizeMsg) (Model[P], tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= 0 {
		return m, nil
	}
	m.rect = &rect{width: msg.Width, height: msg.Height}
	m.reinit()
	return m, m.armAutoplay()
}

// Resize forces re-measurement and re-initialization at the current
// active panel without new window dimensions.
func (m *Model[P]) Resize() tea.Cmd {
	m.reinit()
	return m.armAutoplay()
}

func (m Model[P]) handleMouse(msg tea.MouseMsg) (Model[P], tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive // left button and wheel only
		case tea.MouseButtonLeft:
			m.touchStart(msg.X, msg.Y)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			return m, m.Prev()
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			return m, m.Next()
		}

	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.touchMove(msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		return m, m.touchEnd()
	}

	return m, nil
}
