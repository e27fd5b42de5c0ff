package swipe

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// armAutoplay (re)arms the one-shot autoplay timer. The timer is owned by
// the model through its generation counter: arming or stopping bumps the
// generation, so a message from an older timer no longer matches and is
// dropped. Nothing is armed while autoplay is disabled, the deck has at
// most one panel, or the component is hidden.
func (m *Model[P]) armAutoplay() tea.Cmd {
	if m.opts.Autoplay <= 0 || m.Count() <= 1 || !m.visible {
		return nil
	}
	m.autoplayGen++
	gen := m.autoplayGen
	return tea.Tick(m.opts.Autoplay, func(time.Time) tea.Msg {
		return autoplayMsg{gen: gen}
	})
}

// stopAutoplay invalidates any armed timer.
func (m *Model[P]) stopAutoplay() {
	m.autoplayGen++
}

// handleAutoplay advances one panel and re-arms, unless the firing timer
// has been superseded.
func (m *Model[P]) handleAutoplay(msg autoplayMsg) tea.Cmd {
	if msg.gen != m.autoplayGen {
		return nil
	}
	return tea.Batch(m.Next(), m.armAutoplay())
}

// SetAutoplay reconfigures the autoplay interval. A non-positive interval
// stops the scheduler; a positive one restarts it.
func (m *Model[P]) SetAutoplay(interval time.Duration) tea.Cmd {
	m.opts.Autoplay = interval
	if interval <= 0 {
		m.stopAutoplay()
		return nil
	}
	return m.armAutoplay()
}
