package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swipedeck/swipedeck/internal/deck"
)

// deckLoadedMsg carries a freshly loaded deck after a reload.
type deckLoadedMsg struct {
	deck *deck.Deck
}

// errorMsg carries a user-facing error string for the footer.
type errorMsg struct {
	text string
}

// animTickMsg drives the settle animation. Stale sequences are dropped.
type animTickMsg struct {
	seq int
}

func errorCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return errorMsg{text: text}
	}
}
