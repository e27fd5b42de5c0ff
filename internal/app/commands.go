package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/swipedeck/swipedeck/internal/deck"
	"github.com/swipedeck/swipedeck/internal/errmsg"
)

// animFrame is the settle animation frame interval.
const animFrame = 16 * time.Millisecond

func loadDeck(path string) tea.Cmd {
	return func() tea.Msg {
		d, err := deck.Load(path)
		if err != nil {
			return errorMsg{text: errmsg.FormatWith(errmsg.OpDeckReload, path, err)}
		}
		return deckLoadedMsg{deck: d}
	}
}

func animTick(seq int) tea.Cmd {
	return tea.Tick(animFrame, func(time.Time) tea.Msg {
		return animTickMsg{seq: seq}
	})
}
