// Package app hosts the swipe controller inside the terminal program:
// it owns the deck, the keymap, position persistence and the settle
// animation between committed panel positions.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swipedeck/swipedeck/internal/config"
	"github.com/swipedeck/swipedeck/internal/deck"
	"github.com/swipedeck/swipedeck/internal/errmsg"
	"github.com/swipedeck/swipedeck/internal/keymap"
	"github.com/swipedeck/swipedeck/internal/state"
	"github.com/swipedeck/swipedeck/internal/swipe"
)

// chromeHeight is the number of rows reserved around the deck view:
// one header line and one footer line.
const chromeHeight = 2

// Model is the root application model.
type Model struct {
	Swipe    swipe.Model[deck.Slide]
	Deck     *deck.Deck
	StateMgr *state.Manager
	Keys     *keymap.Resolver

	// Autoplay toggle state. The configured interval survives toggling off.
	AutoplayInterval time.Duration

	// Jump prompt
	Jump     textinput.Model
	JumpMode bool

	HelpVisible bool
	ErrorMsg    string

	// Rendered track offset, animated toward the controller's offset.
	DisplayOffset float64
	animating     bool
	animSeq       int

	Width  int
	Height int
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// New creates the application model from configuration. A nil state
// manager disables position persistence.
func New(cfg *config.Config, stateMgr *state.Manager, d *deck.Deck) Model {
	sc := cfg.GetSwipeConfig()

	opts := swipe.DefaultOptions()
	opts.Loop = *sc.Loop
	opts.Vertical = sc.Vertical
	opts.Touchable = *sc.Touchable
	opts.ShowIndicators = *sc.ShowIndicators
	opts.Autoplay = time.Duration(sc.AutoplayMs) * time.Millisecond
	opts.Duration = time.Duration(sc.DurationMs) * time.Millisecond
	opts.InitialIndex = sc.InitialIndex
	opts.CommitVelocity = sc.CommitVelocity

	// Saved position beats the configured initial index. A read failure
	// is reported but never blocks startup.
	var loadErr string
	if stateMgr != nil {
		switch pos, err := stateMgr.GetPosition(d.Path); {
		case err != nil:
			loadErr = errmsg.Format(errmsg.OpPositionLoad, err)
		case pos != nil:
			opts.InitialIndex = pos.ActiveIndex
		}
	}

	jump := textinput.New()
	jump.Prompt = "panel: "
	jump.CharLimit = 4
	jump.Width = 8

	return Model{
		Swipe:            swipe.New(opts, d.Slides),
		Deck:             d,
		StateMgr:         stateMgr,
		Keys:             keymap.NewResolver(keymap.All),
		AutoplayInterval: opts.Autoplay,
		Jump:             jump,
		ErrorMsg:         loadErr,
	}
}
