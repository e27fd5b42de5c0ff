package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/swipedeck/swipedeck/internal/app"
	"github.com/swipedeck/swipedeck/internal/config"
	"github.com/swipedeck/swipedeck/internal/deck"
	"github.com/swipedeck/swipedeck/internal/errmsg"
	"github.com/swipedeck/swipedeck/internal/state"
)

func initialModel() (app.Model, error) {
	cfg, err := config.Load()
	if err != nil {
		return app.Model{}, fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}

	// Open state manager; persistence is optional, the deck still works
	// without it.
	stateMgr, err := state.Open()
	if err != nil {
		stateMgr = nil
	}

	// Deck source: command line > config > built-in demo
	deckPath := cfg.Deck
	if len(os.Args) > 1 {
		deckPath = os.Args[1]
	}

	var d *deck.Deck
	if deckPath == "" {
		d = deck.Demo()
	} else {
		d, err = deck.Load(deckPath)
		if err != nil {
			if stateMgr != nil {
				stateMgr.Close()
			}
			return app.Model{}, fmt.Errorf("%s", errmsg.FormatWith(errmsg.OpDeckLoad, deckPath, err))
		}
	}

	return app.New(cfg, stateMgr, d), nil
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
