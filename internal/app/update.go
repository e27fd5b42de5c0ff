package app

import (
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/swipedeck/swipedeck/internal/keymap"
	"github.com/swipedeck/swipedeck/internal/state"
	"github.com/swipedeck/swipedeck/internal/swipe"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		var cmd tea.Cmd
		m.Swipe, cmd = m.Swipe.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: max(msg.Height-chromeHeight, 0),
		})
		return m.syncOffset(cmd)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case swipe.ChangedMsg:
		if m.StateMgr != nil {
			m.StateMgr.SavePosition(state.Position{
				DeckPath:    m.Deck.Path,
				ActiveIndex: msg.Index,
			})
		}
		return m, nil

	case deckLoadedMsg:
		m.Deck = msg.deck
		m.ErrorMsg = ""
		m.Swipe.SetPanels(msg.deck.Slides)
		return m.syncOffset(m.Swipe.Resize())

	case errorMsg:
		m.ErrorMsg = msg.text
		return m, nil

	case animTickMsg:
		return m.handleAnimTick(msg)

	default:
		// Everything else (mouse, focus, the controller's own timers)
		// belongs to the swipe controller.
		var cmd tea.Cmd
		m.Swipe, cmd = m.Swipe.Update(msg)
		return m.syncOffset(cmd)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.JumpMode {
		return m.handleJumpKey(msg)
	}

	if m.HelpVisible {
		m.HelpVisible = false
		return m, nil
	}

	switch m.Keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		if m.StateMgr != nil {
			m.StateMgr.Close()
		}
		return m, tea.Quit

	case keymap.ActionHelp:
		m.HelpVisible = true
		return m, nil

	case keymap.ActionReload:
		return m, loadDeck(m.Deck.Path)

	case keymap.ActionPrev:
		return m.syncOffset(m.Swipe.Prev())

	case keymap.ActionNext:
		return m.syncOffset(m.Swipe.Next())

	case keymap.ActionFirst:
		return m.syncOffset(m.Swipe.SwipeTo(0, false))

	case keymap.ActionLast:
		return m.syncOffset(m.Swipe.SwipeTo(m.Swipe.Count()-1, false))

	case keymap.ActionJump:
		m.JumpMode = true
		m.Jump.SetValue("")
		return m, m.Jump.Focus()

	case keymap.ActionToggleAutoplay:
		if m.Swipe.Options().Autoplay > 0 {
			return m, m.Swipe.SetAutoplay(0)
		}
		if m.AutoplayInterval > 0 {
			return m, m.Swipe.SetAutoplay(m.AutoplayInterval)
		}
		return m, errorCmd("autoplay_ms is not configured")

	case keymap.ActionToggleIndicators:
		m.Swipe.SetShowIndicators(!m.Swipe.Options().ShowIndicators)
		return m, nil
	}

	return m, nil
}

func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Keys.Resolve(msg.String()) {
	case keymap.ActionConfirm:
		m.JumpMode = false
		m.Jump.Blur()
		n, err := strconv.Atoi(strings.TrimSpace(m.Jump.Value()))
		if err != nil {
			return m, nil
		}
		// Panels are one-based in the prompt
		return m.syncOffset(m.Swipe.SwipeTo(n-1, false))

	case keymap.ActionCancel:
		m.JumpMode = false
		m.Jump.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.Jump, cmd = m.Jump.Update(msg)
	return m, cmd
}

// syncOffset reconciles the rendered offset with the controller. Drags and
// non-animated transitions snap; everything else eases over.
func (m Model) syncOffset(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	target := m.Swipe.Offset()

	if m.Swipe.Dragging() || m.Swipe.Swiping() {
		m.DisplayOffset = target
		m.animSeq++ // cancel any in-flight animation
		m.animating = false
		return m, cmd
	}

	if math.Abs(target-m.DisplayOffset) < 0.5 {
		m.DisplayOffset = target
		return m, cmd
	}

	if m.animating {
		return m, cmd
	}
	m.animating = true
	m.animSeq++
	return m, tea.Batch(cmd, animTick(m.animSeq))
}

func (m Model) handleAnimTick(msg animTickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.animSeq {
		return m, nil
	}

	target := m.Swipe.Offset()
	m.DisplayOffset = lerp(m.DisplayOffset, target, m.lerpFactor())

	if math.Abs(target-m.DisplayOffset) < 0.5 {
		m.DisplayOffset = target
		m.animating = false
		return m, nil
	}
	return m, animTick(msg.seq)
}

// lerpFactor derives the per-frame easing amount from the configured
// transition duration.
func (m Model) lerpFactor() float64 {
	duration := m.Swipe.Options().Duration
	if duration <= 0 {
		return 1
	}
	factor := 4 * float64(animFrame) / float64(duration)
	return clamp(factor, 0.05, 1)
}

func lerp(from, to, factor float64) float64 {
	return from + (to-from)*factor
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
