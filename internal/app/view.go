package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/swipedeck/swipedeck/internal/keymap"
	"github.com/swipedeck/swipedeck/internal/ui/render"
	"github.com/swipedeck/swipedeck/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	if m.HelpVisible {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteByte('\n')
	b.WriteString(m.Swipe.ViewWithOffset(m.DisplayOffset))
	b.WriteByte('\n')
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := styles.GradientTitle("swipedeck")

	name := filepath.Base(m.Deck.Path)
	left := title + "  " + styles.T().S().Muted.Render(render.Truncate(name, m.Width/2))

	position := fmt.Sprintf("%d/%d", m.Swipe.ActiveIndicator()+1, m.Swipe.Count())
	right := styles.T().S().Base.Render(position)

	return render.TruncateStyled(render.Row(left, right, m.Width), m.Width)
}

func (m Model) footerView() string {
	if m.JumpMode {
		return render.TruncateStyled(m.Jump.View(), m.Width)
	}
	if m.ErrorMsg != "" {
		return render.TruncateStyled(styles.T().S().Error.Render(m.ErrorMsg), m.Width)
	}

	hints := strings.Join([]string{
		m.hint(keymap.ActionPrev, "") + "/" + m.hint(keymap.ActionNext, "navigate"),
		m.hint(keymap.ActionJump, "jump"),
		m.hint(keymap.ActionToggleAutoplay, "autoplay"),
		m.hint(keymap.ActionReload, "reload"),
		m.hint(keymap.ActionHelp, "help"),
		m.hint(keymap.ActionQuit, "quit"),
	}, " · ")
	return render.TruncateStyled(styles.T().S().Subtle.Render(hints), m.Width)
}

// hint renders "key label" from the primary binding of an action.
func (m Model) hint(action keymap.Action, label string) string {
	keys := m.Keys.KeysFor(action)
	if len(keys) == 0 {
		return label
	}
	key := displayKey(keys[0])
	if label == "" {
		return key
	}
	return key + " " + label
}

func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

func (m Model) helpView() string {
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Key bindings"))
	b.WriteByte('\n')
	b.WriteString(s.Subtle.Render(render.Separator(24)))
	b.WriteString("\n\n")

	for _, context := range []string{"global", "deck", "jump"} {
		for _, binding := range keymap.ByContext(context) {
			keys := make([]string, len(binding.Keys))
			for i, key := range binding.Keys {
				keys[i] = displayKey(key)
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				s.Accent.Render(render.TruncateAndPad(strings.Join(keys, ", "), 12)),
				s.Base.Render(binding.Description)))
		}
		b.WriteByte('\n')
	}
	b.WriteString(s.Subtle.Render("press any key to close"))

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, b.String())
}
