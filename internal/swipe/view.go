package swipe

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	dotStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// View renders the track at its current target offset.
func (m Model[P]) View() string {
	return m.ViewWithOffset(m.offset)
}

// ViewWithOffset renders the track at an explicit offset. Hosts that
// animate transitions pass their interpolated display offset here while
// Swiping is false.
func (m Model[P]) ViewWithOffset(offset float64) string {
	if m.rect == nil || len(m.panels) == 0 {
		return ""
	}
	if m.opts.Vertical {
		return m.viewVertical(offset)
	}
	return m.viewHorizontal(offset)
}

// placedPanel is a panel positioned on the visible track.
type placedPanel struct {
	start int
	lines []string
}

func (m Model[P]) viewHorizontal(offset float64) string {
	width, height := m.rect.width, m.rect.height
	showDots := m.opts.ShowIndicators && m.Count() > 1
	panelHeight := height
	if showDots {
		panelHeight--
		if panelHeight < 1 {
			panelHeight = height
			showDots = false
		}
	}
	size := int(math.Round(m.size))
	if size <= 0 {
		size = width
	}

	var placed []placedPanel
	for i, p := range m.panels {
		start := int(math.Round(float64(i)*m.size + offset + m.PanelOffset(i)))
		if start >= width || start+size <= 0 {
			continue
		}
		block := lipgloss.Place(size, panelHeight, lipgloss.Left, lipgloss.Top, p.Render(size, panelHeight))
		placed = append(placed, placedPanel{start: start, lines: strings.Split(block, "\n")})
	}
	sort.Slice(placed, func(i, j int) bool { return placed[i].start < placed[j].start })

	rows := make([]string, 0, height)
	for y := range panelHeight {
		var b strings.Builder
		cursor := 0
		for _, pp := range placed {
			if pp.start+size <= cursor {
				continue
			}
			left := 0
			start := pp.start
			if start < cursor {
				left = cursor - start
				start = cursor
			}
			if start > cursor {
				b.WriteString(strings.Repeat(" ", start-cursor))
				cursor = start
			}
			right := size
			if pp.start+right > width {
				right = width - pp.start
			}
			if right <= left {
				continue
			}
			var line string
			if y < len(pp.lines) {
				line = pp.lines[y]
			}
			b.WriteString(ansi.Cut(line, left, right))
			cursor += right - left
		}
		if cursor < width {
			b.WriteString(strings.Repeat(" ", width-cursor))
		}
		rows = append(rows, b.String())
	}

	if showDots {
		rows = append(rows, m.indicatorRow(width))
	}
	return strings.Join(rows, "\n")
}

func (m Model[P]) viewVertical(offset float64) string {
	width, height := m.rect.width, m.rect.height
	showDots := m.opts.ShowIndicators && m.Count() > 1 && m.Count() <= height
	panelWidth := width
	if showDots {
		panelWidth -= 2
		if panelWidth < 1 {
			panelWidth = width
			showDots = false
		}
	}
	size := int(math.Round(m.size))
	if size <= 0 {
		size = height
	}

	blank := strings.Repeat(" ", panelWidth)
	canvas := make([]string, height)
	for i, p := range m.panels {
		start := int(math.Round(float64(i)*m.size + offset + m.PanelOffset(i)))
		if start >= height || start+size <= 0 {
			continue
		}
		block := lipgloss.Place(panelWidth, size, lipgloss.Left, lipgloss.Top, p.Render(panelWidth, size))
		for j, line := range strings.Split(block, "\n") {
			if y := start + j; y >= 0 && y < height {
				canvas[y] = line
			}
		}
	}
	for y := range canvas {
		if canvas[y] == "" {
			canvas[y] = blank
		}
	}

	if showDots {
		m.appendIndicatorColumn(canvas)
	}
	return strings.Join(canvas, "\n")
}

// indicatorRow renders the horizontal indicator dots, centered.
func (m Model[P]) indicatorRow(width int) string {
	active := m.ActiveIndicator()
	dots := make([]string, m.Count())
	for i := range dots {
		if i == active {
			dots[i] = activeDotStyle.Render("●")
		} else {
			dots[i] = dotStyle.Render("○")
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(dots, " "))
}

// appendIndicatorColumn adds a vertically centered dot column on the
// right edge of the canvas.
func (m Model[P]) appendIndicatorColumn(canvas []string) {
	count := m.Count()
	active := m.ActiveIndicator()
	top := (len(canvas) - count) / 2
	for y := range canvas {
		suffix := "  "
		if i := y - top; i >= 0 && i < count {
			if i == active {
				suffix = " " + activeDotStyle.Render("●")
			} else {
				suffix = " " + dotStyle.Render("○")
			}
		}
		canvas[y] += suffix
	}
}
