package deck

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/swipedeck/swipedeck/internal/ui/render"
)

var (
	textTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	textFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TextSlide shows the contents of a text or markdown file.
type TextSlide struct {
	title string
	lines []string
	size  int64
}

// NewTextSlide creates a text slide from raw content. A size of 0 hides
// the footer size annotation.
func NewTextSlide(title, body string, size int64) *TextSlide {
	return &TextSlide{
		title: title,
		lines: strings.Split(strings.ReplaceAll(body, "\t", "    "), "\n"),
		size:  size,
	}
}

func loadTextSlide(path string) (*TextSlide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return NewTextSlide(slideTitle(path), string(data), info.Size()), nil
}

// Title implements Slide.
func (s *TextSlide) Title() string { return s.title }

// Render implements Slide: title header, body clipped to the region,
// footer with the source size.
func (s *TextSlide) Render(width, height int) string {
	if width < 4 || height < 1 {
		return ""
	}
	inner := width - 4 // two cells of horizontal padding

	rows := make([]string, 0, height)
	rows = append(rows, "  "+textTitleStyle.Render(render.Truncate(s.title, inner)))
	if height > 2 {
		rows = append(rows, "")
	}

	bodyHeight := height - len(rows)
	if s.size > 0 {
		bodyHeight-- // reserve the footer row
	}
	for i := 0; i < bodyHeight && i < len(s.lines); i++ {
		rows = append(rows, "  "+render.Truncate(s.lines[i], inner))
	}

	if s.size > 0 && height > len(rows) {
		for len(rows) < height-1 {
			rows = append(rows, "")
		}
		footer := humanize.IBytes(uint64(s.size)) //nolint:gosec // sizes from os.Stat are non-negative
		rows = append(rows, "  "+textFooterStyle.Render(footer))
	}

	return strings.Join(rows, "\n")
}
