package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"control characters stripped", "a\x07b\x1bc", "abc"},
		{"tab preserved", "a\tb", "a\tb"},
		{"invalid utf8 dropped", "a\xffb", "ab"},
		{"nbsp becomes space", "a b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 8); got != "hello..." {
		t.Errorf("Truncate = %q, want %q", got, "hello...")
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q, want %q", got, "short")
	}
}

func TestTruncateStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")

	out := TruncateStyled(styled, 5)
	if lipgloss.Width(out) > 5 {
		t.Errorf("TruncateStyled width = %d, want at most 5", lipgloss.Width(out))
	}

	if got := TruncateStyled("plain", 10); got != "plain" {
		t.Errorf("TruncateStyled = %q, want unchanged", got)
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 5); got != "ab   " {
		t.Errorf("Pad = %q, want %q", got, "ab   ")
	}
}

func TestTruncateAndPad(t *testing.T) {
	got := TruncateAndPad("hello world", 8)
	if lipgloss.Width(got) != 8 {
		t.Errorf("TruncateAndPad width = %d, want 8", lipgloss.Width(got))
	}
}

func TestRow(t *testing.T) {
	row := Row("left", "right", 20)
	if !strings.HasPrefix(row, "left") || !strings.HasSuffix(row, "right") {
		t.Errorf("Row = %q, want left and right anchored", row)
	}
	if lipgloss.Width(row) != 20 {
		t.Errorf("Row width = %d, want 20", lipgloss.Width(row))
	}

	// Content wider than the row still keeps one space gap
	tight := Row("0123456789", "0123456789", 5)
	if !strings.Contains(tight, " ") {
		t.Error("Row should keep a gap even when over budget")
	}
}

func TestSeparator(t *testing.T) {
	if got := lipgloss.Width(Separator(12)); got != 12 {
		t.Errorf("Separator width = %d, want 12", got)
	}
}
