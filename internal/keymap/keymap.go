// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "deck", "jump"
}

// All contains all key bindings for resolution and help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit application", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},
	{[]string{"r"}, ActionReload, "Reload deck", "global"},

	// Deck navigation
	{[]string{"h", "left"}, ActionPrev, "Previous panel", "deck"},
	{[]string{"l", "right"}, ActionNext, "Next panel", "deck"},
	{[]string{"home"}, ActionFirst, "First panel", "deck"},
	{[]string{"G", "end"}, ActionLast, "Last panel", "deck"},
	{[]string{"g"}, ActionJump, "Jump to panel", "deck"},
	{[]string{" "}, ActionToggleAutoplay, "Toggle autoplay", "deck"},
	{[]string{"i"}, ActionToggleIndicators, "Toggle indicators", "deck"},

	// Jump prompt
	{[]string{"enter"}, ActionConfirm, "Confirm jump", "jump"},
	{[]string{"esc"}, ActionCancel, "Cancel", "jump"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
