package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionReload Action = "reload"

	// Deck navigation
	ActionPrev             Action = "prev"
	ActionNext             Action = "next"
	ActionFirst            Action = "first"
	ActionLast             Action = "last"
	ActionJump             Action = "jump"
	ActionToggleAutoplay   Action = "toggle_autoplay"
	ActionToggleIndicators Action = "toggle_indicators"

	// Jump prompt
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
)
