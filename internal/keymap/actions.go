// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Carousel
	ActionAdvance    Action = "advance"
	ActionRetreat    Action = "retreat"
	ActionToggleMode Action = "toggle_mode"

	// Global
	ActionFind Action = "find"
	ActionHelp Action = "help"
	ActionQuit Action = "quit"
)

// Actions lists every action in help order.
var Actions = []Action{
	ActionAdvance,
	ActionRetreat,
	ActionToggleMode,
	ActionFind,
	ActionHelp,
	ActionQuit,
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}
