package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W, K
	ActionDown         // Down arrow, S, J
	ActionLeft         // Left arrow, A, H
	ActionRight        // Right arrow, D, L
	ActionQuit         // Esc, Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a >= ActionUp && a <= ActionRight
}
