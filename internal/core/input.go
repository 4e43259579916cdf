package core

// Action is a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - run left (held)
	ActionRight        // Right arrow, D - run right (held)
	ActionJump         // Up arrow, W, Space - jump (held)
	ActionFocus        // Tab - move the camera to the next entity
	ActionReset        // R - rebuild the scenario
	ActionBack         // B, Esc - back to the scenario menu
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFocus:
		return "Focus"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a continuous hold rather than a
// one-shot press. Only held actions feed the physics input.
func (a Action) Held() bool {
	return a == ActionLeft || a == ActionRight || a == ActionJump
}
