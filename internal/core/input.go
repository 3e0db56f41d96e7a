package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - steer ship left
	ActionRight          // Right arrow, D, L - steer ship right
	ActionUp             // Menu navigation
	ActionDown           // Menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - leave the game, back to the menu
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions recorded for one simulation tick.
// Headless runs replay a script of frames to reproduce a session.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates a frame with the given actions, in order.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{Actions: actions}
}
