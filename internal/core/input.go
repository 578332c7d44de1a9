package core

// Action is a semantic player command, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Move one lane left
	ActionRight        // Move one lane right
	ActionStart        // Start from Ready, restart after game over
	ActionQuit         // Leave the game
	ActionHelp         // Toggle the help footer (front-end only)
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
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action is consumed by the simulation
// rather than by the front-end.
func (a Action) IsGameplay() bool {
	return a == ActionLeft || a == ActionRight || a == ActionStart
}
