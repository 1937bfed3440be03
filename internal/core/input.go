package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // k, Up arrow - move cursor up
	ActionDown          // j, Down arrow - move cursor down
	ActionLeft          // h, Left arrow - move cursor left
	ActionRight         // l, Right arrow - move cursor right
	ActionFire          // f, Enter, Space - fire at cursor
	ActionStatus        // i - toggle fleet status
	ActionHelp          // ? - toggle help
	ActionRestart       // r - new match after game over
	ActionQuit          // q, Ctrl+C
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
	case ActionFire:
		return "Fire"
	case ActionStatus:
		return "Status"
	case ActionHelp:
		return "Help"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Dir returns the cursor direction for a movement action.
// ok is false for non-movement actions.
func (a Action) Dir() (d Dir, ok bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return 0, false
}
