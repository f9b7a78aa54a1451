package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move craft up (held)
	ActionDown              // S, Down arrow - move craft down (held)
	ActionLeft              // A, Left arrow - move craft left (held)
	ActionRight             // D, Right arrow - move craft right (held)
	ActionFire              // Space - fire projectile (held)
	ActionSelectEasy        // 1 - pick Easy on the start screen
	ActionSelectMed         // 2 - pick Medium on the start screen
	ActionSelectHard        // 3 - pick Hard on the start screen
	ActionConfirm           // Enter - confirm selection in menus
	ActionBack              // B, Escape - go back
	ActionRestart           // R key - restart after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
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
	case ActionSelectEasy:
		return "SelectEasy"
	case ActionSelectMed:
		return "SelectMedium"
	case ActionSelectHard:
		return "SelectHard"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input snapshot for a single simulation tick.
// Directional and fire actions present in the frame are treated as held
// for that tick; everything else is a discrete trigger.
type InputFrame struct {
	// Actions maps action types to whether they were asserted this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as asserted for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action is asserted in this frame.
func (f *InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all actions, readying the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
