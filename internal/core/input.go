package core

// Action represents a semantic game action, abstracted from physical key presses.
// Held actions are re-asserted by the platform on every tick while the key is
// down; edge actions fire once per key press. The simulation derives its own
// press/release edges from the held actions, so input stays replayable.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // held: shift piece left (DAS/ARR)
	ActionRight            // held: shift piece right (DAS/ARR)
	ActionSoftDrop         // held: accelerate descent
	ActionRotateCW         // edge: rotate clockwise
	ActionRotateCCW        // edge: rotate counter-clockwise
	ActionHardDrop         // edge: drop to ghost position and lock
	ActionConfirm          // edge: confirm selection in menus
	ActionBack             // edge: leave menu/overlay
	ActionRestart          // edge: restart after game over
	ActionQuit             // edge: exit game/session
	ActionPause            // edge: pause/unpause
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHardDrop:
		return "HardDrop"
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

// InputFrame represents the input state for a single simulation tick.
// It contains all actions asserted during this frame.
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

// Has returns true if the given action was asserted this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
