package core

// Action represents a semantic game action, abstracted from physical key
// presses. Directional actions and thrust carry held-key semantics: they
// are present in a frame for as long as the platform considers the key
// held. Pause, restart and quit are edge-triggered.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W - rotate lookup / pitch up
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A - rotate counter-clockwise (Deluxe)
	ActionRight          // Right arrow, D - rotate clockwise (Deluxe)
	ActionThrust         // Space - fire the thruster
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after a flight ends
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
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
	case ActionThrust:
		return "Thrust"
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

// InputFrame represents the input state for a single simulation frame:
// the set of actions held or triggered during the frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AnyDirection returns true if any of the four directional actions is held.
func (f InputFrame) AnyDirection() bool {
	return f.Has(ActionUp) || f.Has(ActionDown) || f.Has(ActionLeft) || f.Has(ActionRight)
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
