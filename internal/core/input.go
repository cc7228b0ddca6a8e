package core

// Action represents a semantic game action, abstracted from physical key
// presses. Turn and fire actions exist per player slot so that a duel runs
// from one keyboard (or one SSH session) without the games knowing about key
// bindings.
type Action int

const (
	ActionNone Action = iota
	ActionP1TurnLeft
	ActionP1TurnRight
	ActionP1Fire
	ActionP2TurnLeft
	ActionP2TurnRight
	ActionP2Fire
	ActionConfirm // Enter - confirm selection in menu
	ActionBack    // B, Escape - go back to menu
	ActionRestart // R key - restart game after game over
	ActionQuit    // Q, Ctrl+C - exit game/session
	ActionPause   // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionP1TurnLeft:
		return "P1 Turn Left"
	case ActionP1TurnRight:
		return "P1 Turn Right"
	case ActionP1Fire:
		return "P1 Fire"
	case ActionP2TurnLeft:
		return "P2 Turn Left"
	case ActionP2TurnRight:
		return "P2 Turn Right"
	case ActionP2Fire:
		return "P2 Fire"
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

// InputFrame represents the input state for a single simulation tick: every
// action observed since the previous tick. The platform fills it from key
// events and clears it after each Step.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
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
