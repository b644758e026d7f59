package core

// Action represents a discrete game event, abstracted from physical key
// presses and platform timers.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow, W
	ActionDown            // Down arrow, S
	ActionLeft            // Left arrow, A
	ActionRight           // Right arrow, D
	ActionQuit            // Q, Esc, Ctrl+C, window close
	ActionRedirect        // Periodic redirect timer fired
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
	case ActionRedirect:
		return "Redirect"
	default:
		return "Unknown"
	}
}

// Direction returns the unit direction for a directional action.
// The second result is false for non-directional actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirNone, false
	}
}

// InputFrame holds the events drained for a single simulation tick,
// in arrival order.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to the frame. ActionNone is dropped and a
// redirect already pending in this frame is not queued twice.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if a == ActionRedirect && f.Has(ActionRedirect) {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns a copy of the frame's actions in arrival order.
func (f InputFrame) Actions() []Action {
	return append([]Action(nil), f.actions...)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
