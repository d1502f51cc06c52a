package core

// Action is a semantic player intent, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - climb
	ActionDown              // S, Down arrow - dive
	ActionAccelerate        // Space - toggle acceleration
	ActionPause             // P, Escape - pause/resume
	ActionRestart           // R - restart the level
	ActionNextLevel         // N - continue after a victory
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionAccelerate:
		return "Accelerate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two host frames.
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
