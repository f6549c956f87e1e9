package core

// Action represents a semantic game action, abstracted from physical input.
// The simulation only ever sees these; the platform maps keys (or an SSH
// session's keys) onto them, so the core never distinguishes devices.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, W, Enter - the single "activate" event
	ActionMute            // M - toggle mute, valid in any mode
	ActionQuit            // Q, Ctrl+C - exit
	ActionSkinNext        // Tab in menu - cycle craft skin
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	case ActionSkinNext:
		return "SkinNext"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered since the last simulation tick.
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
