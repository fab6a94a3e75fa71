package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, k - move cursor up
	ActionDown               // Down arrow, j - move cursor down
	ActionLeft               // Left arrow, h - move cursor left
	ActionRight              // Right arrow, l - move cursor right
	ActionFlip               // Space - turn over the card under the cursor
	ActionConfirm            // Enter - confirm dialog (also flips outside dialogs)
	ActionBack               // Escape - cancel dialog
	ActionSettings           // O - open the settings dialog
	ActionToggleSound        // M - mute/unmute
	ActionNewGame            // N - deal a fresh table
	ActionRestart            // R - restart after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
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
	case ActionFlip:
		return "Flip"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionSettings:
		return "Settings"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionNewGame:
		return "NewGame"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Click is the screen cell of the last primary-button press, if any.
	Click    Point
	hasClick bool
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

// SetClick records a pointer press at (x, y). A later press in the same
// frame replaces an earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = Point{X: x, Y: y}
	f.hasClick = true
}

// ClickAt returns the pointer press recorded this frame.
func (f InputFrame) ClickAt() (Point, bool) {
	return f.Click, f.hasClick
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasClick = false
}
