package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left / pan camera
	ActionRight          // D, Right arrow - walk right / pan camera
	ActionUp             // W, Up arrow - pan camera in the editor
	ActionDown           // S, Down arrow - pan camera in the editor
	ActionJump           // Space - jump, held for longer jumps and bush boosts
	ActionSuicide        // K - give up the current life
	ActionDebug          // F1 - toggle collision overlay
	ActionConfirm        // Enter - start / confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionSuicide:
		return "Suicide"
	case ActionDebug:
		return "Debug"
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

// InputFrame is the input for one simulation tick.
//
// Pressed holds actions whose key went down this tick (edge-triggered).
// Held holds actions whose key is currently down (level-triggered).
// A pressed action is always also held.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks an action as pressed (and held) this tick.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Hold marks an action as held without a new press.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if the action's key is down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// HoldTracker turns terminal key events into held state.
//
// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held for Window ticks after its last event.
type HoldTracker struct {
	Window int
	left   map[Action]int
}

// NewHoldTracker returns a tracker that keeps keys held for window ticks.
func NewHoldTracker(window int) *HoldTracker {
	return &HoldTracker{Window: window, left: make(map[Action]int)}
}

// Touch records a key event for a.
func (h *HoldTracker) Touch(a Action) {
	h.left[a] = h.Window
}

// Active reports whether a is still held from an earlier event.
func (h *HoldTracker) Active(a Action) bool {
	return h.left[a] > 0
}

// Release forgets a immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.left, a)
}

// Apply marks every currently held action on f and advances the timers by one tick.
func (h *HoldTracker) Apply(f *InputFrame) {
	for a, n := range h.left {
		f.Hold(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}

// Reset forgets all held keys.
func (h *HoldTracker) Reset() {
	clear(h.left)
}
