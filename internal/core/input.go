package core

import "time"

// Action represents a discrete host-level command, abstracted from physical
// key presses. Movement is not an Action; it is carried by Keys.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
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

// Key names a held movement key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// Keys is the held-key snapshot read by the simulation once per step.
// The simulation never mutates it.
type Keys struct {
	Left, Right, Up, Down bool
}

// KeyHold turns key-press events into held flags for hosts that never see
// key releases (terminals). A key counts as held until the hold window has
// passed since its last press. Pressing a direction releases the opposite one.
type KeyHold struct {
	window time.Duration
	last   map[Key]time.Time
}

// NewKeyHold creates a KeyHold with the given hold window.
func NewKeyHold(window time.Duration) *KeyHold {
	return &KeyHold{
		window: window,
		last:   make(map[Key]time.Time),
	}
}

// Press records a press of key at now.
func (h *KeyHold) Press(key Key, now time.Time) {
	h.last[key] = now
	switch key {
	case KeyLeft:
		delete(h.last, KeyRight)
	case KeyRight:
		delete(h.last, KeyLeft)
	case KeyUp:
		delete(h.last, KeyDown)
	case KeyDown:
		delete(h.last, KeyUp)
	}
}

// Reset releases every key.
func (h *KeyHold) Reset() {
	for k := range h.last {
		delete(h.last, k)
	}
}

// Snapshot returns the keys still inside their hold window at now.
func (h *KeyHold) Snapshot(now time.Time) Keys {
	held := func(k Key) bool {
		at, ok := h.last[k]
		return ok && now.Sub(at) < h.window
	}
	return Keys{
		Left:  held(KeyLeft),
		Right: held(KeyRight),
		Up:    held(KeyUp),
		Down:  held(KeyDown),
	}
}
