package core

import (
	"testing"
	"time"
)

func TestKeyHoldWindow(t *testing.T) {
	base := time.Unix(0, 0)
	h := NewKeyHold(150 * time.Millisecond)

	h.Press(KeyLeft, base)
	if !h.Snapshot(base.Add(100 * time.Millisecond)).Left {
		t.Error("left should be held inside the window")
	}
	if h.Snapshot(base.Add(150 * time.Millisecond)).Left {
		t.Error("left should be released once the window has passed")
	}

	// A repeat press extends the hold
	h.Press(KeyLeft, base.Add(140*time.Millisecond))
	if !h.Snapshot(base.Add(200 * time.Millisecond)).Left {
		t.Error("repeat press should extend the hold")
	}
}

func TestKeyHoldOpposites(t *testing.T) {
	now := time.Unix(10, 0)
	h := NewKeyHold(time.Second)

	h.Press(KeyLeft, now)
	h.Press(KeyRight, now)
	keys := h.Snapshot(now)
	if keys.Left || !keys.Right {
		t.Errorf("pressing right should release left, got %+v", keys)
	}

	h.Press(KeyUp, now)
	h.Press(KeyDown, now)
	keys = h.Snapshot(now)
	if keys.Up || !keys.Down {
		t.Errorf("pressing down should release up, got %+v", keys)
	}

	h.Reset()
	if h.Snapshot(now) != (Keys{}) {
		t.Error("Reset should release every key")
	}
}
