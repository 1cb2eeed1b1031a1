package audio

import (
	"sync"
	"time"

	"github.com/vovakirdan/space-jump/internal/core"
)

// DefaultWindows is the minimum time between two plays of the same cue.
var DefaultWindows = map[core.Cue]time.Duration{
	core.CueJump:      500 * time.Millisecond,
	core.CueIce:       700 * time.Millisecond,
	core.CueRocket:    1000 * time.Millisecond,
	core.CueImpact:    500 * time.Millisecond,
	core.CueGameStart: 1000 * time.Millisecond,
	core.CueGameOver:  1000 * time.Millisecond,
}

// Throttle drops repeats of a cue that arrive within its window.
type Throttle struct {
	mu      sync.Mutex
	windows map[core.Cue]time.Duration
	last    map[core.Cue]time.Time
	now     func() time.Time
}

// NewThrottle creates a throttle. A nil clock uses time.Now.
func NewThrottle(windows map[core.Cue]time.Duration, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	return &Throttle{
		windows: windows,
		last:    make(map[core.Cue]time.Time),
		now:     now,
	}
}

// Allow reports whether cue may play now and, if so, records it.
func (t *Throttle) Allow(cue core.Cue) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.last[cue]; ok && now.Sub(last) < t.windows[cue] {
		return false
	}
	t.last[cue] = now
	return true
}
