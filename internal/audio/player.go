// Package audio plays the simulation's sound cues through the system
// speaker. Cues are synthesized on the fly, so there are no asset files.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-jump/internal/core"
)

// Options configures a Player.
type Options struct {
	Volume float64 // master volume, 0..1
	Logger *log.Logger
	Now    func() time.Time
}

// Player implements core.Audio. Play never blocks: the streamer is queued
// on a mixer the speaker drains on its own goroutine.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	throttle *Throttle
	volume   float64
	logger   *log.Logger
	enabled  bool
	output   func(beep.Streamer)
}

// New opens the speaker. When no audio device is available the player
// logs a warning and stays silent.
func New(opts Options) *Player {
	p := newPlayer(opts)
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "err", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	p.output = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return p
}

func newPlayer(opts Options) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	vol := opts.Volume
	if vol <= 0 || vol > 1 {
		vol = 1
	}
	return &Player{
		mixer:    &beep.Mixer{},
		throttle: NewThrottle(DefaultWindows, opts.Now),
		volume:   vol,
		logger:   logger,
	}
}

// Enabled reports whether a device was opened.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play implements core.Audio.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.throttle.Allow(cue) {
		return
	}
	if s := Synth(cue, p.volume); s != nil {
		p.output(s)
	}
}

// Close silences everything that is still playing and disables the player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
