package spacejump

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-jump/internal/config"
	"github.com/vovakirdan/space-jump/internal/core"
)

// Phase is the loop state.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseEnding
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnding:
		return "ending"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Simulation is what the driver advances.
type Simulation interface {
	Step(keys core.Keys)
	Dead() bool
	Score() int
}

// Driver turns wall-clock frames into whole fixed steps. Time is tracked in
// float milliseconds; the fractional step left over at the end of a frame is
// carried into the next one.
type Driver struct {
	sim    Simulation
	audio  core.Audio
	ranker core.Ranker
	logger *log.Logger

	stepsPerMs float64
	maxGap     float64 // ms
	startDelay time.Duration
	endDelay   time.Duration

	phase    Phase
	started  bool
	previous time.Time
	leftover float64 // ms
	endingAt time.Time
	steps    int
}

// NewDriver creates a driver for sim. Nil collaborators are replaced with
// no-ops.
func NewDriver(sim Simulation, cfg config.SpaceJumpConfig, audio core.Audio, ranker core.Ranker, logger *log.Logger) *Driver {
	if audio == nil {
		audio = core.NopAudio{}
	}
	if ranker == nil {
		ranker = &core.NopRanker{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		sim:        sim,
		audio:      audio,
		ranker:     ranker,
		logger:     logger,
		stepsPerMs: cfg.Physics.StepsPerSecond / 1000,
		maxGap:     cfg.Loop.MaxFrameGap * 1000,
		startDelay: seconds(cfg.Loop.StartDelay),
		endDelay:   seconds(cfg.Loop.EndDelay),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Start sets the baseline so that stepping begins after the start delay.
// Frames before that carry a negative leftover and run no steps.
func (d *Driver) Start(now time.Time) {
	d.started = true
	d.phase = PhaseRunning
	d.previous = now.Add(d.startDelay)
	d.leftover = 0
	d.audio.Play(core.CueGameStart)
	d.logger.Debug("session started", "delay", d.startDelay)
}

// Frame runs the steps owed for the time since the previous frame and
// reports whether the host should keep scheduling frames. The first call
// starts the session.
func (d *Driver) Frame(now time.Time, keys core.Keys) bool {
	if !d.started {
		d.Start(now)
	}

	switch d.phase {
	case PhaseOver:
		return false
	case PhasePaused:
		return true
	}

	elapsed := float64(now.Sub(d.previous)) / float64(time.Millisecond)
	gap := math.Min(d.maxGap, elapsed+d.leftover)
	d.previous = now

	steps := 0
	if gap > 0 {
		steps = int(gap * d.stepsPerMs)
		d.leftover = gap - float64(steps)/d.stepsPerMs
	} else {
		d.leftover = gap
	}

	for range steps {
		d.sim.Step(keys)
		d.steps++
		if d.phase == PhaseRunning && d.sim.Dead() {
			d.beginEnding(now)
		}
	}

	if d.phase == PhaseEnding && now.Sub(d.endingAt) >= d.endDelay {
		d.phase = PhaseOver
		d.logger.Debug("session over", "score", d.sim.Score(), "steps", d.steps)
		return false
	}
	return true
}

func (d *Driver) beginEnding(now time.Time) {
	d.phase = PhaseEnding
	d.endingAt = now
	score := d.sim.Score()
	d.audio.Play(core.CueGameOver)
	d.ranker.Submit(score)
	d.logger.Debug("session ending", "score", score)
}

// Pause halts stepping. Only a running session can be paused.
func (d *Driver) Pause() bool {
	if d.phase != PhaseRunning || !d.started {
		return false
	}
	d.phase = PhasePaused
	return true
}

// Resume restarts stepping from now, dropping the time spent paused. A
// session paused during the start delay keeps the part of the delay that
// had not elapsed yet.
func (d *Driver) Resume(now time.Time) bool {
	if d.phase != PhasePaused {
		return false
	}
	d.phase = PhaseRunning
	d.previous = now
	d.leftover = math.Min(d.leftover, 0)
	return true
}

// Phase returns the current loop state.
func (d *Driver) Phase() Phase { return d.phase }

// Leftover returns the carried time in milliseconds.
func (d *Driver) Leftover() float64 { return d.leftover }

// Steps returns the number of steps run so far.
func (d *Driver) Steps() int { return d.steps }
