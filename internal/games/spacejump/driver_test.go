package spacejump

import (
	"testing"
	"time"

	"github.com/vovakirdan/space-jump/internal/core"
)

type fakeSim struct {
	steps int
	dieAt int // 0 never dies
	score int
}

func (f *fakeSim) Step(core.Keys) { f.steps++ }
func (f *fakeSim) Dead() bool { return f.dieAt > 0 && f.steps >= f.dieAt }
func (f *fakeSim) Score() int { return f.score }

func newTestDriver(sim Simulation) (*Driver, *recordingAudio, *countingRanker) {
	audio := &recordingAudio{}
	ranker := &countingRanker{}
	return NewDriver(sim, testConfig(), audio, ranker, nil), audio, ranker
}

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestDriverStartDelay(t *testing.T) {
	sim := &fakeSim{}
	d, audio, _ := newTestDriver(sim)

	d.Frame(t0, core.Keys{})
	if sim.steps != 0 || d.Leftover() != -1000 {
		t.Fatalf("first frame: steps %d leftover %v", sim.steps, d.Leftover())
	}
	if audio.count(core.CueGameStart) != 1 {
		t.Error("game start cue not played")
	}

	d.Frame(t0.Add(ms(500)), core.Keys{})
	if sim.steps != 0 {
		t.Fatalf("stepped during the start delay: %d", sim.steps)
	}

	d.Frame(t0.Add(ms(1010)), core.Keys{})
	if sim.steps != 5 {
		t.Errorf("10ms after the delay: %d steps, expected 5", sim.steps)
	}
}

func TestDriverCarriesFractionalSteps(t *testing.T) {
	sim := &fakeSim{}
	d, _, _ := newTestDriver(sim)
	d.Start(t0.Add(-ms(1000))) // no delay left

	d.Frame(t0.Add(ms(3)), core.Keys{})
	if sim.steps != 1 || d.Leftover() != 1 {
		t.Fatalf("3ms: steps %d leftover %v, expected 1 and 1ms", sim.steps, d.Leftover())
	}
	d.Frame(t0.Add(ms(6)), core.Keys{})
	if sim.steps != 3 || d.Leftover() != 0 {
		t.Errorf("6ms: steps %d leftover %v, expected 3 and 0", sim.steps, d.Leftover())
	}
}

func TestDriverCapsCatchUp(t *testing.T) {
	sim := &fakeSim{}
	d, _, _ := newTestDriver(sim)
	d.Start(t0.Add(-ms(1000)))

	d.Frame(t0.Add(10*time.Second), core.Keys{})
	if sim.steps != 250 {
		t.Errorf("steps after a long stall = %d, expected the 500ms cap of 250", sim.steps)
	}
}

func TestDriverEndingOnce(t *testing.T) {
	sim := &fakeSim{dieAt: 3, score: 42}
	d, audio, ranker := newTestDriver(sim)
	d.Start(t0.Add(-ms(1000)))

	if !d.Frame(t0.Add(ms(20)), core.Keys{}) {
		t.Fatal("ending should keep the loop scheduled")
	}
	if d.Phase() != PhaseEnding {
		t.Fatalf("phase = %v, expected ending", d.Phase())
	}
	if sim.steps != 10 {
		t.Errorf("steps = %d; the simulation keeps running while ending", sim.steps)
	}

	// Still dead on later frames: no second ending.
	d.Frame(t0.Add(ms(40)), core.Keys{})
	d.Frame(t0.Add(ms(60)), core.Keys{})

	if len(ranker.submits) != 1 || ranker.submits[0] != 42 {
		t.Errorf("submits = %v, expected [42]", ranker.submits)
	}
	if audio.count(core.CueGameOver) != 1 {
		t.Errorf("game over cue played %d times", audio.count(core.CueGameOver))
	}

	if d.Frame(t0.Add(ms(20)+1500*time.Millisecond), core.Keys{}) {
		t.Error("frame after the end delay should stop the loop")
	}
	if d.Phase() != PhaseOver {
		t.Fatalf("phase = %v, expected over", d.Phase())
	}

	steps := sim.steps
	if d.Frame(t0.Add(5*time.Second), core.Keys{}) || sim.steps != steps {
		t.Error("over sessions must not step")
	}
	if len(ranker.submits) != 1 {
		t.Error("over must not resubmit")
	}
}

func TestDriverPauseResume(t *testing.T) {
	sim := &fakeSim{}
	d, _, _ := newTestDriver(sim)
	d.Start(t0.Add(-ms(1000)))

	d.Frame(t0.Add(ms(3)), core.Keys{})
	if !d.Pause() {
		t.Fatal("Pause should succeed while running")
	}
	if d.Pause() {
		t.Error("second Pause should be rejected")
	}

	steps := sim.steps
	if !d.Frame(t0.Add(10*time.Second), core.Keys{}) {
		t.Error("paused sessions stay scheduled")
	}
	if sim.steps != steps {
		t.Fatalf("stepped %d times while paused", sim.steps-steps)
	}

	if !d.Resume(t0.Add(10 * time.Second)) {
		t.Fatal("Resume should succeed while paused")
	}
	if d.Leftover() != 0 {
		t.Errorf("leftover after resume = %v, expected 0", d.Leftover())
	}

	d.Frame(t0.Add(10*time.Second+ms(4)), core.Keys{})
	if got := sim.steps - steps; got != 2 {
		t.Errorf("steps after resume = %d, expected 2 (pause time is not simulated)", got)
	}
}

func TestDriverPauseDuringStartDelay(t *testing.T) {
	sim := &fakeSim{}
	d, _, _ := newTestDriver(sim)

	d.Frame(t0, core.Keys{})
	d.Frame(t0.Add(ms(100)), core.Keys{})
	if !d.Pause() {
		t.Fatal("Pause should succeed during the start delay")
	}
	d.Resume(t0.Add(ms(200)))
	if d.Leftover() >= 0 {
		t.Fatalf("leftover after resume = %v, expected the remaining delay", d.Leftover())
	}

	d.Frame(t0.Add(ms(300)), core.Keys{})
	if sim.steps != 0 {
		t.Fatalf("stepped %d times before the start delay elapsed", sim.steps)
	}

	// 100ms of delay ran before the pause; the other 900ms run after it.
	d.Frame(t0.Add(ms(1100)), core.Keys{})
	if sim.steps != 0 {
		t.Fatalf("stepped %d times at the end of the delay", sim.steps)
	}
	d.Frame(t0.Add(ms(1110)), core.Keys{})
	if sim.steps != 5 {
		t.Errorf("10ms after the delay: %d steps, expected 5", sim.steps)
	}
}

func TestDriverDrivesWorld(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	ranker := &countingRanker{}
	d := NewDriver(w, testConfig(), nil, ranker, nil)
	d.Start(t0.Add(-ms(1000)))

	now := t0
	for range 600 {
		now = now.Add(16 * time.Millisecond)
		if !d.Frame(now, core.Keys{}) {
			break
		}
	}

	// Standing still, the camera eventually leaves the player behind.
	if d.Phase() != PhaseOver {
		t.Fatalf("phase = %v after idling", d.Phase())
	}
	if len(ranker.submits) != 1 {
		t.Errorf("submits = %v", ranker.submits)
	}
	if d.Steps() != w.Steps {
		t.Errorf("driver counted %d steps, world ran %d", d.Steps(), w.Steps)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseEnding.String() != "ending" || Phase(9).String() != "unknown" {
		t.Error("Phase.String mismatch")
	}
}
