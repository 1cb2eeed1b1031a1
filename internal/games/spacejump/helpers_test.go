package spacejump

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/space-jump/internal/config"
	"github.com/vovakirdan/space-jump/internal/core"
)

type recordingAudio struct {
	cues []core.Cue
}

func (r *recordingAudio) Play(c core.Cue) { r.cues = append(r.cues, c) }

func (r *recordingAudio) count(c core.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

type countingRanker struct {
	submits []int
}

func (r *countingRanker) Submit(score int) { r.submits = append(r.submits, score) }
func (r *countingRanker) Best() int { return 0 }

// testConfig is the default config without comets or difficulty scaling.
func testConfig() config.SpaceJumpConfig {
	cfg := config.DefaultSpaceJumpConfig()
	cfg.Generator.Comets.Enabled = false
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestWorld(t *testing.T, mutate func(*config.SpaceJumpConfig)) (*World, *recordingAudio) {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	audio := &recordingAudio{}
	return NewWorld(cfg, rand.New(rand.NewSource(1)), audio, 0), audio
}

// land steps without input until the player stands on a platform.
func land(t *testing.T, w *World) *Object {
	t.Helper()
	for range 2000 {
		w.Step(core.Keys{})
		if p := w.OnPlatform(); p != nil {
			return p
		}
	}
	t.Fatal("player never landed")
	return nil
}
