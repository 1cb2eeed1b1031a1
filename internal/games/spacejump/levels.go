package spacejump

import (
	"math/rand"

	"github.com/vovakirdan/space-jump/internal/config"
)

// levelCursor walks the intro levels in order, then picks steady levels at
// random. Each level lasts for its platform count.
type levelCursor struct {
	intro     []config.LevelConfig
	steady    []config.LevelConfig
	rng       *rand.Rand
	nextIntro int
	current   config.LevelConfig
	remaining int
}

func newLevelCursor(gen config.GeneratorConfig, rng *rand.Rand) *levelCursor {
	return &levelCursor{intro: gen.Intro, steady: gen.Steady, rng: rng}
}

// Next returns the level that governs the next platform.
func (c *levelCursor) Next() config.LevelConfig {
	if c.remaining <= 0 {
		c.advance()
	}
	c.remaining--
	return c.current
}

// Name returns the active level's name.
func (c *levelCursor) Name() string {
	return c.current.Name
}

func (c *levelCursor) advance() {
	if c.nextIntro < len(c.intro) {
		c.current = c.intro[c.nextIntro]
		c.nextIntro++
	} else {
		c.current = c.steady[c.rng.Intn(len(c.steady))]
	}
	c.remaining = max(c.current.PlatformCount, 1)
}

// pickPlatform maps a draw in [0, 1) to a platform kind. The ranges are
// tested Ice, Moving, Static, each match overwriting the previous one, so
// Static wins where ranges overlap. A draw no range covers is Static.
func pickPlatform(lvl config.LevelConfig, draw float64) Kind {
	kind := KindStatic
	if lvl.Ice.Contains(draw) {
		kind = KindIce
	}
	if lvl.Moving.Contains(draw) {
		kind = KindMoving
	}
	if lvl.Static.Contains(draw) {
		kind = KindStatic
	}
	return kind
}
