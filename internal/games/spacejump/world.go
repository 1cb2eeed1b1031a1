package spacejump

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/space-jump/internal/config"
	"github.com/vovakirdan/space-jump/internal/core"
	"github.com/vovakirdan/space-jump/internal/pool"
)

// World is one game session's simulation state. It is owned by a single
// goroutine and advanced only through Step.
type World struct {
	Player  Player
	Camera  Camera
	Objects *pool.Layered[*Object]
	Gen     Generator

	Steps       int
	BackgroundY float64 // scroll offset handed to the background

	t          tuning
	difficulty *config.DifficultyManager
	audio      core.Audio
	bgHeight   float64
	onPlatform *Object

	score        int
	startBottom  float64
	lowestBottom float64
}

// NewWorld builds the opening layout: the camera at the origin, one static
// platform centered under the player.
func NewWorld(cfg config.SpaceJumpConfig, rng *rand.Rand, audio core.Audio, bgHeight float64) *World {
	if audio == nil {
		audio = core.NopAudio{}
	}
	t := newTuning(cfg)
	w := &World{
		Objects:    pool.New[*Object](layerCount),
		t:          t,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		audio:      audio,
		bgHeight:   bgHeight,
	}

	w.Camera = Camera{W: t.world, H: t.world}
	w.Camera.Speed = -t.scroll

	w.Player = Player{
		Pos:       core.Vec2{X: (t.world - t.playerW) / 2, Y: t.playerStartY},
		W:         t.playerW,
		H:         t.playerH,
		Direction: 1,
		Anim:      NewAnimator(t.animStep),
	}
	w.Player.High = w.Player.Bottom()
	w.startBottom = w.Player.Bottom()
	w.lowestBottom = w.startBottom

	first := w.newPlatform(KindStatic, core.Vec2{X: (t.world - t.platW) / 2, Y: t.firstY})
	w.Objects.Add(first, LayerPlatforms)

	w.Gen = newGenerator(cfg.Generator, rng, w.Camera.Top())
	w.Gen.PreviousPlatformX = first.Pos.X
	w.Gen.Spawned[KindStatic]++

	w.BackgroundY = -bgHeight * rng.Float64()
	return w
}

func (w *World) newPlatform(kind Kind, pos core.Vec2) *Object {
	o := &Object{Kind: kind, Pos: pos, W: w.t.platW, H: w.t.platH}
	switch kind {
	case KindMoving:
		o.Direction = 1
	case KindIce:
		o.Time = w.t.iceMax
	}
	return o
}

// Step advances the simulation by one fixed tick. Adherence is decided for
// every object before the player moves, and the player moves before any
// object ticks.
func (w *World) Step(keys core.Keys) {
	w.onPlatform = nil
	w.Objects.Each(func(o *Object) { o.preTick(w) })

	w.Gen.step(w)

	w.tickPlayer(keys)
	w.checkDeath()

	w.Objects.Each(func(o *Object) { o.tick(w) })

	w.moveCamera()
	w.Steps++
}

func (w *World) checkDeath() {
	p := &w.Player
	if p.Dead {
		return
	}
	fellBehind := p.Top() > w.Camera.Bottom() && p.Speed.Y >= w.Camera.Speed+w.Camera.Boost
	fellOff := p.Top() > w.Camera.Bottom()+w.t.world/2
	if fellBehind || fellOff {
		p.Dead = true
	}
}

func (w *World) moveCamera() {
	c := &w.Camera
	if c.Boost < 0 {
		c.Boost = math.Min(0, c.Boost+w.t.gravity)
	}
	c.Speed = -w.difficulty.Speed(w.t.scroll, w.score, w.Steps)
	scroll := c.Speed + c.Boost
	c.Pos.Y += scroll

	w.BackgroundY -= scroll / 10
	if w.bgHeight > 0 {
		for w.BackgroundY > 0 {
			w.BackgroundY -= w.bgHeight
		}
	}
}

// Dead reports whether the player has met a terminal condition.
func (w *World) Dead() bool {
	return w.Player.Dead
}

// Score is the height climbed in score units.
func (w *World) Score() int {
	return w.score
}

// OnPlatform returns the platform the player stood on during the last step.
func (w *World) OnPlatform() *Object {
	return w.onPlatform
}

// Level returns the name of the level config currently spawning platforms.
func (w *World) Level() string {
	return w.Gen.Level()
}

// Difficulty returns the current difficulty level in [0, 1].
func (w *World) Difficulty() float64 {
	return w.difficulty.Level(w.score, w.Steps)
}

func (w *World) updateScore() {
	w.lowestBottom = math.Min(w.lowestBottom, w.Player.Bottom())
	w.score = int(math.Floor(math.Max(0, w.startBottom-w.lowestBottom) / w.t.scoreUnit))
}
