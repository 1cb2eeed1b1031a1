package spacejump

import (
	"math/rand"

	"github.com/vovakirdan/space-jump/internal/config"
	"github.com/vovakirdan/space-jump/internal/core"
)

// Generator spawns platforms ahead of the camera and schedules comets.
type Generator struct {
	NextPlatformTop   float64
	PreviousPlatformX float64
	NextCometTop      float64
	Spawned           [KindAlert + 1]int // objects created per kind

	gen    config.GeneratorConfig
	levels *levelCursor
	rng    *rand.Rand
}

func newGenerator(gen config.GeneratorConfig, rng *rand.Rand, cameraTop float64) Generator {
	return Generator{
		NextCometTop: cameraTop - gen.Comets.StartHeight,
		gen:          gen,
		levels:       newLevelCursor(gen, rng),
		rng:          rng,
	}
}

// Level returns the name of the active level config.
func (g *Generator) Level() string {
	return g.levels.Name()
}

// step spawns at most one platform and one alert.
func (g *Generator) step(w *World) {
	if w.Camera.Top()-w.t.world < g.NextPlatformTop {
		g.spawnPlatform(w)
	}
	if g.gen.Comets.Enabled && w.Camera.Top() < g.NextCometTop {
		g.spawnAlert(w)
	}
}

func (g *Generator) spawnPlatform(w *World) {
	lvl := g.levels.Next()
	draw := g.rng.Float64()
	kind := pickPlatform(lvl, draw)

	x := core.ClampF(g.PreviousPlatformX+(0.5-g.rng.Float64())*g.gen.Spread, 0, w.t.world-w.t.platW)
	platform := w.newPlatform(kind, core.Vec2{X: x, Y: g.NextPlatformTop})
	w.Objects.Add(platform, LayerPlatforms)
	g.Spawned[kind]++

	g.PreviousPlatformX = x
	gap := w.difficulty.Gap(g.gen.GapMin, w.score, w.Steps) + g.rng.Float64()*g.gen.GapVar
	g.NextPlatformTop -= gap

	if lvl.Rocket.Contains(draw) {
		rocket := &Object{
			Kind: KindRocket,
			Pos: core.Vec2{
				X: platform.Left() + (platform.W-w.t.rocketW)*g.rng.Float64(),
				Y: platform.Top() - w.t.rocketH,
			},
			W: w.t.rocketW,
			H: w.t.rocketH,
		}
		w.Objects.Add(rocket, LayerHazards)
		g.Spawned[KindRocket]++
	}
}

func (g *Generator) spawnAlert(w *World) {
	alert := &Object{
		Kind: KindAlert,
		Pos:  core.Vec2{X: g.rng.Float64() * (w.t.world - w.t.cometW), Y: w.Camera.Top()},
		W:    w.t.cometW,
		H:    w.t.cometH,
		Time: w.t.alertSteps,
	}
	w.Objects.Add(alert, LayerAlerts)
	g.Spawned[KindAlert]++
	g.NextCometTop -= g.gen.Comets.Interval + g.rng.Float64()*g.gen.Comets.IntervalVar
}
