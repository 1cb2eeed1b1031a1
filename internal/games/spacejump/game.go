// Package spacejump implements Space Jump, a vertical endless jumper.
// The player climbs procedurally generated platforms while the camera
// scrolls upward, collects rockets and dodges comets. The simulation runs
// at a fixed step rate; Driver maps wall-clock frames onto it.
package spacejump

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-jump/internal/config"
	"github.com/vovakirdan/space-jump/internal/core"
	"github.com/vovakirdan/space-jump/internal/registry"
)

// Mode IDs.
const (
	ModeStandard = "spacejump"
	ModeClassic  = "spacejump-classic"
)

// starDensity is the number of stars per world-size square of backdrop.
const starDensity = 60

// Game adapts a World and its Driver to the registry.
type Game struct {
	id     string
	title  string
	env    registry.Env
	logger *log.Logger
	audio  core.Audio
	ranker core.Ranker

	fixed *config.SpaceJumpConfig // used instead of loading from disk
	cfg   config.SpaceJumpConfig

	runtime    core.RuntimeConfig
	world      *World
	driver     *Driver
	background Background
}

// New creates a game for one of the registered modes.
func New(id string, env registry.Env) *Game {
	g := &Game{id: id, env: env, title: "Space Jump"}
	if id == ModeClassic {
		g.title = "Space Jump Classic"
	}

	g.logger = env.Logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.audio = env.Audio
	if g.audio == nil {
		g.audio = core.NopAudio{}
	}
	g.ranker = env.Ranking
	if g.ranker == nil {
		g.ranker = &core.NopRanker{}
	}
	return g
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration files.
func NewWithConfig(id string, cfg config.SpaceJumpConfig, env registry.Env) *Game {
	g := New(id, env)
	g.fixed = &cfg
	return g
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this mode.
func (g *Game) Title() string { return g.title }

// Reset loads the configuration and starts a new session. Configuration
// files are read on every reset so edits apply on the next restart.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.background = NewStarfield(seed, g.cfg.World.Size, starDensity)
	g.world = NewWorld(g.cfg, rng, g.audio, g.background.Height())
	g.driver = NewDriver(g.world, g.cfg, g.audio, g.ranker, g.logger)
	g.logger.Debug("session reset", "mode", g.id, "seed", seed)
}

func (g *Game) loadConfig() config.SpaceJumpConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadSpaceJump(g.env.ConfigPath)
	if err != nil {
		g.logger.Warn("using default config", "path", g.env.ConfigPath, "err", err)
		cfg = config.DefaultSpaceJumpConfig()
	}
	if preset := config.ParsePreset(g.env.Difficulty); preset != "" {
		config.ApplySpaceJumpPreset(&cfg, preset)
	}
	if g.id == ModeClassic {
		config.ApplyClassic(&cfg)
	}
	return cfg
}

// Frame advances the session to now.
func (g *Game) Frame(now time.Time, keys core.Keys) bool {
	if g.driver == nil {
		return false
	}
	return g.driver.Frame(now, keys)
}

// TogglePause pauses or resumes the loop.
func (g *Game) TogglePause(now time.Time) {
	if g.driver == nil {
		return
	}
	if !g.driver.Pause() {
		g.driver.Resume(now)
	}
}

// Snapshot returns a read-only copy of the current frame.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	s := g.world.Snapshot()
	s.Phase = g.driver.Phase()
	s.HighScore = max(g.ranker.Best(), s.Score)
	if lo := g.driver.Leftover(); lo < 0 {
		s.StartIn = -lo / 1000
	}
	return s
}

// Background returns the backdrop of the current session.
func (g *Game) Background() Background { return g.background }

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}
	RenderSnapshot(dst, g.Snapshot(), g.background)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	phase := g.driver.Phase()
	score := g.world.Score()
	return core.GameState{
		Score:     score,
		HighScore: max(g.ranker.Best(), score),
		Paused:    phase == PhasePaused,
		Ending:    phase == PhaseEnding,
		GameOver:  phase == PhaseOver,
	}
}

// World exposes the simulation for hosts that need more than a snapshot.
func (g *Game) World() *World { return g.world }

// Register the modes with the registry
func init() {
	registry.Register(ModeStandard, func(env registry.Env) registry.Game {
		return New(ModeStandard, env)
	})
	registry.Register(ModeClassic, func(env registry.Env) registry.Game {
		return New(ModeClassic, env)
	})
}
