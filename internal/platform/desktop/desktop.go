// Package desktop hosts Space Jump in a window through Ebitengine. It reads
// real key state, so no hold emulation is needed, and draws from the
// game's snapshot with vector shapes.
package desktop

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-jump/internal/core"
	"github.com/vovakirdan/space-jump/internal/games/spacejump"
)

// Window size in pixels.
const (
	DefaultWidth  = 540
	DefaultHeight = 720
)

// Host implements ebiten.Game around a Space Jump game.
type Host struct {
	game    *spacejump.Game
	runtime core.RuntimeConfig
	width   int
	height  int
	now     func() time.Time
	cells   *core.Screen // starfield raster
}

// New creates a host. The game is reset on creation.
func New(game *spacejump.Game, cfg core.RuntimeConfig) *Host {
	h := &Host{
		game:    game,
		runtime: cfg,
		width:   DefaultWidth,
		height:  DefaultHeight,
		now:     time.Now,
		cells:   core.NewScreen(DefaultWidth/8, DefaultHeight/8),
	}
	h.game.Reset(cfg)
	return h
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	now := h.now()
	state := h.game.State()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if !state.GameOver {
			h.game.TogglePause(now)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if state.GameOver {
			h.game.Reset(h.runtime)
		}
	}

	h.game.Frame(now, readKeys())
	return nil
}

func readKeys() core.Keys {
	return core.Keys{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	s := h.game.Snapshot()
	screen.Fill(spaceColor)

	if bg := h.game.Background(); bg != nil {
		drawBackground(screen, h.cells, bg, s.BackgroundY)
	}
	DrawSnapshot(screen, s)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  High: %d", s.Score, s.HighScore), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.0f%%", s.Level, s.Difficulty*100), h.width-120, 8)

	switch s.Phase {
	case spacejump.PhaseRunning:
		if s.StartIn > 0 {
			drawBanner(screen, "GET READY", fmt.Sprintf("Starting in %.1fs", s.StartIn))
		}
	case spacejump.PhasePaused:
		drawBanner(screen, "PAUSED", "P to resume")
	case spacejump.PhaseOver:
		drawBanner(screen, "GAME OVER", fmt.Sprintf("Score %d  R to restart  Q to quit", s.Score))
	}
}

// Layout implements ebiten.Game.
func (h *Host) Layout(int, int) (int, int) {
	return h.width, h.height
}

// Run opens the window and blocks until it is closed.
func Run(game *spacejump.Game, cfg core.RuntimeConfig) error {
	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetWindowTitle(game.Title())
	if cfg.FPS > 0 {
		ebiten.SetTPS(cfg.FPS)
	}

	err := ebiten.RunGame(New(game, cfg))
	if err == ebiten.Termination {
		return nil
	}
	return err
}
