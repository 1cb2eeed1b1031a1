package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-jump/internal/core"
	"github.com/vovakirdan/space-jump/internal/games/spacejump"
	"github.com/vovakirdan/space-jump/internal/platform/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop [mode]",
	Short: "Play a mode in a window",
	Long: `Open a window and play the given mode (default: spacejump).

Controls:
  Left/Right, A/D  - Move
  Up/Space, W      - Jump
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDesktop,
}

func init() {
	addSessionFlags(desktopCmd)
}

func runDesktop(_ *cobra.Command, args []string) error {
	id, err := modeArg(args)
	if err != nil {
		return err
	}
	if err := checkDifficulty(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	launcher, cleanup := newLauncher(logger)
	defer cleanup()

	g, err := launcher.NewGame(id)
	if err != nil {
		return err
	}
	game, ok := g.(*spacejump.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot run on the desktop", id)
	}

	cfg := core.DefaultConfig()
	cfg.FPS = flagFPS
	cfg.Seed = flagSeed
	return desktop.Run(game, cfg)
}
