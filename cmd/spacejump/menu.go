package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-jump/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick modes interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the scoreboard.
Press B while paused or after game over to return to the menu.

Examples:
  spacejump menu
  spacejump menu --fps 30 --player ada`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addSessionFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkDifficulty(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	launcher, cleanup := newLauncher(logger)
	defer cleanup()

	return tui.RunSession(launcher, runtimeConfig())
}
