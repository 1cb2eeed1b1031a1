package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-jump/internal/audio"
	"github.com/vovakirdan/space-jump/internal/config"
	"github.com/vovakirdan/space-jump/internal/core"
	"github.com/vovakirdan/space-jump/internal/platform/tui"
	"github.com/vovakirdan/space-jump/internal/ranking"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAudio      bool
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode in the terminal",
	Long: `Start playing the given mode (default: spacejump).

Controls:
  Left/Right, A/D  - Move
  Up/Space, W      - Jump
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, longer jump grace
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, comets come early
  fixed  - No progression

Examples:
  spacejump play
  spacejump play spacejump-classic
  spacejump play --difficulty hard --no-audio
  spacejump play --config ./my-spacejump.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addSessionFlags(playCmd)
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Watch config directories and report edits")
}

// addSessionFlags registers the flags every command that creates games takes.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagAudio, "audio", true, "Play sound effects")
}

func checkDifficulty() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
	}
	return nil
}

// newAudio opens the speaker unless audio is turned off.
func newAudio(logger *log.Logger) (core.Audio, func()) {
	if !flagAudio {
		return core.NopAudio{}, func() {}
	}
	p := audio.New(audio.Options{Logger: logger})
	return p, p.Close
}

// newWatcher watches every existing config directory, including the one
// holding --config.
func newWatcher(logger *log.Logger) *config.Watcher {
	paths := config.SearchPaths()
	if flagConfig != "" {
		paths = append(paths, flagConfig)
	}
	dirs := config.ExistingDirs(paths)
	if len(dirs) == 0 {
		logger.Warn("nothing to watch, no config directory exists", "paths", paths)
		return nil
	}

	w, err := config.NewWatcher(dirs...)
	if err != nil {
		logger.Warn("config watcher disabled", "err", err)
		return nil
	}
	logger.Info("watching config", "dirs", dirs, "abs", absPaths(dirs))
	return w
}

func absPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		out = append(out, p)
	}
	return out
}

// newLauncher wires storage, ranking and audio for terminal sessions. The
// returned cleanup waits for pending score submissions before closing.
func newLauncher(logger *log.Logger) (tui.Launcher, func()) {
	store := openStore(logger)
	boards := ranking.NewBoards(store, playerName(), logger)
	sound, closeAudio := newAudio(logger)

	cleanup := func() {
		closeAudio()
		boards.Wait()
		if store != nil {
			store.Close()
		}
	}
	return tui.Launcher{
		Boards:     boards,
		Audio:      sound,
		Logger:     logger,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}, cleanup
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := modeArg(args)
	if err != nil {
		return err
	}
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

	game, err := launcher.NewGame(id)
	if err != nil {
		return err
	}

	opts := []tui.ModelOption{tui.WithLogger(logger)}
	if flagWatch {
		if w := newWatcher(logger); w != nil {
			defer w.Close()
			opts = append(opts, tui.WithWatcher(w))
		}
	}

	logger.Info("session begin", "mode", id, "player", playerName())
	return tui.Run(game, runtimeConfig(), opts...)
}
