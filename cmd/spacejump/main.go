// spacejump is a vertical endless jumper for the terminal, SSH and desktop.
//
// Usage:
//
//	spacejump list              - List available modes
//	spacejump play [mode]       - Play a mode in the terminal
//	spacejump menu              - Pick modes interactively
//	spacejump scores [mode]     - Show the best scores of a mode
//	spacejump config [mode]     - Print the default configuration
//	spacejump serve             - Start an SSH server for remote play
//	spacejump desktop [mode]    - Play in a window
//
// Global flags:
//
//	--fps <rate>        - Host frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible sessions
//	--db <path>         - Database path (default: ~/.spacejump/scores.db)
//	--player <name>     - Name scores are recorded under
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log destination for terminal sessions
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/space-jump/internal/games/spacejump"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagPlayer   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacejump",
	Short: "Space Jump - climb as high as you can",
	Long: `Space Jump is a vertical endless jumper. Land on platforms, ride
rockets and dodge comets while the camera keeps climbing.

Available commands:
  list     - Show all modes
  play     - Play a mode in the terminal
  menu     - Interactive mode picker with scoreboard
  scores   - View high scores
  config   - Print the default configuration
  serve    - Start SSH server for remote play
  desktop  - Play in a window

Examples:
  spacejump play
  spacejump play spacejump-classic --difficulty hard
  spacejump menu
  spacejump serve --ssh :2222
  spacejump desktop --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacejump/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for the scoreboard (default: $USER)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for terminal sessions (default: discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(desktopCmd)
}
