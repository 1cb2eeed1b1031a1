package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-jump/internal/ranking"
	"github.com/vovakirdan/space-jump/internal/registry"
	"github.com/vovakirdan/space-jump/internal/storage"
)

var (
	flagScoresAll     bool
	flagScoresClear   bool
	flagScoresSummary bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 scores of a mode (default: spacejump).

Examples:
  spacejump scores
  spacejump scores spacejump-classic
  spacejump scores --all
  spacejump scores --summary
  spacejump scores spacejump-classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
	scoresCmd.Flags().BoolVar(&flagScoresSummary, "summary", false, "Show stats for every played mode")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "clear", "summary")
}

func runScores(cmd *cobra.Command, args []string) error {
	id, err := modeArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	title := modeTitle(id)

	switch {
	case flagScoresSummary:
		return printSummary(out, store)
	case flagScoresClear:
		if err := store.ClearScores(id); err != nil {
			return err
		}
		logger.Info("scores cleared", "mode", id)
		fmt.Fprintf(out, "Cleared all scores of %s.\n", title)
		return nil
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(id)
		if err != nil {
			return err
		}
	} else {
		scores = ranking.NewBoard(store, id, playerName(), logger).Top(ranking.DefaultLimit)
	}
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'spacejump play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-16s  %-8d  %s\n", i+1, e.Player, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Sessions: %d  Players: %d  Average: %.1f\n",
		stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	return nil
}

func modeTitle(id string) string {
	for _, m := range registry.List() {
		if m.ID == id {
			return m.Title
		}
	}
	return id
}

// printSummary lists the stats of every mode that has at least one score.
func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-20s  %-8s  %-8s  %-7s  %-8s  %s\n", "Mode", "Best", "Sessions", "Players", "Average", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Fprintf(out, "  %-20s  %-8d  %-8d  %-7d  %-8.1f  %s\n",
			modeTitle(id), st.HighScore, st.GamesCount, st.Players, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
