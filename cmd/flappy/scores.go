package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresMine        bool
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best finished runs from the run history.

Examples:
  flappy scores
  flappy scores --limit 20
  flappy scores --mine --player ann
  flappy scores --interactive
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only show runs by --player")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse the history in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	runs, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer runs.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := runs.ClearRuns(); err != nil {
			return fmt.Errorf("clearing run history: %w", err)
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	}

	if flagScoresInteractive {
		rt := runtimeConfig()
		return tui.RunScoreboard(runs, rt.ScreenW, rt.ScreenH)
	}

	player := ""
	if flagScoresMine {
		player = flagPlayer
	}
	return printScores(out, runs, player, flagScoresLimit)
}

// printScores writes a plain-text table of the best runs, or of one player's
// most recent runs when player is set.
func printScores(w io.Writer, runs *storage.Store, player string, limit int) error {
	var (
		list []storage.Run
		err  error
	)
	if player != "" {
		list, err = runs.PlayerRuns(player, limit)
	} else {
		list, err = runs.TopRuns(limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	if player != "" {
		fmt.Fprintf(w, "Recent Runs - %s\n\n", player)
	} else {
		fmt.Fprint(w, "High Scores\n\n")
	}

	if len(list) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Best", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %-6s  %s\n", "----", "------", "-----", "----", "----")
	for i, r := range list {
		fmt.Fprintf(w, "  %-4d  %-16s  %-6d  %-6d  %s\n",
			i+1, r.Player, r.Score, r.Best, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := runs.Stats()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not load stats:", err)
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Runs: %d  Players: %d  Average: %.1f\n",
		stats.HighScore, stats.Runs, stats.Players, stats.AvgScore)
	return nil
}
