package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termplay/internal/registry"
	"github.com/vovakirdan/termplay/internal/storage"
)

var (
	flagAll   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a game, with the game's details
(tetris level and lines, 2048 max tile, ...) and how long the game took.
Without a game name, shows a summary of every game played.

Examples:
  termplay scores
  termplay scores tetris
  termplay scores snake --all
  termplay scores pong --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every recorded score")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game's scores")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fail("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	name := args[0]
	if !registry.Exists(name) {
		fmt.Fprintln(os.Stderr, "Run 'termplay list' to see available games.")
		return fail("unknown game %q", name)
	}

	if flagClear {
		if err := store.ClearScores(name); err != nil {
			return fail("clearing scores: %v", err)
		}
		fmt.Printf("Scores for %s cleared.\n", name)
		return nil
	}

	var entries []storage.ScoreEntry
	if flagAll {
		entries, err = store.AllScores(name)
	} else {
		entries, err = store.TopScores(name, storage.DefaultLimit)
	}
	if err != nil {
		return fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n\n", name)
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'termplay game %s' to set the first high score!\n", name)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-16s  %s\n", "Rank", "Score", "Time", "Date", "Details")
	fmt.Printf("  %-4s  %-8s  %-7s  %-16s  %s\n", "----", "-----", "----", "----", "-------")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-8d  %-7s  %-16s  %s\n", i+1, e.Score, clock(e.Duration),
			e.CreatedAt.Format("2006-01-02 15:04"), e.DetailString())
	}

	if best, err := store.HighScore(name); err == nil {
		fmt.Printf("\nBest: %d\n", best)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fail("retrieving scores: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-18s  %-6s  %-8s  %-8s  %-9s  %s\n", "Game", "Games", "Best", "Average", "Played", "Last played")
	fmt.Printf("  %-18s  %-6s  %-8s  %-8s  %-9s  %s\n", "----", "-----", "----", "-------", "------", "-----------")
	for _, g := range registry.List() {
		st, ok := stats[g.Name]
		if !ok {
			continue
		}
		fmt.Printf("  %-18s  %-6d  %-8d  %-8.0f  %-9s  %s\n", g.Name, st.GamesCount, st.HighScore,
			st.AvgScore, clock(st.TotalTime), st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func clock(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
