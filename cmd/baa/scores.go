package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/baamageddon/internal/games/baa"
	"github.com/vovakirdan/baamageddon/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and a few totals.

Examples:
  baa scores
  baa scores --limit 25
  baa scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(baa.ID); err != nil {
			fail("%v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(baa.ID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", baa.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'baa play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-14s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-14s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		name := entry.Level
		if name == "" {
			name = "-"
		}
		fmt.Printf("  %-4d  %-10d  %-14s  %s\n", i+1, entry.Score, name, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(baa.ID)
	if err != nil {
		logger.Warn("could not load stats", "err", err)
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
}
