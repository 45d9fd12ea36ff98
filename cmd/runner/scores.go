package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ametelin/tui-runner/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the leaderboard",
	Long: `Display the top 10 runs.

Examples:
  runner scores
  runner scores --db ./runner.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(storage.LeaderboardSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-10s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %-6d  %s\n", i+1, entry.Username, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", store.HighScore())
}
