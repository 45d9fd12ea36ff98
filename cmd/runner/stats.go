package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ametelin/tui-runner/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate statistics",
	Long: `Display aggregate play statistics: games played, high score,
average score, ads viewed and when you last played.

Examples:
  runner stats
  runner stats --db ./runner.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	lastPlayed := "never"
	if !stats.LastPlayed.IsZero() {
		lastPlayed = stats.LastPlayed.Format("2006-01-02 15:04")
	}

	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  Games played:  %d\n", stats.GamesPlayed)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Ads viewed:    %d\n", stats.AdsViewed)
	fmt.Printf("  Last played:   %s\n", lastPlayed)
}
