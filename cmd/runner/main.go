// runner is a terminal endless-runner: jump over obstacles, collect coins,
// survive as long as you can.
//
// Usage:
//
//	runner play              - Start a run directly
//	runner menu              - Interactive menu (play, leaderboard, stats, settings)
//	runner scores            - Print the leaderboard
//	runner stats             - Print aggregate statistics
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runner/runner.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - an endless runner for your terminal",
	Long: `Runner is a terminal endless-runner. Your character runs on its own;
you jump (and double-jump) over obstacles and collect coins while the
pace keeps climbing.

Available commands:
  play     - Start a run directly
  menu     - Interactive menu with leaderboard, stats and settings
  scores   - Print the leaderboard
  stats    - Print aggregate statistics
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner menu
  runner serve --ssh :2222
  runner scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runner.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
