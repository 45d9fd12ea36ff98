package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ametelin/tui-runner/internal/core"
	"github.com/ametelin/tui-runner/internal/platform/tui"
	"github.com/ametelin/tui-runner/internal/runner"
	"github.com/ametelin/tui-runner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start the runner in interactive menu mode.

From the menu you can start a run, browse the leaderboard, view your
statistics or change settings. After a run ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./runner.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		switch menuResult.Choice {
		case tui.MenuChoicePlay:
			game := runner.New(gameCfg)
			game.SetSkin(tui.LoadPrefs(store).PlayerSkin())

			// Fresh seed for each run
			cfg.Seed = time.Now().UnixNano()

			if err := tui.Run(game, store, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}

		case tui.MenuChoiceLeaderboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}

		case tui.MenuChoiceStats:
			goBack, stErr := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
			if stErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", stErr)
			}
			if !goBack {
				return
			}

		case tui.MenuChoiceSettings:
			goBack, setErr := tui.RunSettings(store, cfg.ScreenW, cfg.ScreenH)
			if setErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", setErr)
			}
			if !goBack {
				return
			}
		}

		// Loop back to menu
	}
}
