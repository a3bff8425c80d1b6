package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desetka/internal/games/desetka"
	"github.com/vovakirdan/desetka/internal/platform/tui"
)

// runMenu loops between the start menu, the game and the record table.
func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(store)
	fixedSeed := cfg.Seed != 0
	var lastRecord string

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoicePlay:
			if !fixedSeed {
				cfg.Seed = time.Now().UnixNano()
			}
			out, err := playOnce(store, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			cfg.BestScore = out.BestScore
			if out.RecordRun != "" {
				lastRecord = out.RecordRun
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, desetka.GameID, "Desetka", cfg.ScreenW, cfg.ScreenH, lastRecord)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
