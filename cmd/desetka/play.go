package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/desetka/internal/core"
	"github.com/vovakirdan/desetka/internal/games/desetka"
	"github.com/vovakirdan/desetka/internal/platform/tui"
	"github.com/vovakirdan/desetka/internal/registry"
	"github.com/vovakirdan/desetka/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run directly, skipping the menu.

Controls:
  Mouse drag       - Link two tiles
  Arrows/WASD      - Move the cursor
  Space/Enter      - Pick a tile, then link it to the cursor tile
  X                - Drop the current pick
  1 / 2 / 3        - Shuffle / Inferno / Freeze
  M                - Toggle sound
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.desetka/screenshots
  Q/Ctrl+C         - Quit

Examples:
  desetka play
  desetka play --seed 42
  desetka play --config ./my-desetka.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(store)
	if _, err := playOnce(store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}

// playOnce runs a single game session and reports how it ended.
func playOnce(store *storage.Store, cfg core.RuntimeConfig) (tui.Outcome, error) {
	game, err := registry.Create(desetka.GameID)
	if err != nil {
		return tui.Outcome{BestScore: cfg.BestScore}, err
	}
	return tui.Run(game, store, cfg)
}

// openStore opens the score database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds the platform settings from flags, the terminal and
// the stored best score.
func runtimeConfig(store *storage.Store) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if store != nil {
		best, err := store.HighScore(desetka.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read best score: %v\n", err)
		}
		cfg.BestScore = best
	}
	return cfg
}
