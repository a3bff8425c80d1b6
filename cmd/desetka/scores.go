package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desetka/internal/games/desetka"
	"github.com/vovakirdan/desetka/internal/platform/tui"
	"github.com/vovakirdan/desetka/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
	flagAll         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the record table",
	Long: `Display the stored records. A run is stored only when it beats the
previous best, so the table is the history of your records.

Examples:
  desetka scores
  desetka scores --limit 25
  desetka scores --all
  desetka scores --interactive
  desetka scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse records in a scrollable table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of records to print")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored records")
	scoresCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "Print every record, ignoring --limit")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(desetka.GameID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Records cleared.")
		return
	}

	if flagInteractive {
		cfg := runtimeConfig(nil)
		if _, err := tui.RunScoreboard(store, desetka.GameID, "Desetka", cfg.ScreenW, cfg.ScreenH, ""); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := listScores(store)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Desetka")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No records yet.")
		fmt.Println()
		fmt.Println("Play 'desetka play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-36s  %s\n", "Rank", "Score", "Run", "Date")
	fmt.Printf("  %-4s  %-10s  %-36s  %s\n", "----", "-----", "---", "----")

	for i, entry := range scores {
		runID := entry.RunID
		if runID == "" {
			runID = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-36s  %s\n", i+1, entry.Score, runID, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(desetka.GameID); err == nil {
		fmt.Printf("Best: %d  Records: %d  Last: %s\n",
			stats.HighScore, stats.GamesCount, stats.LastPlayed.Format("2006-01-02"))
	}
}

// listScores returns the records the table prints.
func listScores(store *storage.Store) ([]storage.ScoreEntry, error) {
	if flagAll {
		return store.AllScores(desetka.GameID)
	}
	return store.TopScores(desetka.GameID, flagLimit)
}
