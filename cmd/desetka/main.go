// desetka is a falling-tile number game for the terminal: link tiles that
// sum to ten before the stack reaches the top.
//
// Usage:
//
//	desetka                  - Start menu (play, high scores)
//	desetka play             - Start a run directly
//	desetka scores           - Show the record table
//	desetka config           - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.desetka/scores.db)
//	--config <path>    - Load tuning from a YAML file
//	--log-file <path>  - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desetka/internal/config"
	"github.com/vovakirdan/desetka/internal/games/desetka"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// tuning is the configuration loaded before any subcommand runs.
var tuning config.DesetkaConfig

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "desetka",
	Short: "Desetka - link tiles that sum to ten",
	Long: `Desetka is a terminal arcade game. Rows of numbered tiles rise from
the bottom; drag between two tiles that sum to ten (or two equal tiles
close together) to clear them before the stack reaches the top.

Running desetka with no command opens the start menu.

Available commands:
  play     - Start a run directly
  scores   - View the record table
  config   - Print the effective tuning

Examples:
  desetka
  desetka play --seed 42
  desetka scores --interactive
  desetka config > ~/.desetka/configs/desetka.yaml`,
	PersistentPreRunE: setup,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.desetka/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the tuning and the logger and hands both to the game package.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadDesetka(flagConfig)
	if err != nil {
		return err
	}
	tuning = cfg

	logger, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	desetka.Configure(cfg, logger)
	return nil
}
