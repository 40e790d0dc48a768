// t2048 is the sliding-tile 2048 puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Play a game (board size picker first)
//	t2048 sim --moves lurd   - Apply a move script headlessly and print the result
//	t2048 scores             - Show high scores for a board size
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.t2048, ./configs, built-in)
//	--seed <value>      - Set RNG seed for reproducible tile spawns
//	--db <path>         - Set database path (default: ~/.t2048/scores.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Set by the root command before any subcommand runs.
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the sliding-tile puzzle 2048 for the terminal.

Slide the board in one of four directions. Equal tiles that collide merge
into their sum and add it to your score. Reach the 2048 tile to win; the
game ends when no move can change the board.

Available commands:
  play     - Play interactively
  sim      - Run a move script without a UI
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --size 5
  t2048 sim --seed 7 --moves "llur"
  t2048 scores --size 4
  t2048 serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.t2048/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the configuration and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		loaded.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		loaded.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(loaded.Log.Level)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cfg = loaded
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return nil
}
