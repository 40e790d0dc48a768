package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	flagScoresSize int
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores for a board size",
	Long: `Display the top 10 scores recorded for a board size, with totals.

Examples:
  t2048 scores
  t2048 scores --size 5
  t2048 scores --size 3 --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", 0, "Board size, 3 to 6 (default from config)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the board size")
}

func runScores(cmd *cobra.Command, _ []string) error {
	size := cfg.Game.Size
	if cmd.Flags().Changed("size") {
		if err := config.ValidateSize(flagScoresSize); err != nil {
			return err
		}
		size = flagScoresSize
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(size); err != nil {
			return err
		}
		logger.Info("scores cleared", "size", size)
		return nil
	}

	scores, err := store.TopScores(size, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %dx%d\n\n", size, size)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 't2048 play --size %d' to set the first high score!\n", size)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-5s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-5s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-5d  %-12s  %s\n",
			i+1, entry.Score, entry.MaxTile, entry.Moves, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(size)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Wins: %d  Average: %.0f  Best tile: %d\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore, stats.BestTile)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(out, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
