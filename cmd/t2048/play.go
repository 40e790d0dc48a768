package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/storage"
	"github.com/vovakirdan/t2048/internal/tui"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start an interactive game.

Without --size a board size picker (3x3 to 6x6) is shown first.

Controls:
  Arrows/WASD/hjkl - Move
  N/R              - New game
  +/-              - Bigger/smaller board (starts a new game)
  Tab              - High scores
  ?                - All keys
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --size 4
  t2048 play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size, 3 to 6 (picker shown if not set)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// Get terminal size early for the size picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	size := cfg.Game.Size
	if cmd.Flags().Changed("size") {
		if err := config.ValidateSize(flagSize); err != nil {
			return err
		}
		size = flagSize
	} else {
		chosen, err := tui.RunSizeSelector(size, width, height)
		if err != nil {
			return fmt.Errorf("size picker: %w", err)
		}
		// User pressed back or quit
		if chosen == 0 {
			return nil
		}
		size = chosen
	}

	// Stderr is hidden behind the alternate screen while playing.
	playLogger, closeLog := openPlayLog(cfg.Storage.Path)
	defer closeLog()

	opts := tui.Options{
		Size:   size,
		Seed:   cfg.Game.Seed,
		Logger: playLogger,
		Player: os.Getenv("USER"),
		Width:  width,
		Height: height,
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openPlayLog returns a logger writing to t2048.log next to the scores database.
// Falls back to the process logger if the file cannot be opened.
func openPlayLog(dbPath string) (*log.Logger, func()) {
	path, err := config.ExpandHome(dbPath)
	if err != nil {
		return logger, func() {}
	}
	path = filepath.Join(filepath.Dir(path), "t2048.log")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return logger, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logger, func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }
}
