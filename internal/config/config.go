// Package config provides YAML-based configuration loading for t2048.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Board sizes offered by the UI. The engine itself accepts any positive size.
const (
	MinBoardSize = 3
	MaxBoardSize = 6
)

// ErrInvalidSize is returned when a board size is outside the offered range.
var ErrInvalidSize = errors.New("invalid board size")

// Config contains all configuration for the game and its front ends.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines the starting board.
type GameConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"` // 0 = seed from the clock
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Size: 4,
		},
		Storage: StorageConfig{
			Path: "~/.t2048/scores.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ValidateSize checks that size is one of the board sizes the UI offers.
func ValidateSize(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("config: %w: %d (want %d-%d)", ErrInvalidSize, size, MinBoardSize, MaxBoardSize)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := ValidateSize(c.Game.Size); err != nil {
		return err
	}
	if c.Storage.Path == "" {
		return errors.New("config: storage.path must not be empty")
	}
	if c.Server.Address == "" {
		return errors.New("config: server.address must not be empty")
	}
	if c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("config: server.idle_timeout must be positive, got %s", c.Server.IdleTimeout)
	}
	return nil
}

// NextSize returns the board size after size, wrapping from the largest to
// the smallest. step is +1 or -1.
func NextSize(size, step int) int {
	span := MaxBoardSize - MinBoardSize + 1
	n := (size - MinBoardSize + step) % span
	if n < 0 {
		n += span
	}
	return MinBoardSize + n
}
