// Package config loads the game configuration from YAML files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/charmbracelet/log"
)

// Size limits for the board.
const (
	MinGridSize = 2
	MaxGridSize = 16
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete configuration.
type Config struct {
	Grid  GridConfig  `yaml:"grid" envPrefix:"GRID_"`
	Spawn SpawnConfig `yaml:"spawn" envPrefix:"SPAWN_"`
	Log   LogConfig   `yaml:"log" envPrefix:"LOG_"`
}

// GridConfig defines the classic variant's board.
type GridConfig struct {
	Size     int `yaml:"size" env:"SIZE"`
	WinValue int `yaml:"win_value" env:"WIN_VALUE"`
}

// SpawnConfig controls when tiles appear.
type SpawnConfig struct {
	InitialTiles  int  `yaml:"initial_tiles" env:"INITIAL_TILES"`
	RequireChange bool `yaml:"require_change" env:"REQUIRE_CHANGE"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	if c.Grid.Size < MinGridSize || c.Grid.Size > MaxGridSize {
		return fmt.Errorf("%w: grid.size %d outside [%d, %d]", ErrInvalid, c.Grid.Size, MinGridSize, MaxGridSize)
	}
	if !IsPowerOfTwo(c.Grid.WinValue) || c.Grid.WinValue < 4 {
		return fmt.Errorf("%w: grid.win_value %d must be a power of two >= 4", ErrInvalid, c.Grid.WinValue)
	}
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > c.Grid.Size*c.Grid.Size {
		return fmt.Errorf("%w: spawn.initial_tiles %d outside [0, %d]", ErrInvalid, c.Spawn.InitialTiles, c.Grid.Size*c.Grid.Size)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && bits.OnesCount(uint(v)) == 1
}
