package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/t2048.yaml.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size:     4,
			WinValue: 2048,
		},
		Spawn: SpawnConfig{
			InitialTiles:  1,
			RequireChange: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	return defaultYAML
}
