package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			Target:          2048,
			SpawnFourChance: 0.10,
		},
		Storage: StorageConfig{
			Path: "~/.t2048/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, suitable for
// writing out as a starter config.
func DefaultYAML() []byte {
	return defaultYAML
}
