// Package config provides YAML-based configuration loading for the game.
package config

import "fmt"

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	// Target is the tile value that wins the game.
	// Must be one of 2048, 4096, 8192.
	Target int `yaml:"target"`

	// SpawnFourChance is the probability (0.0-1.0) that a spawned tile
	// is a 4 instead of a 2.
	SpawnFourChance float64 `yaml:"spawn_four_chance"`
}

// StorageConfig defines persistence parameters.
type StorageConfig struct {
	// Path is the SQLite database location. A leading ~ expands to the
	// home directory.
	Path string `yaml:"path"`
}

// allowedTargets are the selectable win tiles.
var allowedTargets = map[int]bool{2048: true, 4096: true, 8192: true}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if !allowedTargets[c.Game.Target] {
		return fmt.Errorf("config: target %d is not one of 2048, 4096, 8192", c.Game.Target)
	}
	if c.Game.SpawnFourChance < 0 || c.Game.SpawnFourChance > 1 {
		return fmt.Errorf("config: spawn_four_chance %f is not in [0, 1]", c.Game.SpawnFourChance)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage path is empty")
	}
	return nil
}
