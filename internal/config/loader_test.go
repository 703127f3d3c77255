package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Game.Target != 2048 {
		t.Errorf("default target = %d, want 2048", cfg.Game.Target)
	}
	if cfg.Game.SpawnFourChance != 0.10 {
		t.Errorf("default spawn_four_chance = %f, want 0.10", cfg.Game.SpawnFourChance)
	}
	if cfg.Storage.Path == "" {
		t.Error("default storage path should not be empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
game:
  target: 4096
  spawn_four_chance: 0.25
storage:
  path: /tmp/test-scores.db
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Game.Target != 4096 {
		t.Errorf("target = %d, want 4096", cfg.Game.Target)
	}
	if cfg.Game.SpawnFourChance != 0.25 {
		t.Errorf("spawn_four_chance = %f, want 0.25", cfg.Game.SpawnFourChance)
	}
	if cfg.Storage.Path != "/tmp/test-scores.db" {
		t.Errorf("storage path = %s, want /tmp/test-scores.db", cfg.Storage.Path)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestLoadRejectsBadTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
game:
  target: 1000
  spawn_four_chance: 0.10
storage:
  path: /tmp/test-scores.db
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject a target outside 2048/4096/8192")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"target 8192 is valid", func(c *Config) { c.Game.Target = 8192 }, false},
		{"target 1024 is invalid", func(c *Config) { c.Game.Target = 1024 }, true},
		{"negative spawn chance", func(c *Config) { c.Game.SpawnFourChance = -0.1 }, true},
		{"spawn chance above one", func(c *Config) { c.Game.SpawnFourChance = 1.5 }, true},
		{"empty storage path", func(c *Config) { c.Storage.Path = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
