package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultStarDriftConfig() {
		t.Errorf("embedded YAML and DefaultStarDriftConfig() disagree:\n%+v\n%+v", cfg, DefaultStarDriftConfig())
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("enemy:\n  min_speed: 200\n  max_speed: 260\nsession:\n  max_life: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStarDrift(path)
	if err != nil {
		t.Fatalf("LoadStarDrift() failed: %v", err)
	}
	if cfg.Enemy.MinSpeed != 200 || cfg.Enemy.MaxSpeed != 260 {
		t.Errorf("enemy speeds = %d..%d, expected 200..260", cfg.Enemy.MinSpeed, cfg.Enemy.MaxSpeed)
	}
	if cfg.Session.MaxLife != 4 {
		t.Errorf("max_life = %d, expected 4", cfg.Session.MaxLife)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Speed != 300 || cfg.Spawn.EnemyInterval != 0.8 {
		t.Errorf("defaults not kept: player speed %v, enemy interval %v", cfg.Player.Speed, cfg.Spawn.EnemyInterval)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadStarDrift(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("enemy: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStarDrift(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("enemy:\n  min_speed: 300\n  max_speed: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadStarDrift(invalid)
	if err == nil {
		t.Error("min_speed > max_speed should fail validation")
	}
	if cfg != DefaultStarDriftConfig() {
		t.Error("failed load should return the defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StarDriftConfig)
		ok     bool
	}{
		{"defaults", func(*StarDriftConfig) {}, true},
		{"zero width", func(c *StarDriftConfig) { c.World.Width = 0 }, false},
		{"no lives", func(c *StarDriftConfig) { c.Session.MaxLife = 0 }, false},
		{"heal chance above one", func(c *StarDriftConfig) { c.Item.HealChance = 1.5 }, false},
		{"negative interval", func(c *StarDriftConfig) { c.Spawn.ItemInterval = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStarDriftConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultStarDriftConfig()
	ApplyPreset(&cfg, "")
	if cfg != DefaultStarDriftConfig() {
		t.Error("empty preset should not change the config")
	}

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 || cfg.Session.MaxLife != 2 {
		t.Errorf("hard preset not applied: %+v, lives %d", cfg.Difficulty, cfg.Session.MaxLife)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0 {
		t.Errorf("fixed preset should disable progression: %+v", cfg.Difficulty)
	}

	if ParsePreset("nightmare") != "" || ParsePreset("easy") != DifficultyEasy {
		t.Error("ParsePreset should accept only known presets")
	}
}
