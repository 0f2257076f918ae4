package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config search path.
const ConfigFile = "stardrift.yaml"

// LoadStarDrift loads the game configuration.
// Search order: customPath -> ~/.stardrift/configs/stardrift.yaml -> ./configs/stardrift.yaml -> embedded default
// Files are layered over the defaults, so they only need the keys they change.
func LoadStarDrift(customPath string) (StarDriftConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultStarDriftConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultStarDriftConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultStarDriftYAML)
	if err != nil {
		return DefaultStarDriftConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hard-coded defaults and validates the result.
func parse(data []byte) (StarDriftConfig, error) {
	cfg := DefaultStarDriftConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values the game cannot run with.
func (c StarDriftConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.Player.Size < 0 || c.Enemy.Size < 0 || c.Item.Size < 0 {
		errs = append(errs, errors.New("sprite sizes must not be negative"))
	}
	if c.Enemy.MinSpeed > c.Enemy.MaxSpeed {
		errs = append(errs, fmt.Errorf("enemy min_speed %d exceeds max_speed %d", c.Enemy.MinSpeed, c.Enemy.MaxSpeed))
	}
	if c.Session.MaxLife < 1 {
		errs = append(errs, fmt.Errorf("max_life must be at least 1, got %d", c.Session.MaxLife))
	}
	if c.Item.HealChance < 0 || c.Item.HealChance > 1 {
		errs = append(errs, fmt.Errorf("heal_chance must be in [0,1], got %v", c.Item.HealChance))
	}
	if c.Spawn.EnemyInterval < 0 || c.Spawn.ItemInterval < 0 {
		errs = append(errs, errors.New("spawn intervals must not be negative"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stardrift", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset keeps the configured difficulty.
func ApplyPreset(cfg *StarDriftConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust lives based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Session.MaxLife = 5
	case DifficultyHard:
		cfg.Session.MaxLife = 2
	}
}
