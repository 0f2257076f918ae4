package config

import (
	_ "embed"
)

//go:embed defaults/stardrift.yaml
var defaultStarDriftYAML []byte

// DefaultStarDriftConfig returns the default Star Drift configuration.
// It mirrors defaults/stardrift.yaml and is the last-resort fallback.
func DefaultStarDriftConfig() StarDriftConfig {
	return StarDriftConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:         70,
			Speed:        300,
			Inset:        10,
			BottomOffset: 80,
		},
		Enemy: EnemyConfig{
			Size:       48,
			MinSpeed:   120,
			MaxSpeed:   240,
			Inset:      4,
			SpawnY:     -160,
			SideMargin: 50,
			ExitMargin: 50,
			VisibleTop: 50,
		},
		Item: ItemConfig{
			Size:       32,
			Speed:      150,
			Value:      5,
			Inset:      4,
			SpawnY:     -30,
			SideMargin: 40,
			ExitMargin: 50,
			HealChance: 0.2,
		},
		Spawn: SpawnConfig{
			EnemyInterval:   0.8,
			ItemInterval:    4.0,
			EnemyTimerStart: -0.5,
			ItemTimerStart:  0.0,
			MaxEnemies:      6,
			AvoidAttempts:   12,
			AvoidPadding:    80,
		},
		Session: SessionConfig{
			MaxLife:          3,
			StartInvincible:  2.0,
			HitInvincible:    1.5,
			GameplayFPS:      60,
			GameOverFPS:      30,
			StatsEveryFrames: 60,
		},
		Background: BackgroundConfig{
			ScrollSpeed: 50,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultStarDriftYAML
}
