// Package config provides YAML-based game configuration loading and
// difficulty management for Star Drift.
package config

// StarDriftConfig contains all tuning for the game.
type StarDriftConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Item       ItemConfig       `yaml:"item"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Session    SessionConfig    `yaml:"session"`
	Background BackgroundConfig `yaml:"background"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield size in world units.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`          // Units per second per axis
	Inset        float64 `yaml:"inset"`          // Collision box inset per side
	BottomOffset float64 `yaml:"bottom_offset"`  // Spawn center distance from the bottom edge
}

// EnemyConfig defines falling enemies.
type EnemyConfig struct {
	Size       float64 `yaml:"size"`
	MinSpeed   int     `yaml:"min_speed"`   // Inclusive
	MaxSpeed   int     `yaml:"max_speed"`   // Inclusive
	Inset      float64 `yaml:"inset"`       // Collision box inset per side
	SpawnY     float64 `yaml:"spawn_y"`     // Spawn center y (negative = above the screen)
	SideMargin int     `yaml:"side_margin"` // Spawn x range is [margin, width-margin]
	ExitMargin float64 `yaml:"exit_margin"` // Removed when top > height+margin
	VisibleTop float64 `yaml:"visible_top"` // Can only hit the player once top >= this
}

// ItemConfig defines falling pickups.
type ItemConfig struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	Value      int     `yaml:"value"` // Score bonus
	Inset      float64 `yaml:"inset"`
	SpawnY     float64 `yaml:"spawn_y"`
	SideMargin int     `yaml:"side_margin"`
	ExitMargin float64 `yaml:"exit_margin"`
	HealChance float64 `yaml:"heal_chance"` // Probability a spawned item heals instead
}

// SpawnConfig defines the spawn accumulators.
type SpawnConfig struct {
	EnemyInterval   float64 `yaml:"enemy_interval"`    // Seconds; spawn when the timer exceeds it
	ItemInterval    float64 `yaml:"item_interval"`
	EnemyTimerStart float64 `yaml:"enemy_timer_start"` // Initial enemy accumulator
	ItemTimerStart  float64 `yaml:"item_timer_start"`
	MaxEnemies      int     `yaml:"max_enemies"`    // No enemy spawns while this many are alive
	AvoidAttempts   int     `yaml:"avoid_attempts"` // Tries to keep clear of the player's column
	AvoidPadding    float64 `yaml:"avoid_padding"`  // No-spawn zone padding on each side of the player
}

// SessionConfig defines life, invincibility and pacing.
type SessionConfig struct {
	MaxLife          int     `yaml:"max_life"`
	StartInvincible  float64 `yaml:"start_invincible"` // Grace period at session start
	HitInvincible    float64 `yaml:"hit_invincible"`   // Invincibility after taking damage
	GameplayFPS      int     `yaml:"gameplay_fps"`
	GameOverFPS      int     `yaml:"game_over_fps"`
	StatsEveryFrames int     `yaml:"stats_every_frames"` // Debug stats period
}

// BackgroundConfig defines the scrolling backdrop.
type BackgroundConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// AudioConfig defines audio playback.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"` // Linear gain, 1.0 = unchanged
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset; unknown values give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
