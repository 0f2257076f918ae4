package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // World width in world units (pixels in the window frontend)
	ScreenH  int   // World height in world units
	TickRate int   // Target gameplay updates per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Emit periodic debug statistics
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of a session.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the session
	Life      int  // Remaining lives
	GameOver  bool // Whether the session has ended
}

// StepResult is returned by Session.Step after each frame.
type StepResult struct {
	State GameState
	Quit  bool // The player asked to terminate the process
}
