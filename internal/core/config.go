package core

// RuntimeConfig contains host parameters handed to the game at initialization.
// Screen dimensions are terminal cells; the game scales its own pixel space onto them.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game as seen by the platform.
type GameState struct {
	Score    int  // Obstacle pairs passed this round
	Started  bool // A round has been started (false while the title prompt is shown)
	GameOver bool // The current round has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
