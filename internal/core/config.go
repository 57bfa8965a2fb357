package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation frames per second (default 200, one frame ≈ 5ms)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 200,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game, as reported to the
// platform after each frame.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level number
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused

	// ScreenTooSmall reports that the screen could not fit the playfield
	// at the last Reset. The platform resets the game on resize while this
	// is set, so the game can recover once the window grows.
	ScreenTooSmall bool
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
