package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform substitutes current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the platform-visible status of the simulation.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Total lines cleared
	Level    int  // Current level (drives gravity)
	GameOver bool // Terminal: spawn collided, round is over
	Paused   bool // Whether the game is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	// LinesCleared is the number of rows swept during this tick
	// (0 on most ticks; 1-4 on a lock that completes rows).
	LinesCleared int
}
