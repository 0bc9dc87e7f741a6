package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what a game reports back to the platform after each step.
type GameState struct {
	Complete bool // Target tile reached; moves are frozen until restart
	Paused   bool // Paused by the player or by a too-small window
	MaxTile  int  // Highest tile currently on the board
}

// StepResult is returned by Game.Step().
type StepResult struct {
	State GameState
	Moved bool // The direction applied this step changed the board
}
