package core

// RuntimeConfig is passed to the game at initialization. The game uses it
// to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the snapshot the game reports to the platform after a tick.
type GameState struct {
	Score          int     // Current score
	Level          int     // Current difficulty level, starts at 1
	Speed          float64 // Current scroll speed in cells per tick
	ReviveHeld     bool    // A revive token is banked
	AwaitingRevive bool    // Simulation suspended, waiting for the revive action
	GameOver       bool    // The run has ended
	Paused         bool    // The game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
