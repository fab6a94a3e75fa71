package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic dealing.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic shuffles
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

// GameState is the status a game reports to the platform after every tick.
type GameState struct {
	Matches    int    // Pairs found so far
	Pairs      int    // Pairs on the table
	Guesses    int    // Cards turned over this game
	MaxGuesses int    // Guess limit, 0 when unlimited
	Challenge  bool   // Game was dealt with a guess limit
	Won        bool   // All pairs found
	Lost       bool   // Guess budget exhausted before all pairs were found
	GameOver   bool   // Won or Lost
	Paused     bool   // Input is disabled (settings open, window too small)
	Dialog     bool   // A dialog is open and owns Back
	Round      uint64 // Changes every time a new table is dealt
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Sounds requested during this tick, in order. The platform decides
	// how (and whether) to play them.
	Sounds []Sound
}
