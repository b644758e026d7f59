package core

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Running bool   // False once a quit has been processed
	Tick    uint64 // Number of simulated ticks
	Enemies int    // Enemies currently alive
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Eaten     int  // Enemies removed this tick
	Respawned bool // Whether the enemy batch was replaced this tick
}
