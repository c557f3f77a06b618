package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in characters (or pixels for window frontends)
	ScreenH   int     // Screen height in characters (or pixels for window frontends)
	ViewportW float64 // Simulation viewport width in world units
	ViewportH float64 // Simulation viewport height in world units
	TickRate  int     // Simulation ticks per second (default 60)
	Seed      int64   // RNG seed for deterministic obstacle heights
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		ViewportW: 800,
		ViewportH: 600,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle state of a game engine.
type Phase int

const (
	PhaseMenu     Phase = iota // Waiting for the first start
	PhasePlaying               // A run is in progress
	PhaseGameOver              // The last run ended in a collision
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Phase     Phase
	Score     int // Score of the current (or last) run
	HighScore int // Best score across runs
}

// GameOver reports whether the last run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events emitted since the previous step.
type StepResult struct {
	State  GameState
	Events []Event
}
