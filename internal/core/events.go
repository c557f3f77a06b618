package core

// Event is something that happened inside the simulation that presentation
// layers may react to (particles, sound, persistence of history).
// The set of events is closed: only types in this package implement it.
type Event interface {
	event()
}

// RunStartedEvent is emitted when a run begins.
type RunStartedEvent struct {
	X, Y float64 // Player position at start, in world units
}

func (RunStartedEvent) event() {}

// JumpEvent is emitted when the player leaves the ground.
type JumpEvent struct {
	X, Y float64
}

func (JumpEvent) event() {}

// ObstacleClearedEvent is emitted when an obstacle leaves the viewport
// without touching the player.
type ObstacleClearedEvent struct {
	Score int // Score after the reward was added
}

func (ObstacleClearedEvent) event() {}

// HighScoreEvent is emitted whenever the high score is raised.
type HighScoreEvent struct {
	HighScore int
}

func (HighScoreEvent) event() {}

// RunEndedEvent is emitted on the collision that ends a run.
type RunEndedEvent struct {
	X, Y      float64
	Score     int
	HighScore int
}

func (RunEndedEvent) event() {}
