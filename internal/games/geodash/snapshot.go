package geodash

import "github.com/vovakirdan/geodash/internal/core"

// Snapshot is a read-only copy of the engine state handed to renderers.
// Mutating it has no effect on the engine.
type Snapshot struct {
	Tick          uint64
	Phase         core.Phase
	Score         int
	HighScore     int
	Speed         float64
	SpawnInterval float64
	RampEnabled   bool
	ViewportW     float64
	ViewportH     float64
	GroundY       float64
	Player        Player
	Obstacles     []Obstacle
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles.Obstacles()))
	copy(obstacles, g.obstacles.Obstacles())

	return Snapshot{
		Tick:          g.tick,
		Phase:         g.phase,
		Score:         g.score,
		HighScore:     g.highScore,
		Speed:         g.difficulty.Speed(),
		SpawnInterval: g.difficulty.SpawnInterval(),
		RampEnabled:   g.difficulty.IsEnabled(),
		ViewportW:     g.runtime.ViewportW,
		ViewportH:     g.runtime.ViewportH,
		GroundY:       g.groundY,
		Player:        g.player,
		Obstacles:     obstacles,
	}
}
