package geodash

import (
	"math/rand"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
)

// Obstacle is a block standing on the ground that the player must jump over.
type Obstacle struct {
	X, Y          float64 // Top-left corner; Y = groundY - Height
	Width, Height float64
	SpawnTick     uint64 // Tick of the run on which the obstacle appeared
}

// Box returns the collision box for this obstacle.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	cfg        config.Obstacles
	difficulty *config.DifficultyManager
	viewportW  float64
	groundY    float64
	timer      int // Ticks since the last spawn
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.Obstacles, diff *config.DifficultyManager) *ObstacleManager {
	return &ObstacleManager{
		obstacles:  make([]Obstacle, 0, 8),
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg,
		difficulty: diff,
	}
}

// Reset clears all obstacles, reseeds the RNG and sets the spawn geometry.
func (om *ObstacleManager) Reset(seed int64, viewportW, groundY float64) {
	om.rng = rand.New(rand.NewSource(seed))
	om.Clear(viewportW, groundY)
}

// Clear removes all obstacles and restarts the countdown, keeping the RNG stream.
func (om *ObstacleManager) Clear(viewportW, groundY float64) {
	om.obstacles = om.obstacles[:0]
	om.viewportW = viewportW
	om.groundY = groundY
	om.timer = 0
}

// Countdown advances the spawn timer by one tick and spawns an obstacle at
// the right viewport edge once the timer exceeds the current interval.
func (om *ObstacleManager) Countdown(tick uint64) (spawned bool) {
	om.timer++
	if float64(om.timer) <= om.difficulty.SpawnInterval() {
		return false
	}

	om.spawn(tick)
	om.timer = 0
	om.difficulty.OnSpawn()
	return true
}

// spawn appends an obstacle with a uniformly random height.
func (om *ObstacleManager) spawn(tick uint64) {
	height := om.cfg.MinHeight
	if om.cfg.MaxHeight > om.cfg.MinHeight {
		height += om.rng.Float64() * (om.cfg.MaxHeight - om.cfg.MinHeight)
	}

	om.obstacles = append(om.obstacles, Obstacle{
		X:         om.viewportW,
		Y:         om.groundY - height,
		Width:     om.cfg.Width,
		Height:    height,
		SpawnTick: tick,
	})
}

// Advance moves every obstacle left by speed in spawn order.
// It stops at the first obstacle that overlaps player and reports the
// collision; obstacles fully past the left edge before that are removed
// and counted in cleared.
func (om *ObstacleManager) Advance(speed float64, player core.Box) (collided bool, cleared int) {
	kept := om.obstacles[:0]
	for i := range om.obstacles {
		o := om.obstacles[i]
		o.X -= speed

		if IsCollision(player, o.Box()) {
			// Keep the colliding obstacle and every unprocessed one untouched
			kept = append(kept, o)
			kept = append(kept, om.obstacles[i+1:]...)
			om.obstacles = kept
			return true, cleared
		}

		if o.X+o.Width < 0 {
			cleared++
			continue
		}
		kept = append(kept, o)
	}
	om.obstacles = kept
	return false, cleared
}

// Obstacles returns the current list of obstacles in spawn order.
// The slice is owned by the manager.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// add appends an obstacle directly. Used by the engine tests.
func (om *ObstacleManager) add(o Obstacle) {
	om.obstacles = append(om.obstacles, o)
}

// IsCollision reports whether two boxes overlap. Boxes that only share an
// edge do not collide, and the test is symmetric.
func IsCollision(a, b core.Box) bool {
	return a.Intersects(b)
}
