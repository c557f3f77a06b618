package config

import (
	"math"

	"github.com/vovakirdan/geodash/internal/core"
)

// ApplyPreset rescales the speed and spawn parameters of cfg for a named preset.
// An empty preset leaves cfg unchanged.
func ApplyPreset(cfg *GeoDashConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.75
		cfg.Obstacles.SpawnInterval *= 1.25
		cfg.Difficulty.Enabled = true
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.25
		cfg.Obstacles.SpawnInterval *= 0.8
		cfg.Obstacles.MinSpawnInterval *= 0.8
		cfg.Difficulty.Enabled = true
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		return
	}
	if cfg.Physics.MaxSpeed > 0 && cfg.Physics.MaxSpeed < cfg.Physics.BaseSpeed {
		cfg.Physics.MaxSpeed = cfg.Physics.BaseSpeed
	}
	cfg.Obstacles.MinSpawnInterval = math.Min(cfg.Obstacles.MinSpawnInterval, cfg.Obstacles.SpawnInterval)
	cfg.Difficulty.Preset = string(preset)
}

// DifficultyManager tracks the in-run speed and spawn interval ramp.
// Speed only grows and the interval only shrinks between two Resets.
type DifficultyManager struct {
	physics   Physics
	obstacles Obstacles
	enabled   bool

	speed    float64
	interval float64
}

// NewDifficultyManager creates a new difficulty manager positioned at run start.
func NewDifficultyManager(cfg GeoDashConfig) *DifficultyManager {
	d := &DifficultyManager{
		physics:   cfg.Physics,
		obstacles: cfg.Obstacles,
		enabled:   cfg.Difficulty.Enabled,
	}
	d.Reset()
	return d
}

// Reset restores base speed and base spawn interval.
func (d *DifficultyManager) Reset() {
	d.speed = d.physics.BaseSpeed
	d.interval = d.obstacles.SpawnInterval
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.enabled
}

// Speed returns the current scroll speed in world units per tick.
func (d *DifficultyManager) Speed() float64 {
	return d.speed
}

// SpawnInterval returns the current number of ticks between spawns.
func (d *DifficultyManager) SpawnInterval() float64 {
	return d.interval
}

// Advance applies one tick of speed growth, capped by max_speed when set.
func (d *DifficultyManager) Advance() {
	if !d.enabled {
		return
	}
	d.speed += d.physics.SpeedIncrement
	if d.physics.MaxSpeed > 0 && d.speed > d.physics.MaxSpeed {
		d.speed = math.Max(d.physics.MaxSpeed, d.physics.BaseSpeed)
	}
}

// OnSpawn shortens the spawn interval toward its floor.
func (d *DifficultyManager) OnSpawn() {
	if !d.enabled {
		return
	}
	next := d.interval - d.obstacles.IntervalDecay
	d.interval = core.ClampF(next, math.Min(d.obstacles.MinSpawnInterval, d.interval), d.interval)
}
