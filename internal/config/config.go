// Package config provides YAML/TOML game configuration loading and
// difficulty management for geodash.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GeoDashConfig contains all configuration for the runner.
// All distances are world units; all intervals are ticks.
type GeoDashConfig struct {
	Physics    Physics          `yaml:"physics" toml:"physics"`
	Player     Player           `yaml:"player" toml:"player"`
	Ground     Ground           `yaml:"ground" toml:"ground"`
	Obstacles  Obstacles        `yaml:"obstacles" toml:"obstacles"`
	Scoring    Scoring          `yaml:"scoring" toml:"scoring"`
	Render     Render           `yaml:"render" toml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Notifier   NotifierConfig   `yaml:"notifier" toml:"notifier"`
}

// Physics defines the vertical integration and scroll speed.
type Physics struct {
	Gravity        float64 `yaml:"gravity" toml:"gravity"`                 // Added to velocity every tick
	JumpImpulse    float64 `yaml:"jump_impulse" toml:"jump_impulse"`       // Velocity set on jump (negative = up)
	BaseSpeed      float64 `yaml:"base_speed" toml:"base_speed"`           // Obstacle scroll speed at run start
	SpeedIncrement float64 `yaml:"speed_increment" toml:"speed_increment"` // Added to speed every tick
	MaxSpeed       float64 `yaml:"max_speed" toml:"max_speed"`             // 0 = unbounded
}

// Player defines the player square.
type Player struct {
	X           float64 `yaml:"x" toml:"x"`
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	StartOffset float64 `yaml:"start_offset" toml:"start_offset"` // Start y measured up from the viewport bottom
}

// Ground defines the ground strip at the bottom of the viewport.
type Ground struct {
	Height float64 `yaml:"height" toml:"height"`
}

// Obstacles defines obstacle sizes and the spawn countdown.
type Obstacles struct {
	Width            float64 `yaml:"width" toml:"width"`
	MinHeight        float64 `yaml:"min_height" toml:"min_height"`
	MaxHeight        float64 `yaml:"max_height" toml:"max_height"`
	SpawnInterval    float64 `yaml:"spawn_interval" toml:"spawn_interval"`         // Ticks between spawns at run start
	MinSpawnInterval float64 `yaml:"min_spawn_interval" toml:"min_spawn_interval"` // Floor for the interval
	IntervalDecay    float64 `yaml:"interval_decay" toml:"interval_decay"`         // Subtracted after each spawn
}

// Scoring defines rewards.
type Scoring struct {
	ObstacleReward int `yaml:"obstacle_reward" toml:"obstacle_reward"`
}

// Render defines how world units map onto terminal cells.
type Render struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// DifficultyConfig toggles the in-run ramp and names the preset it came from.
type DifficultyConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Preset  string `yaml:"preset" toml:"preset"`
}

// NotifierConfig selects where final scores are reported.
type NotifierConfig struct {
	Kind      string        `yaml:"kind" toml:"kind"` // "log", "webhook", "websocket", "nop"
	URL       string        `yaml:"url" toml:"url"`
	Token     string        `yaml:"token" toml:"token"`
	UserID    string        `yaml:"user_id" toml:"user_id"`
	Timeout   time.Duration `yaml:"timeout" toml:"timeout"`
	QueueSize int           `yaml:"queue_size" toml:"queue_size"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty means "keep config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration describes a playable game.
func (c GeoDashConfig) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacle width must be positive", ErrInvalid)
	case c.Obstacles.MinHeight <= 0 || c.Obstacles.MaxHeight < c.Obstacles.MinHeight:
		return fmt.Errorf("%w: obstacle heights must satisfy 0 < min_height <= max_height", ErrInvalid)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive", ErrInvalid)
	case c.Obstacles.MinSpawnInterval > c.Obstacles.SpawnInterval:
		return fmt.Errorf("%w: min_spawn_interval exceeds spawn_interval", ErrInvalid)
	case c.Obstacles.IntervalDecay < 0 || c.Physics.SpeedIncrement < 0:
		return fmt.Errorf("%w: ramps must not make the game easier", ErrInvalid)
	case c.Physics.Gravity <= 0 || c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: gravity must be positive and jump_impulse negative", ErrInvalid)
	case c.Physics.BaseSpeed <= 0:
		return fmt.Errorf("%w: base_speed must be positive", ErrInvalid)
	case c.Scoring.ObstacleReward < 0:
		return fmt.Errorf("%w: obstacle_reward must not be negative", ErrInvalid)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("%w: render cell size must be positive", ErrInvalid)
	}
	return nil
}
