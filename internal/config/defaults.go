package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/geodash.yaml
var defaultGeoDashYAML []byte

// DefaultGeoDashConfig returns the hardcoded default configuration.
// It mirrors defaults/geodash.yaml and is used when the embedded file cannot be parsed.
func DefaultGeoDashConfig() GeoDashConfig {
	return GeoDashConfig{
		Physics: Physics{
			Gravity:        0.9,
			JumpImpulse:    -18,
			BaseSpeed:      8,
			SpeedIncrement: 0.002,
			MaxSpeed:       0,
		},
		Player: Player{
			X:           100,
			Width:       45,
			Height:      45,
			StartOffset: 180,
		},
		Ground: Ground{
			Height: 120,
		},
		Obstacles: Obstacles{
			Width:            30,
			MinHeight:        40,
			MaxHeight:        120,
			SpawnInterval:    70,
			MinSpawnInterval: 35,
			IntervalDecay:    1,
		},
		Scoring: Scoring{
			ObstacleReward: 10,
		},
		Render: Render{
			CellWidth:  8,
			CellHeight: 16,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Preset:  string(DifficultyNormal),
		},
		Notifier: NotifierConfig{
			Kind:      "log",
			Timeout:   5 * time.Second,
			QueueSize: 8,
		},
	}
}

// ClassicConfig returns the configuration of the first released iteration:
// constant scroll speed and constant spawn interval.
func ClassicConfig() GeoDashConfig {
	cfg := DefaultGeoDashConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	return cfg
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGeoDashYAML
}
