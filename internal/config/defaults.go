package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/spacewars.yaml
var defaultSpaceWarsYAML []byte

// DefaultSpaceWarsConfig returns the built-in configuration. It mirrors
// defaults/spacewars.yaml and is used when the embedded file cannot be parsed.
func DefaultSpaceWarsConfig() SpaceWarsConfig {
	return SpaceWarsConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Speed:     20,
			Width:     40,
			Height:    40,
			RowOffset: 140,
		},
		Obstacles: ObstacleConfig{
			Width:     40,
			Height:    40,
			BaseSpeed: 10,
		},
		Spawn: SpawnConfig{
			RateRange: 100,
			RateLimit: 70,
			Interval:  800 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			PointsPerLevel: 5,
			Acceleration:   2,
		},
		Timing: TimingConfig{
			TickInterval:   100 * time.Millisecond,
			RenderInterval: 50 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSpaceWarsYAML
}
