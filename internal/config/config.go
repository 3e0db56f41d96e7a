// Package config provides YAML-based configuration loading, validation and
// difficulty presets for Space Wars.
package config

import (
	"fmt"
	"time"
)

// SpaceWarsConfig contains every tunable of a Space Wars session.
// Distances are field pixels, speeds are pixels per simulation tick.
type SpaceWarsConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ship       ShipConfig       `yaml:"ship"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
}

// FieldConfig defines the simulation bounds.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Speed     float64 `yaml:"speed"` // Horizontal distance per move command
	Width     float64 `yaml:"width"` // Sprite extent, radius is half the smaller side
	Height    float64 `yaml:"height"`
	RowOffset float64 `yaml:"row_offset"` // Distance of the ship center above the bottom edge
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BaseSpeed float64 `yaml:"base_speed"` // Vertical speed at difficulty level 0
}

// SpawnConfig gates obstacle spawning.
// A spawn is armed once Interval has elapsed since the last one and a
// uniform draw from [0, RateRange) exceeds RateLimit.
type SpawnConfig struct {
	RateRange int           `yaml:"rate_range"`
	RateLimit int           `yaml:"rate_limit"`
	Interval  time.Duration `yaml:"interval"`
}

// DifficultyConfig defines how obstacle speed scales with score.
type DifficultyConfig struct {
	PointsPerLevel int     `yaml:"points_per_level"`
	Acceleration   float64 `yaml:"acceleration"` // Speed added per level
}

// TimingConfig defines the two independent loop cadences.
type TimingConfig struct {
	TickInterval   time.Duration `yaml:"tick_interval"`
	RenderInterval time.Duration `yaml:"render_interval"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a CLI string into a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Description returns a one-line summary for menus and help text.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slower rocks, fewer spawns"
	case DifficultyNormal:
		return "Rocks speed up as you score"
	case DifficultyHard:
		return "Fast rocks, frequent spawns"
	case DifficultyFixed:
		return "No speed-up, constant pace"
	default:
		return ""
	}
}
