package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports every malformed field at once.
// The returned error matches ErrInvalid with errors.Is.
func (c SpaceWarsConfig) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s %s", ErrInvalid, field, fmt.Sprintf(format, args...)))
	}

	if c.Field.Width <= 0 {
		bad("field.width", "must be positive, got %v", c.Field.Width)
	}
	if c.Field.Height <= 0 {
		bad("field.height", "must be positive, got %v", c.Field.Height)
	}

	if c.Ship.Speed < 0 {
		bad("ship.speed", "must not be negative, got %v", c.Ship.Speed)
	}
	if c.Ship.Width <= 0 || c.Ship.Height <= 0 {
		bad("ship.width/height", "must be positive, got %vx%v", c.Ship.Width, c.Ship.Height)
	}
	if c.Ship.RowOffset < 0 {
		bad("ship.row_offset", "must not be negative, got %v", c.Ship.RowOffset)
	} else if c.Field.Height > 0 && c.Ship.RowOffset >= c.Field.Height {
		bad("ship.row_offset", "must be below field.height %v, got %v", c.Field.Height, c.Ship.RowOffset)
	}

	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		bad("obstacles.width/height", "must be positive, got %vx%v", c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.BaseSpeed < 0 {
		bad("obstacles.base_speed", "must not be negative, got %v", c.Obstacles.BaseSpeed)
	}

	if c.Spawn.RateRange <= 0 {
		bad("spawn.rate_range", "must be positive, got %d", c.Spawn.RateRange)
	}
	if c.Spawn.RateLimit >= c.Spawn.RateRange {
		bad("spawn.rate_limit", "must be below rate_range %d, got %d", c.Spawn.RateRange, c.Spawn.RateLimit)
	}
	if c.Spawn.Interval <= 0 {
		bad("spawn.interval", "must be positive, got %v", c.Spawn.Interval)
	}

	if c.Difficulty.PointsPerLevel <= 0 {
		bad("difficulty.points_per_level", "must be positive, got %d", c.Difficulty.PointsPerLevel)
	}
	if c.Difficulty.Acceleration < 0 {
		bad("difficulty.acceleration", "must not be negative, got %v", c.Difficulty.Acceleration)
	}

	if c.Timing.TickInterval <= 0 {
		bad("timing.tick_interval", "must be positive, got %v", c.Timing.TickInterval)
	}
	if c.Timing.RenderInterval <= 0 {
		bad("timing.render_interval", "must be positive, got %v", c.Timing.RenderInterval)
	}

	return errors.Join(errs...)
}
