package config

// DifficultyManager derives obstacle speed from the current score.
// The level is recomputed on every call and never stored.
type DifficultyManager struct {
	cfg       DifficultyConfig
	baseSpeed float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, baseSpeed float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:       cfg,
		baseSpeed: baseSpeed,
	}
}

// IsEnabled returns whether speed grows with the level.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Acceleration > 0
}

// Level returns score / points_per_level using integer division.
func (d *DifficultyManager) Level(score int) int {
	if d.cfg.PointsPerLevel <= 0 || score < 0 {
		return 0 // Prevent division by zero
	}
	return score / d.cfg.PointsPerLevel
}

// ObstacleSpeed returns base_speed + acceleration * level for the given score.
func (d *DifficultyManager) ObstacleSpeed(score int) float64 {
	return d.baseSpeed + d.cfg.Acceleration*float64(d.Level(score))
}
