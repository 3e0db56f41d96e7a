package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{PointsPerLevel: 5, Acceleration: 2}, 10)

	tests := []struct {
		score int
		level int
		speed float64
	}{
		{0, 0, 10},
		{4, 0, 10},
		{5, 1, 12},
		{9, 1, 12},
		{10, 2, 14},
		{27, 5, 20},
	}

	for _, tt := range tests {
		if got := dm.Level(tt.score); got != tt.level {
			t.Errorf("Level(%d): got %d, expected %d", tt.score, got, tt.level)
		}
		if got := dm.ObstacleSpeed(tt.score); got != tt.speed {
			t.Errorf("ObstacleSpeed(%d): got %v, expected %v", tt.score, got, tt.speed)
		}
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{PointsPerLevel: 3, Acceleration: 1.5}, 4)

	prevLevel, prevSpeed := dm.Level(0), dm.ObstacleSpeed(0)
	for score := 1; score <= 200; score++ {
		level, speed := dm.Level(score), dm.ObstacleSpeed(score)
		if level < prevLevel {
			t.Fatalf("level decreased at score %d: %d -> %d", score, prevLevel, level)
		}
		if speed < prevSpeed {
			t.Fatalf("speed decreased at score %d: %v -> %v", score, prevSpeed, speed)
		}
		prevLevel, prevSpeed = level, speed
	}
}

func TestDifficultyFixed(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{PointsPerLevel: 5, Acceleration: 0}, 10)
	if dm.IsEnabled() {
		t.Error("expected progression disabled with zero acceleration")
	}
	if got := dm.ObstacleSpeed(100); got != 10 {
		t.Errorf("got %v, expected constant 10", got)
	}
	if got := dm.Level(100); got != 20 {
		t.Errorf("got level %d, expected 20 even when speed is fixed", got)
	}
}

func TestDifficultyZeroPointsPerLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{PointsPerLevel: 0, Acceleration: 2}, 10)
	if got := dm.Level(50); got != 0 {
		t.Errorf("got %d, expected 0", got)
	}
}
