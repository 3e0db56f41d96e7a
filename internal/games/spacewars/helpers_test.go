package spacewars

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/space-wars/internal/config"
)

// quietConfig returns an 800x600 config whose spawner never fires:
// the draw is always below rate_range, so it never exceeds rate_range-1.
func quietConfig() config.SpaceWarsConfig {
	cfg := config.DefaultSpaceWarsConfig()
	cfg.Spawn.RateLimit = cfg.Spawn.RateRange - 1
	return cfg
}

// busyConfig returns a config whose spawner arms on every Idle tick,
// so an obstacle spawns on every other tick.
func busyConfig() config.SpaceWarsConfig {
	cfg := config.DefaultSpaceWarsConfig()
	cfg.Spawn.RateLimit = -1
	cfg.Spawn.Interval = 50 * time.Millisecond
	cfg.Timing.TickInterval = 100 * time.Millisecond
	return cfg
}

func newTestState(t *testing.T, cfg config.SpaceWarsConfig, seed int64) *State {
	t.Helper()
	s, err := NewState(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return s
}
