package spacewars

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/space-wars/internal/config"
)

type spawnPhase uint8

const (
	phaseIdle spawnPhase = iota
	phaseArmed
)

// Spawner decides when a new obstacle enters the field.
// Time is simulated: every Step counts as one tick interval.
type Spawner struct {
	cfg       config.SpawnConfig
	tick      time.Duration
	rng       *rand.Rand
	phase     spawnPhase
	sinceLast time.Duration
}

// NewSpawner creates a spawner. The session start counts as the last spawn.
func NewSpawner(cfg config.SpawnConfig, tick time.Duration, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:  cfg,
		tick: tick,
		rng:  rng,
	}
}

// Step advances the spawner by one tick. An Idle spawner may arm; an
// armed one spawns on its next Step. A spawned obstacle starts on the top
// edge at a uniformly random x with the given speed.
func (s *Spawner) Step(f Field, speed, radius float64) (Entity, bool) {
	s.sinceLast += s.tick

	if s.phase == phaseArmed {
		x := s.rng.Float64() * f.Width
		s.sinceLast = 0
		s.phase = phaseIdle
		return NewObstacle(x, 0, radius, speed), true
	}

	draw := s.rng.Intn(s.cfg.RateRange)
	if s.sinceLast > s.cfg.Interval && draw > s.cfg.RateLimit {
		s.phase = phaseArmed
	}
	return Entity{}, false
}
