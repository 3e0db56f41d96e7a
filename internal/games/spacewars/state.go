package spacewars

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/space-wars/internal/config"
)

// GameOverFunc receives the final score when a session ends.
type GameOverFunc func(finalScore int)

// TickResult describes what happened during one tick.
type TickResult struct {
	Spawned  bool // A new obstacle entered the field
	Exited   int  // Obstacles that left the bottom edge and scored
	Collided bool // The ship hit at least one obstacle
	Over     bool // The session is over (this tick or earlier)
	Score    int
}

// State owns one session: the ship, the obstacles in spawn order and the score.
// It is not safe for concurrent use; the driver interleaves Tick, moves and
// Snapshot on a single goroutine.
type State struct {
	cfg        config.SpaceWarsConfig
	field      Field
	ship       Entity
	obstacles  []Entity
	score      int
	over       bool
	ticks      int
	spawner    *Spawner
	difficulty *config.DifficultyManager
	obstacleR  float64
	onGameOver []GameOverFunc
}

// NewState validates cfg and starts a session with the ship centered on its row.
// rng drives spawn decisions; the same seed reproduces the same session.
func NewState(cfg config.SpaceWarsConfig, rng *rand.Rand) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("spacewars: %w", err)
	}
	if rng == nil {
		return nil, errors.New("spacewars: nil random source")
	}

	field := Field{Width: cfg.Field.Width, Height: cfg.Field.Height}
	shipR := RadiusFromExtent(cfg.Ship.Width, cfg.Ship.Height)

	return &State{
		cfg:        cfg,
		field:      field,
		ship:       NewShip(field.Width/2, field.Height-cfg.Ship.RowOffset, shipR, cfg.Ship.Speed),
		obstacles:  make([]Entity, 0, 16),
		spawner:    NewSpawner(cfg.Spawn, cfg.Timing.TickInterval, rng),
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Obstacles.BaseSpeed),
		obstacleR:  RadiusFromExtent(cfg.Obstacles.Width, cfg.Obstacles.Height),
	}, nil
}

// OnGameOver registers fn to be called once when the session ends.
func (s *State) OnGameOver(fn GameOverFunc) {
	if fn != nil {
		s.onGameOver = append(s.onGameOver, fn)
	}
}

// MoveLeft steers the ship left. No-op once the session is over.
func (s *State) MoveLeft() {
	if s.over {
		return
	}
	MoveShipLeft(&s.ship, s.field.Width)
}

// MoveRight steers the ship right. No-op once the session is over.
func (s *State) MoveRight() {
	if s.over {
		return
	}
	MoveShipRight(&s.ship, s.field.Width)
}

// Tick advances the session by one step: spawn, move and score, then collide.
// Once the session is over Tick only reports the final result.
func (s *State) Tick() TickResult {
	if s.over {
		return TickResult{Over: true, Score: s.score}
	}

	var res TickResult

	if o, ok := s.spawner.Step(s.field, s.ObstacleSpeed(), s.obstacleR); ok {
		s.obstacles = append(s.obstacles, o)
		res.Spawned = true
	}

	// Filter in place, keeping spawn order
	remaining := s.obstacles[:0]
	for i := range s.obstacles {
		o := s.obstacles[i]
		if Advance(&o, s.field) {
			s.score++
			res.Exited++
			continue
		}
		remaining = append(remaining, o)
	}
	s.obstacles = remaining

	for _, o := range s.obstacles {
		if Collides(s.ship, o) {
			res.Collided = true
		}
	}

	s.ticks++

	if res.Collided {
		s.over = true
		for _, fn := range s.onGameOver {
			fn(s.score)
		}
	}

	res.Over = s.over
	res.Score = s.score
	return res
}

// Score returns the number of obstacles survived.
func (s *State) Score() int {
	return s.score
}

// IsOver reports whether the ship has collided.
func (s *State) IsOver() bool {
	return s.over
}

// DifficultyLevel returns score / points_per_level for the current score.
func (s *State) DifficultyLevel() int {
	return s.difficulty.Level(s.score)
}

// ObstacleSpeed returns the speed a new obstacle would get now.
func (s *State) ObstacleSpeed() float64 {
	return s.difficulty.ObstacleSpeed(s.score)
}

// Config returns the validated config the session was built from.
func (s *State) Config() config.SpaceWarsConfig {
	return s.cfg
}
