package spacewars

// Body is the drawable part of an entity.
type Body struct {
	Pos    Vec
	Radius float64
}

// Snapshot is a point-in-time copy of a session for renderers.
// It shares no memory with the State it was taken from.
type Snapshot struct {
	Field     Field
	Ship      Body
	Obstacles []Body // Spawn order
	Score     int
	Level     int
	Tick      int
	Over      bool

	FixedSpeed bool // Obstacle speed does not grow with the level
}

// Drawer paints a snapshot.
type Drawer interface {
	Draw(Snapshot)
}

// Snapshot copies the current state. It never mutates the session.
func (s *State) Snapshot() Snapshot {
	obstacles := make([]Body, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = Body{Pos: o.Pos, Radius: o.Radius()}
	}
	return Snapshot{
		Field:     s.field,
		Ship:      Body{Pos: s.ship.Pos, Radius: s.ship.Radius()},
		Obstacles: obstacles,
		Score:     s.score,
		Level:     s.DifficultyLevel(),
		Tick:      s.ticks,
		Over:      s.over,

		FixedSpeed: !s.difficulty.IsEnabled(),
	}
}

// RenderTick hands a fresh snapshot to d.
func (s *State) RenderTick(d Drawer) {
	d.Draw(s.Snapshot())
}
