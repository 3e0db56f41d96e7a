package spacewars

import "github.com/vovakirdan/space-wars/internal/core"

// MoveShipLeft shifts the ship left by its speed, wrapping into [0, fieldWidth).
func MoveShipLeft(ship *Entity, fieldWidth float64) {
	ship.Pos.X = core.Wrap(ship.Pos.X-ship.Vel.X, fieldWidth)
}

// MoveShipRight shifts the ship right by its speed, wrapping into [0, fieldWidth).
func MoveShipRight(ship *Entity, fieldWidth float64) {
	ship.Pos.X = core.Wrap(ship.Pos.X+ship.Vel.X, fieldWidth)
}

// AdvanceObstacle moves an obstacle down by its speed.
// It reports whether the obstacle is now below the bottom edge.
func AdvanceObstacle(o *Entity, fieldHeight float64) bool {
	o.Pos.Y += o.Vel.Y
	return o.Pos.Y > fieldHeight
}

// Advance applies one tick of passive motion according to the entity kind.
// The ship only moves on command, so it never exits.
func Advance(e *Entity, f Field) bool {
	switch e.Kind {
	case KindObstacle:
		return AdvanceObstacle(e, f.Height)
	default:
		return false
	}
}
