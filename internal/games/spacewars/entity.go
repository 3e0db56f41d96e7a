// Package spacewars implements a falling-obstacle dodging game.
// The player steers a ship along a fixed row while obstacles rain down;
// every obstacle that leaves the bottom edge scores a point and the first
// collision ends the session.
package spacewars

import "math"

// Kind selects the movement rule applied to an entity.
type Kind uint8

const (
	KindShip     Kind = iota // Steered horizontally, wraps around the field
	KindObstacle             // Falls straight down at a constant speed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Vec is a point or velocity in field pixels. Y grows downward.
type Vec struct {
	X, Y float64
}

// Field is the simulation area. It does not change during a session.
type Field struct {
	Width  float64
	Height float64
}

// Entity is a moving circle: the ship or an obstacle.
// Pos is the circle center. Vel is in pixels per tick.
type Entity struct {
	Kind   Kind
	Pos    Vec
	Vel    Vec
	radius float64
}

// NewShip creates the player ship. speedX is the distance of one move command.
func NewShip(x, y, radius, speedX float64) Entity {
	return Entity{
		Kind:   KindShip,
		Pos:    Vec{X: x, Y: y},
		Vel:    Vec{X: speedX},
		radius: radius,
	}
}

// NewObstacle creates an obstacle falling at speedY pixels per tick.
func NewObstacle(x, y, radius, speedY float64) Entity {
	return Entity{
		Kind:   KindObstacle,
		Pos:    Vec{X: x, Y: y},
		Vel:    Vec{Y: speedY},
		radius: radius,
	}
}

// Radius returns the collision radius fixed at creation.
func (e Entity) Radius() float64 {
	return e.radius
}

// RadiusFromExtent derives a collision radius from a sprite size.
func RadiusFromExtent(w, h float64) float64 {
	return math.Min(w, h) / 2
}
