package spacewars

import (
	"math"

	"github.com/vovakirdan/space-wars/internal/core"
)

// Autopilot steers the ship away from the nearest obstacle on a collision
// course. It drives headless runs and the attract mode of `simulate`.
type Autopilot struct {
	game   *Game
	margin float64 // Extra clearance added to the radius sum
}

// NewAutopilot creates an autopilot for g.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g, margin: 10}
}

// Next returns the commands for the upcoming tick.
func (a *Autopilot) Next(_ int) core.InputFrame {
	action := a.Decide(a.game.Snapshot())
	if action == core.ActionNone {
		return core.InputFrame{}
	}
	return core.NewInputFrame(action)
}

// Decide picks a steering action for the given snapshot.
func (a *Autopilot) Decide(snap Snapshot) core.Action {
	if snap.Over || snap.Field.Width <= 0 {
		return core.ActionNone
	}

	ship := snap.Ship
	threat := -1
	var threatDX float64
	nearestDY := math.Inf(1)

	for i, o := range snap.Obstacles {
		dy := ship.Pos.Y - o.Pos.Y
		reach := ship.Radius + o.Radius + a.margin
		if dy < -reach {
			continue // Already passed the ship
		}
		dx := wrapDelta(o.Pos.X-ship.Pos.X, snap.Field.Width)
		if math.Abs(dx) >= reach {
			continue
		}
		if dy < nearestDY {
			nearestDY = dy
			threat = i
			threatDX = dx
		}
	}

	if threat < 0 {
		return core.ActionNone
	}
	if threatDX >= 0 {
		return core.ActionLeft
	}
	return core.ActionRight
}

// wrapDelta returns the shortest signed horizontal offset on a wrapping field.
func wrapDelta(dx, width float64) float64 {
	switch {
	case dx > width/2:
		return dx - width
	case dx < -width/2:
		return dx + width
	default:
		return dx
	}
}
