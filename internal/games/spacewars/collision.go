package spacewars

// distanceSquared avoids the sqrt when comparing against a radius sum.
func distanceSquared(a, b Vec) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Collides reports whether two circles overlap.
// Touching circles (distance equal to the radius sum) do not collide.
func Collides(a, b Entity) bool {
	minDist := a.radius + b.radius
	return distanceSquared(a.Pos, b.Pos) < minDist*minDist
}
