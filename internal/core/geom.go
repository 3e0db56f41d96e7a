// Package core provides the platform-neutral types shared by games and
// drivers: actions, runtime config, a colored cell screen and geometry helpers.
// It has no dependency on any terminal library so game logic stays testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap maps x into [0, size) with modular arithmetic.
// Negative inputs wrap from the far edge.
func Wrap(x, size float64) float64 {
	r := math.Mod(x, size)
	if r < 0 {
		r += size
	}
	// r+size can round up to size for tiny negative r
	if r >= size {
		r = 0
	}
	return r
}

// WrapInt maps x into [0, size) for integers.
func WrapInt(x, size int) int {
	r := x % size
	if r < 0 {
		r += size
	}
	return r
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
