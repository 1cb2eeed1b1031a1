// Package core provides fundamental types and utilities shared by the
// simulation and its hosts. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Vec2 is a point or velocity in world units. Value type.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned bounding box in world units.
// Y grows downwards, so Top < Bottom.
type Box struct {
	Pos  Vec2
	W, H float64
}

// Top returns the y-coordinate of the upper edge.
func (b Box) Top() float64 { return b.Pos.Y }

// Bottom returns the y-coordinate of the lower edge.
func (b Box) Bottom() float64 { return b.Pos.Y + b.H }

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Pos.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Pos.X + b.W }

// Overlaps reports whether the two boxes overlap.
// Edges that only touch do not count.
func Overlaps(a, b Box) bool {
	return a.Right() > b.Left() &&
		a.Left() < b.Right() &&
		a.Bottom() > b.Top() &&
		a.Top() < b.Bottom()
}

// HorizontalOverlap reports whether the x ranges of the boxes overlap.
func HorizontalOverlap(a, b Box) bool {
	return a.Right() > b.Left() && a.Left() < b.Right()
}

// Rect represents a cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the lower bound wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
