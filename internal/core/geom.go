// Package core provides fundamental types and utilities shared by the
// simulation and the terminal host. It has no Bubble Tea dependency so the
// game logic stays pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for drawing.
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

// Vec is a point or offset in world space. The y axis points down.
type Vec struct {
	X, Y float64
}

// Size is a width/height pair in world units.
type Size struct {
	W, H float64
}

// Scale returns the size multiplied by f on both axes.
func (s Size) Scale(f float64) Size {
	return Size{W: s.W * f, H: s.H * f}
}

// Box is an axis-aligned box anchored at its centre, the way sprites are
// positioned in the scene.
type Box struct {
	Center Vec
	Size   Size
}

// NewBox creates a box centred on (cx, cy).
func NewBox(cx, cy, w, h float64) Box {
	return Box{Center: Vec{X: cx, Y: cy}, Size: Size{W: w, H: h}}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.Size.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.Size.W/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Center.Y - b.Size.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Center.Y + b.Size.H/2 }

// Scaled returns a box with the same centre and its size multiplied by f.
func (b Box) Scaled(f float64) Box {
	return Box{Center: b.Center, Size: b.Size.Scale(f)}
}

// Overlaps reports whether two boxes share interior area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	if b.Left() >= other.Right() || other.Left() >= b.Right() {
		return false
	}
	if b.Top() >= other.Bottom() || other.Top() >= b.Bottom() {
		return false
	}
	return true
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
