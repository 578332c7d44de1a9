// Package core provides fundamental types and utilities shared by the lane
// runner and its terminal front-end. It has no external dependencies so the
// simulation stays pure and testable.
package core

// Rect is an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
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

// Span is a vertical interval [Top, Bottom] in logical view units.
type Span struct {
	Top    float64
	Bottom float64
}

// SpanAt returns the span of height h whose top edge is at y.
func SpanAt(y, h float64) Span {
	return Span{Top: y, Bottom: y + h}
}

// SpanAround returns the span of height h centered on y.
func SpanAround(y, h float64) Span {
	return Span{Top: y - h/2, Bottom: y + h/2}
}

// Overlaps reports whether two spans intersect. Touching edges do not count.
func (s Span) Overlaps(other Span) bool {
	return s.Bottom > other.Top && s.Top < other.Bottom
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
