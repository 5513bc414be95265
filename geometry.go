package paragraph

import "math"

// Size represents layout bounds in pixels.
// Either dimension may be infinite when the paragraph is free to grow
// along that axis; use Unbounded for such dimensions.
type Size struct {
	Width, Height float64
}

// Unbounded marks a dimension with no layout constraint.
var Unbounded = math.Inf(1)

// InfiniteSize returns a Size unconstrained in both dimensions.
func InfiniteSize() Size {
	return Size{Width: Unbounded, Height: Unbounded}
}

// IsFinite reports whether both dimensions are finite.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// Point represents a 2D position in pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}
