// Package geom provides the axis-aligned rectangle primitives shared by all
// game entities.
package geom

// Vec is a 2D vector, used for velocities.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o intersect with non-zero overlap on both
// axes. Edges that merely touch do not count (half-open intervals).
func Overlaps(r, o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}
