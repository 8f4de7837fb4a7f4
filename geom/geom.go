package geom

import "math"

// Point is a 2D coordinate in map space. Map space is continuous; the paint
// engine samples it at integer cell centers.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Dist returns the Euclidean distance between p and q.
// Complexity: O(1).
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Shape is the common query surface of every paintable primitive.
type Shape interface {
	// Contains reports whether (x, y) lies inside the shape.
	Contains(x, y float64) bool
	// Bounds returns the axis-aligned bounding rectangle of the shape.
	Bounds() Rect
	// SignedDistance returns the distance from (x, y) to the shape boundary,
	// negative inside and positive outside.
	SignedDistance(x, y float64) float64
}

// Lerp linearly interpolates between a and b by t in [0,1].
// Complexity: O(1).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep maps t in [0,1] through the cubic 3t²−2t³, clamping outside.
// Used by elevation gradients with eased blending.
// Complexity: O(1).
func Smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// segmentParam projects (x,y) onto the segment a→b and returns the clamped
// parameter t in [0,1] plus the squared distance to the projection.
// Complexity: O(1).
func segmentParam(a, b Point, x, y float64) (t, distSq float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		// Degenerate segment: distance to the single point.
		ex, ey := x-a.X, y-a.Y
		return 0, ex*ex + ey*ey
	}
	t = ((x-a.X)*dx + (y-a.Y)*dy) / lenSq
	t = Clamp(t, 0, 1)
	px, py := a.X+t*dx, a.Y+t*dy
	ex, ey := x-px, y-py
	return t, ex*ex + ey*ey
}
