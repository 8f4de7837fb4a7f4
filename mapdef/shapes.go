package mapdef

import (
	"fmt"
	"math"

	"github.com/velmara/gridforge/geom"
)

// ShapeSpec is the JSON-serializable tagged union over the geom primitives.
// Exactly the fields of the named type are read; the rest are ignored.
type ShapeSpec struct {
	// Type is one of circle, rect, ellipse, polygon, line, path.
	Type string `json:"type"`

	Center  geom.Point `json:"center,omitempty"`
	Radius  float64    `json:"radius,omitempty"`
	RadiusX float64    `json:"radiusX,omitempty"`
	RadiusY float64    `json:"radiusY,omitempty"`

	Min geom.Point `json:"min,omitempty"`
	Max geom.Point `json:"max,omitempty"`

	Vertices []geom.Point `json:"vertices,omitempty"`

	A         geom.Point   `json:"a,omitempty"`
	B         geom.Point   `json:"b,omitempty"`
	HalfWidth float64      `json:"halfWidth,omitempty"`
	Waypoints []geom.Point `json:"waypoints,omitempty"`
}

// Shape resolves the entry to a concrete geom.Shape.
// Returns ErrBadShape (wrapped with the reason) for unknown types and
// degenerate geometry.
func (s ShapeSpec) Shape() (geom.Shape, error) {
	switch s.Type {
	case "circle":
		if s.Radius <= 0 {
			return nil, fmt.Errorf("%w: circle needs radius > 0", ErrBadShape)
		}
		return geom.Circle{Center: s.Center, Radius: s.Radius}, nil
	case "rect":
		if s.Max.X < s.Min.X || s.Max.Y < s.Min.Y {
			return nil, fmt.Errorf("%w: rect max must not precede min", ErrBadShape)
		}
		return geom.Rect{Min: s.Min, Max: s.Max}, nil
	case "ellipse":
		if s.RadiusX <= 0 || s.RadiusY <= 0 {
			return nil, fmt.Errorf("%w: ellipse needs both radii > 0", ErrBadShape)
		}
		return geom.Ellipse{Center: s.Center, RadiusX: s.RadiusX, RadiusY: s.RadiusY}, nil
	case "polygon":
		if len(s.Vertices) < 3 {
			return nil, fmt.Errorf("%w: polygon needs at least 3 vertices", ErrBadShape)
		}
		return geom.Polygon{Vertices: s.Vertices}, nil
	case "line":
		if s.HalfWidth <= 0 {
			return nil, fmt.Errorf("%w: line needs halfWidth > 0", ErrBadShape)
		}
		return geom.Line{A: s.A, B: s.B, HalfWidth: s.HalfWidth}, nil
	case "path":
		if len(s.Waypoints) < 2 || s.HalfWidth <= 0 {
			return nil, fmt.Errorf("%w: path needs 2+ waypoints and halfWidth > 0", ErrBadShape)
		}
		return geom.Path{Waypoints: s.Waypoints, HalfWidth: s.HalfWidth}, nil
	}
	return nil, fmt.Errorf("%w: type %q", ErrBadShape, s.Type)
}

// ring is an annulus used for manual cliff rings around elevated regions.
// It stays private: the declarative schema only exposes the six primitives.
type ring struct {
	center       geom.Point
	inner, outer float64
}

func (r ring) Contains(x, y float64) bool {
	d := r.center.Dist(geom.Point{X: x, Y: y})
	return d >= r.inner && d <= r.outer
}

func (r ring) Bounds() geom.Rect {
	return geom.Circle{Center: r.center, Radius: r.outer}.Bounds()
}

func (r ring) SignedDistance(x, y float64) float64 {
	d := r.center.Dist(geom.Point{X: x, Y: y})
	mid := (r.inner + r.outer) / 2
	half := (r.outer - r.inner) / 2
	return math.Abs(d-mid) - half
}
