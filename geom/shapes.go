package geom

import "math"

//-----------------------------------------------------------------------------
// Circle
//-----------------------------------------------------------------------------

// Circle is a disc centered at Center with the given Radius.
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Contains reports whether (x, y) lies inside the disc (boundary inclusive).
func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.Center.X, y-c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Bounds returns the square enclosing the disc.
func (c Circle) Bounds() Rect {
	return Rect{
		Min: Point{c.Center.X - c.Radius, c.Center.Y - c.Radius},
		Max: Point{c.Center.X + c.Radius, c.Center.Y + c.Radius},
	}
}

// SignedDistance returns distance-to-center minus radius.
func (c Circle) SignedDistance(x, y float64) float64 {
	return math.Hypot(x-c.Center.X, y-c.Center.Y) - c.Radius
}

//-----------------------------------------------------------------------------
// Rect
//-----------------------------------------------------------------------------

// Rect is an axis-aligned rectangle spanning Min..Max (both inclusive).
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

// Bounds returns the rectangle itself.
func (r Rect) Bounds() Rect { return r }

// SignedDistance returns the usual box signed distance: negative inside,
// Euclidean distance to the nearest edge outside.
func (r Rect) SignedDistance(x, y float64) float64 {
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	hx := (r.Max.X - r.Min.X) / 2
	hy := (r.Max.Y - r.Min.Y) / 2
	qx := math.Abs(x-cx) - hx
	qy := math.Abs(y-cy) - hy
	ox := math.Max(qx, 0)
	oy := math.Max(qy, 0)
	outside := math.Hypot(ox, oy)
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside
}

// Expand returns the rectangle grown by n on every side.
func (r Rect) Expand(n float64) Rect {
	return Rect{
		Min: Point{r.Min.X - n, r.Min.Y - n},
		Max: Point{r.Max.X + n, r.Max.Y + n},
	}
}

//-----------------------------------------------------------------------------
// Ellipse
//-----------------------------------------------------------------------------

// Ellipse is an axis-aligned ellipse with semi-axes RadiusX and RadiusY.
type Ellipse struct {
	Center  Point   `json:"center"`
	RadiusX float64 `json:"radiusX"`
	RadiusY float64 `json:"radiusY"`
}

// Contains evaluates the normalized ellipse equation (boundary inclusive).
func (e Ellipse) Contains(x, y float64) bool {
	if e.RadiusX == 0 || e.RadiusY == 0 {
		return false
	}
	nx := (x - e.Center.X) / e.RadiusX
	ny := (y - e.Center.Y) / e.RadiusY
	return nx*nx+ny*ny <= 1
}

// Bounds returns the enclosing axis-aligned rectangle.
func (e Ellipse) Bounds() Rect {
	return Rect{
		Min: Point{e.Center.X - e.RadiusX, e.Center.Y - e.RadiusY},
		Max: Point{e.Center.X + e.RadiusX, e.Center.Y + e.RadiusY},
	}
}

// SignedDistance approximates the ellipse distance by scaling the normalized
// radial overshoot by the mean semi-axis. Exact ellipse distance needs an
// iterative solve; the blend rings only need a monotonic estimate.
func (e Ellipse) SignedDistance(x, y float64) float64 {
	if e.RadiusX == 0 || e.RadiusY == 0 {
		return math.Inf(1)
	}
	nx := (x - e.Center.X) / e.RadiusX
	ny := (y - e.Center.Y) / e.RadiusY
	return (math.Hypot(nx, ny) - 1) * (e.RadiusX + e.RadiusY) / 2
}

//-----------------------------------------------------------------------------
// Polygon
//-----------------------------------------------------------------------------

// Polygon is a closed polygon over its Vertices (implicitly closed from the
// last vertex back to the first).
type Polygon struct {
	Vertices []Point `json:"vertices"`
}

// Contains uses even-odd ray crossing.
// Complexity: O(n) over the vertex count.
func (p Polygon) Contains(x, y float64) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p.Vertices[i], p.Vertices[j]
		if (vi.Y > y) != (vj.Y > y) &&
			x < (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the bounding rectangle of all vertices.
func (p Polygon) Bounds() Rect {
	if len(p.Vertices) == 0 {
		return Rect{}
	}
	r := Rect{Min: p.Vertices[0], Max: p.Vertices[0]}
	for _, v := range p.Vertices[1:] {
		r.Min.X = math.Min(r.Min.X, v.X)
		r.Min.Y = math.Min(r.Min.Y, v.Y)
		r.Max.X = math.Max(r.Max.X, v.X)
		r.Max.Y = math.Max(r.Max.Y, v.Y)
	}
	return r
}

// SignedDistance returns the distance to the nearest polygon edge, negated
// when (x, y) is inside.
// Complexity: O(n).
func (p Polygon) SignedDistance(x, y float64) float64 {
	n := len(p.Vertices)
	if n < 3 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		_, dSq := segmentParam(p.Vertices[j], p.Vertices[i], x, y)
		best = math.Min(best, dSq)
	}
	d := math.Sqrt(best)
	if p.Contains(x, y) {
		return -d
	}
	return d
}

//-----------------------------------------------------------------------------
// Line
//-----------------------------------------------------------------------------

// Line is a thick segment: all points within HalfWidth of the segment A→B.
type Line struct {
	A, B      Point
	HalfWidth float64
}

// Contains reports whether (x, y) lies within HalfWidth of the segment.
func (l Line) Contains(x, y float64) bool {
	_, dSq := segmentParam(l.A, l.B, x, y)
	return dSq <= l.HalfWidth*l.HalfWidth
}

// Bounds returns the segment's bounding rectangle grown by HalfWidth.
func (l Line) Bounds() Rect {
	r := Rect{
		Min: Point{math.Min(l.A.X, l.B.X), math.Min(l.A.Y, l.B.Y)},
		Max: Point{math.Max(l.A.X, l.B.X), math.Max(l.A.Y, l.B.Y)},
	}
	return r.Expand(l.HalfWidth)
}

// SignedDistance returns segment distance minus HalfWidth.
func (l Line) SignedDistance(x, y float64) float64 {
	_, dSq := segmentParam(l.A, l.B, x, y)
	return math.Sqrt(dSq) - l.HalfWidth
}

// Param returns the clamped projection parameter of (x, y) along A→B,
// 0 at A and 1 at B. Used for elevation interpolation along ramps.
func (l Line) Param(x, y float64) float64 {
	t, _ := segmentParam(l.A, l.B, x, y)
	return t
}

// Length returns the segment length.
func (l Line) Length() float64 { return l.A.Dist(l.B) }

//-----------------------------------------------------------------------------
// Path
//-----------------------------------------------------------------------------

// Path is a thick polyline through Waypoints.
type Path struct {
	Waypoints []Point
	HalfWidth float64
}

// Contains reports whether (x, y) lies within HalfWidth of any segment.
// Complexity: O(k) over the segment count.
func (p Path) Contains(x, y float64) bool {
	hwSq := p.HalfWidth * p.HalfWidth
	for i := 1; i < len(p.Waypoints); i++ {
		if _, dSq := segmentParam(p.Waypoints[i-1], p.Waypoints[i], x, y); dSq <= hwSq {
			return true
		}
	}
	return false
}

// Bounds returns the bounding rectangle of all waypoints grown by HalfWidth.
func (p Path) Bounds() Rect {
	poly := Polygon{Vertices: p.Waypoints}
	return poly.Bounds().Expand(p.HalfWidth)
}

// SignedDistance returns distance to the nearest segment minus HalfWidth.
func (p Path) SignedDistance(x, y float64) float64 {
	best := math.Inf(1)
	for i := 1; i < len(p.Waypoints); i++ {
		_, dSq := segmentParam(p.Waypoints[i-1], p.Waypoints[i], x, y)
		best = math.Min(best, dSq)
	}
	return math.Sqrt(best) - p.HalfWidth
}
