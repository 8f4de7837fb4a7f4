package paint

import (
	"fmt"
	"math"

	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/grid"
	"github.com/velmara/gridforge/pathcfg"
)

// Apply executes the command list against g, in order. Later commands
// override earlier ones inside their footprint, with one guard: feature
// commands never overwrite cells already marked ramp.
//
// Returns ErrNilGrid, ErrUnknownOp or ErrBadCommand (wrapped with the
// offending command index); the grid may be partially painted on error.
//
// Complexity: O(Σ footprint areas).
func Apply(g *grid.Grid, cmds []Command) error {
	if g == nil {
		return ErrNilGrid
	}
	for i, cmd := range cmds {
		if err := applyOne(g, cmd); err != nil {
			return fmt.Errorf("%w (command %d, op %s)", err, i, cmd.Op)
		}
	}
	return nil
}

// applyOne dispatches a single command.
func applyOne(g *grid.Grid, cmd Command) error {
	switch cmd.Op {
	case OpFill:
		applyFill(g, cmd.Elevation)
	case OpPlateau:
		if cmd.Shape != nil {
			applyElevationBlend(g, cmd.Shape, cmd.Elevation, cmd.Blend)
			return nil
		}
		if cmd.Radius <= 0 {
			return ErrBadCommand
		}
		applyElevationShape(g, geom.Circle{Center: cmd.Center, Radius: cmd.Radius}, cmd.Elevation)
	case OpRect:
		applyElevationShape(g, cmd.Rect, cmd.Elevation)
	case OpRamp:
		if cmd.Width <= 0 {
			return ErrBadCommand
		}
		applyRamp(g, cmd)
	case OpGradient:
		if cmd.Width <= 0 {
			return ErrBadCommand
		}
		applyGradient(g, cmd)
	case OpWater, OpForest, OpVoid, OpRoad, OpMud, OpUnwalkable:
		if cmd.Shape == nil {
			return ErrBadCommand
		}
		applyFeature(g, cmd.Shape, cmd.Feature)
	case OpBorder:
		if cmd.Thickness <= 0 {
			return ErrBadCommand
		}
		applyBorder(g, cmd.Thickness)
	default:
		return ErrUnknownOp
	}
	return nil
}

// applyFill sets every cell's elevation.
func applyFill(g *grid.Grid, elevation uint8) {
	for i := range g.Cells {
		g.Cells[i].Elevation = elevation
	}
}

// cellRange clips a shape's bounds to grid cell coordinates.
func cellRange(g *grid.Grid, b geom.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.Min.X))
	y0 = int(math.Floor(b.Min.Y))
	x1 = int(math.Ceil(b.Max.X))
	y1 = int(math.Ceil(b.Max.Y))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > g.Width-1 {
		x1 = g.Width - 1
	}
	if y1 > g.Height-1 {
		y1 = g.Height - 1
	}
	return x0, y0, x1, y1
}

// applyElevationShape sets elevation on every cell whose center lies inside
// the shape.
func applyElevationShape(g *grid.Grid, s geom.Shape, elevation uint8) {
	x0, y0, x1, y1 := cellRange(g, s.Bounds())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if s.Contains(float64(x), float64(y)) {
				g.Cell(x, y).Elevation = elevation
			}
		}
	}
}

// applyElevationBlend forces elevation inside the shape and, within blend
// cells outside it, linearly interpolates each cell's old elevation toward
// the new one by normalized boundary distance.
func applyElevationBlend(g *grid.Grid, s geom.Shape, elevation uint8, blend float64) {
	x0, y0, x1, y1 := cellRange(g, s.Bounds().Expand(blend))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := s.SignedDistance(float64(x), float64(y))
			c := g.Cell(x, y)
			switch {
			case d <= 0:
				c.Elevation = elevation
			case blend > 0 && d < blend:
				t := d / blend // 0 at the boundary, 1 at the blend rim
				e := geom.Lerp(float64(elevation), float64(c.Elevation), t)
				c.Elevation = uint8(geom.Clamp(math.Round(e), 0, 255))
			}
		}
	}
}

// applyFeature sets the feature on every cell inside the shape, skipping
// cells already marked ramp: ramps take priority over decorative features.
func applyFeature(g *grid.Grid, s geom.Shape, f grid.Feature) {
	x0, y0, x1, y1 := cellRange(g, s.Bounds())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !s.Contains(float64(x), float64(y)) {
				continue
			}
			c := g.Cell(x, y)
			if c.Ramp {
				continue
			}
			c.Feature = f
		}
	}
}

// applyBorder marks a void frame of the given thickness around the grid.
func applyBorder(g *grid.Grid, thickness int) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x >= thickness && x < g.Width-thickness &&
				y >= thickness && y < g.Height-thickness {
				continue
			}
			c := g.Cell(x, y)
			if c.Ramp {
				continue
			}
			c.Feature = grid.FeatureVoid
		}
	}
}

// elevationAt samples the grid elevation at the cell nearest to p, clamped
// into bounds.
func elevationAt(g *grid.Grid, p geom.Point) uint8 {
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x > g.Width-1 {
		x = g.Width - 1
	}
	if y > g.Height-1 {
		y = g.Height - 1
	}
	return g.Cell(x, y).Elevation
}

// extendRamp projects cmd.To outward along From→To until the ramp length
// satisfies the minimum implied by the endpoint elevation delta. Returns the
// (possibly unchanged) far endpoint.
func extendRamp(from, to geom.Point, delta uint8) geom.Point {
	minLen := float64(pathcfg.MinRampLength(delta))
	length := from.Dist(to)
	if length >= minLen || length == 0 {
		return to
	}
	// Project the endpoint outward along the same direction.
	scale := minLen / length
	return geom.Point{
		X: from.X + (to.X-from.X)*scale,
		Y: from.Y + (to.Y-from.Y)*scale,
	}
}

// applyRamp paints a walkable ramp. Endpoint elevations are read from the
// current grid; the far endpoint auto-extends so the per-cell climb never
// exceeds pathcfg.MaxSlopePerCell. Interior cells interpolate linearly along
// the long axis and are marked ramp.
func applyRamp(g *grid.Grid, cmd Command) {
	e0 := elevationAt(g, cmd.From)
	e1 := elevationAt(g, cmd.To)
	var delta uint8
	if e0 > e1 {
		delta = e0 - e1
	} else {
		delta = e1 - e0
	}
	to := extendRamp(cmd.From, cmd.To, delta)
	paintSlope(g, cmd.From, to, cmd.Width/2, e0, e1, EaseLinear, true, false)
}

// applyGradient paints a slope with explicit endpoint elevations. Corridor
// commands additionally shed blocking features inside the footprint.
func applyGradient(g *grid.Grid, cmd Command) {
	paintSlope(g, cmd.From, cmd.To, cmd.Width/2, cmd.FromElevation, cmd.Elevation, cmd.Ease, false, cmd.Clear)
}

// paintSlope interpolates elevation along the axis from→to for every cell
// within halfWidth of the segment. markRamp additionally flags cells as ramp;
// clear sheds blocking features without touching decorative ones.
func paintSlope(g *grid.Grid, from, to geom.Point, halfWidth float64, e0, e1 uint8, ease Easing, markRamp, clear bool) {
	line := geom.Line{A: from, B: to, HalfWidth: halfWidth}
	x0, y0, x1, y1 := cellRange(g, line.Bounds())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fx, fy := float64(x), float64(y)
			if !line.Contains(fx, fy) {
				continue
			}
			t := line.Param(fx, fy)
			if ease == EaseSmooth {
				t = geom.Smoothstep(t)
			}
			elev := geom.Lerp(float64(e0), float64(e1), t)
			c := g.Cell(x, y)
			c.Elevation = uint8(geom.Clamp(math.Round(elev), 0, 255))
			if markRamp {
				c.Ramp = true
				// A ramp supersedes whatever feature was painted under it.
				c.Feature = grid.FeatureNone
			} else if clear && c.Feature.Blocking() {
				c.Feature = grid.FeatureNone
			}
		}
	}
}
