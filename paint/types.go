// Package paint command vocabulary, constructors and sentinel errors.
package paint

import (
	"errors"

	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/grid"
)

// Sentinel errors for the raster engine.
var (
	// ErrNilGrid indicates Apply was invoked with a nil grid.
	ErrNilGrid = errors.New("paint: grid is nil")
	// ErrUnknownOp indicates a command whose opcode is not recognized.
	ErrUnknownOp = errors.New("paint: unknown command op")
	// ErrBadCommand indicates a command with missing or degenerate geometry.
	ErrBadCommand = errors.New("paint: bad command geometry")
)

// Op identifies the kind of mutation a Command performs.
type Op uint8

const (
	// OpFill sets every cell to a uniform elevation.
	OpFill Op = iota
	// OpPlateau sets elevation inside a circular footprint.
	OpPlateau
	// OpRect sets elevation inside a rectangular footprint.
	OpRect
	// OpRamp paints a walkable elevation ramp between two points.
	OpRamp
	// OpGradient paints an elevation slope without ramp marking; with the
	// Clear flag it doubles as a ground-clearing corridor.
	OpGradient
	// OpWater sets a water feature (shallow or deep) inside a shape.
	OpWater
	// OpForest sets a forest feature (light or dense) inside a shape.
	OpForest
	// OpVoid sets the void feature inside a shape.
	OpVoid
	// OpRoad sets the road feature inside a shape.
	OpRoad
	// OpMud sets the mud feature inside a shape.
	OpMud
	// OpUnwalkable paints a manual cliff feature inside a shape.
	OpUnwalkable
	// OpBorder paints a void frame of the given thickness around the map.
	OpBorder
)

// String returns the lowercase command name.
func (o Op) String() string {
	switch o {
	case OpFill:
		return "fill"
	case OpPlateau:
		return "plateau"
	case OpRect:
		return "rect"
	case OpRamp:
		return "ramp"
	case OpGradient:
		return "gradient"
	case OpWater:
		return "water"
	case OpForest:
		return "forest"
	case OpVoid:
		return "void"
	case OpRoad:
		return "road"
	case OpMud:
		return "mud"
	case OpUnwalkable:
		return "unwalkable"
	case OpBorder:
		return "border"
	}
	return "unknown"
}

// Easing selects the interpolation curve of a gradient command.
type Easing uint8

const (
	// EaseLinear interpolates elevation linearly along the gradient axis.
	EaseLinear Easing = iota
	// EaseSmooth applies the smoothstep curve 3t²−2t³.
	EaseSmooth
)

// Command is one raster mutation. Only the fields relevant to Op are read;
// use the constructors below rather than filling Commands by hand.
type Command struct {
	Op Op

	// Elevation is the target elevation for fill/plateau/rect and the
	// destination elevation of a gradient.
	Elevation uint8
	// FromElevation is the source elevation of a gradient.
	FromElevation uint8

	// Center/Radius describe a plateau footprint.
	Center geom.Point
	Radius float64

	// Rect describes a rect footprint.
	Rect geom.Rect

	// From/To/Width describe ramp and gradient axes. Width is the full
	// perpendicular width in cells.
	From, To geom.Point
	Width    float64

	// Shape is the footprint of feature commands, and of generalized
	// plateau (elevation area) commands.
	Shape geom.Shape
	// Blend is the elevation-area blend radius outside the shape.
	Blend float64
	// Feature is the resolved feature a feature command writes.
	Feature grid.Feature

	// Ease selects the gradient interpolation curve.
	Ease Easing
	// Clear makes a gradient shed blocking features already painted inside
	// its footprint. Corridor commands set it; cosmetic gradients do not.
	Clear bool

	// Thickness is the border frame width in cells.
	Thickness int
}

//-----------------------------------------------------------------------------
// Constructors
//-----------------------------------------------------------------------------

// Fill sets every cell to the given elevation.
func Fill(elevation uint8) Command {
	return Command{Op: OpFill, Elevation: elevation}
}

// Plateau sets elevation inside the disc at center with the given radius.
func Plateau(center geom.Point, radius float64, elevation uint8) Command {
	return Command{Op: OpPlateau, Center: center, Radius: radius, Elevation: elevation}
}

// ElevationArea is the generalized plateau: inside the shape the elevation
// is forced; within blend cells outside it, old and new elevation are
// linearly interpolated by normalized boundary distance.
func ElevationArea(shape geom.Shape, elevation uint8, blend float64) Command {
	return Command{Op: OpPlateau, Shape: shape, Elevation: elevation, Blend: blend}
}

// RectSet sets elevation inside the rectangle.
func RectSet(r geom.Rect, elevation uint8) Command {
	return Command{Op: OpRect, Rect: r, Elevation: elevation}
}

// Ramp paints a walkable ramp from one point to another with the given full
// width. Endpoint elevations are read from the grid at execution time, and
// the far endpoint auto-extends to honor the maximum climb per cell.
func Ramp(from, to geom.Point, width float64) Command {
	return Command{Op: OpRamp, From: from, To: to, Width: width}
}

// Gradient paints a cosmetic slope from fromElev at from to toElev at to,
// within the given full width, using the chosen easing. Cells are not marked
// as ramp.
func Gradient(from, to geom.Point, width float64, fromElev, toElev uint8, ease Easing) Command {
	return Command{
		Op: OpGradient, From: from, To: to, Width: width,
		FromElevation: fromElev, Elevation: toElev, Ease: ease,
	}
}

// Corridor paints a ground-clearing slope: elevation interpolates exactly
// like Gradient, and blocking features painted earlier inside the footprint
// (cliff rings, deep water, void) are shed so the corridor stays passable.
// Decorative features survive, and cells are not marked as ramp.
func Corridor(from, to geom.Point, width float64, fromElev, toElev uint8, ease Easing) Command {
	return Command{
		Op: OpGradient, From: from, To: to, Width: width,
		FromElevation: fromElev, Elevation: toElev, Ease: ease, Clear: true,
	}
}

// Water marks the shape with shallow or deep water.
func Water(shape geom.Shape, deep bool) Command {
	f := grid.FeatureWaterShallow
	if deep {
		f = grid.FeatureWaterDeep
	}
	return Command{Op: OpWater, Shape: shape, Feature: f}
}

// Forest marks the shape with light or dense forest.
func Forest(shape geom.Shape, dense bool) Command {
	f := grid.FeatureForestLight
	if dense {
		f = grid.FeatureForestDense
	}
	return Command{Op: OpForest, Shape: shape, Feature: f}
}

// Void marks the shape as void.
func Void(shape geom.Shape) Command {
	return Command{Op: OpVoid, Shape: shape, Feature: grid.FeatureVoid}
}

// Road marks the shape as road.
func Road(shape geom.Shape) Command {
	return Command{Op: OpRoad, Shape: shape, Feature: grid.FeatureRoad}
}

// Mud marks the shape as mud.
func Mud(shape geom.Shape) Command {
	return Command{Op: OpMud, Shape: shape, Feature: grid.FeatureMud}
}

// Unwalkable marks the shape as a manual cliff, which classification always
// treats as blocking.
func Unwalkable(shape geom.Shape) Command {
	return Command{Op: OpUnwalkable, Shape: shape, Feature: grid.FeatureCliff}
}

// Border paints a void frame of the given thickness around the grid edge.
func Border(thickness int) Command {
	return Command{Op: OpBorder, Thickness: thickness, Feature: grid.FeatureVoid}
}
