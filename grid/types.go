// Package grid core types, enumerations and sentinel errors.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a requested grid with zero width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a cell access outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)

// Class is the walkability classification of a cell, assigned once after all
// paint commands have run.
type Class uint8

const (
	// ClassGround is plain walkable, buildable terrain.
	ClassGround Class = iota
	// ClassRamp is walkable interpolated terrain between elevation tiers,
	// exempt from cliff detection.
	ClassRamp
	// ClassUnwalkable blocks movement: cliffs, deep water, void.
	ClassUnwalkable
	// ClassUnbuildable is walkable but blocked for construction
	// (light forest, mud, shallow water).
	ClassUnbuildable
)

// String returns the lowercase name of the class.
func (c Class) String() string {
	switch c {
	case ClassGround:
		return "ground"
	case ClassRamp:
		return "ramp"
	case ClassUnwalkable:
		return "unwalkable"
	case ClassUnbuildable:
		return "unbuildable"
	}
	return "unknown"
}

// Feature is an optional decorative or blocking terrain feature on a cell.
type Feature uint8

const (
	// FeatureNone marks a bare cell.
	FeatureNone Feature = iota
	// FeatureWaterShallow is crossable water (unbuildable).
	FeatureWaterShallow
	// FeatureWaterDeep is impassable water.
	FeatureWaterDeep
	// FeatureForestLight is sparse trees (walkable, unbuildable).
	FeatureForestLight
	// FeatureForestDense is thick trees (walkable, unbuildable).
	FeatureForestDense
	// FeatureCliff is an elevation discontinuity detected at classification.
	FeatureCliff
	// FeatureVoid is out-of-map nothingness (always unwalkable).
	FeatureVoid
	// FeatureRoad is a decorative road; walkable and buildable.
	FeatureRoad
	// FeatureMud is slow ground (walkable, unbuildable).
	FeatureMud
)

// String returns the snake_case name of the feature, matching the JSON form.
func (f Feature) String() string {
	switch f {
	case FeatureNone:
		return "none"
	case FeatureWaterShallow:
		return "water_shallow"
	case FeatureWaterDeep:
		return "water_deep"
	case FeatureForestLight:
		return "forest_light"
	case FeatureForestDense:
		return "forest_dense"
	case FeatureCliff:
		return "cliff"
	case FeatureVoid:
		return "void"
	case FeatureRoad:
		return "road"
	case FeatureMud:
		return "mud"
	}
	return "unknown"
}

// Blocking reports whether the feature makes a cell unwalkable on its own.
func (f Feature) Blocking() bool {
	return f == FeatureVoid || f == FeatureCliff || f == FeatureWaterDeep
}

// Decorative reports whether the feature demotes a ground cell to
// unbuildable. Roads stay fully buildable.
func (f Feature) Decorative() bool {
	switch f {
	case FeatureWaterShallow, FeatureForestLight, FeatureForestDense, FeatureMud:
		return true
	}
	return false
}

// Cell is one terrain grid cell. Ramp is tracked separately from Class so
// paint commands can mark ramps before classification runs.
type Cell struct {
	// Class is the walkability classification (valid after Classify).
	Class Class `json:"class"`
	// Elevation in absolute units 0..255.
	Elevation uint8 `json:"elevation"`
	// Feature is the optional terrain feature on this cell.
	Feature Feature `json:"feature"`
	// Ramp marks cells painted by a ramp command. Features never overwrite
	// ramp cells, and cliff detection ignores them.
	Ramp bool `json:"ramp,omitempty"`
	// Variant is a biome texture variant chosen by seeded decoration.
	Variant uint8 `json:"variant,omitempty"`
}

// Walkable reports whether a classified cell permits movement.
func (c Cell) Walkable() bool {
	return c.Class == ClassGround || c.Class == ClassRamp || c.Class == ClassUnbuildable
}

// Buildable reports whether a classified cell permits construction.
func (c Cell) Buildable() bool {
	return c.Class == ClassGround
}
