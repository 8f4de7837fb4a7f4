// Package mapdef schema types, enumerations and sentinel errors.
package mapdef

import (
	"errors"

	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
)

// Sentinel errors for structural definition validation.
var (
	// ErrBadDimensions indicates non-positive map width or height.
	ErrBadDimensions = errors.New("mapdef: width and height must be positive")
	// ErrBadBiome indicates a biome outside the six canonical biomes.
	ErrBadBiome = errors.New("mapdef: unknown biome")
	// ErrDuplicateRegion indicates two regions sharing an ID.
	ErrDuplicateRegion = errors.New("mapdef: duplicate region ID")
	// ErrUnknownRegion indicates a connection referencing a missing region.
	ErrUnknownRegion = errors.New("mapdef: connection references unknown region")
	// ErrBadRole indicates a region role outside the known set.
	ErrBadRole = errors.New("mapdef: unknown region role")
	// ErrBadConnectionKind indicates an unknown connection kind.
	ErrBadConnectionKind = errors.New("mapdef: unknown connection kind")
	// ErrBadTemplate indicates an unknown resource template.
	ErrBadTemplate = errors.New("mapdef: unknown resource template")
	// ErrBadFeature indicates a malformed terrain feature entry.
	ErrBadFeature = errors.New("mapdef: malformed terrain feature")
	// ErrBadShape indicates a shape spec that cannot be resolved.
	ErrBadShape = errors.New("mapdef: malformed shape spec")
	// ErrNotValidated is returned by Compile when validation was skipped
	// and the definition turns out structurally broken.
	ErrNotValidated = errors.New("mapdef: definition failed validation")
)

//-----------------------------------------------------------------------------
// Enumerations
//-----------------------------------------------------------------------------

// Biome names one of the six canonical visual themes. Anything else is a
// structural error: downstream asset sets only exist for these six.
type Biome string

const (
	BiomeGrass  Biome = "grass"
	BiomeDesert Biome = "desert"
	BiomeSnow   Biome = "snow"
	BiomeJungle Biome = "jungle"
	BiomeAsh    Biome = "ash"
	BiomeDusk   Biome = "dusk"
)

// Biomes lists the canonical biomes in stable order.
var Biomes = []Biome{BiomeGrass, BiomeDesert, BiomeSnow, BiomeJungle, BiomeAsh, BiomeDusk}

// Known reports whether the biome is canonical.
func (b Biome) Known() bool {
	for _, k := range Biomes {
		if b == k {
			return true
		}
	}
	return false
}

// ConnKind types a declared connection between two regions.
type ConnKind string

const (
	// ConnRamp paints a walkable elevation ramp.
	ConnRamp ConnKind = "ramp"
	// ConnGround flattens a walkable corridor at ground level.
	ConnGround ConnKind = "ground"
	// ConnBridge flattens a corridor and lays a road over it.
	ConnBridge ConnKind = "bridge"
	// ConnNarrow is a ground corridor clamped to choke width.
	ConnNarrow ConnKind = "narrow"
	// ConnDestructible is a ground corridor blocked by destructible rocks.
	ConnDestructible ConnKind = "destructible"
)

// Known reports whether the connection kind is recognized.
func (k ConnKind) Known() bool {
	switch k {
	case ConnRamp, ConnGround, ConnBridge, ConnNarrow, ConnDestructible:
		return true
	}
	return false
}

// ResourceTemplate keys a fixed mineral/gas layout.
type ResourceTemplate string

const (
	TemplateStandard    ResourceTemplate = "standard"
	TemplateRich        ResourceTemplate = "rich"
	TemplateGold        ResourceTemplate = "gold"
	TemplatePoor        ResourceTemplate = "poor"
	TemplateGasOnly     ResourceTemplate = "gas_only"
	TemplateMineralOnly ResourceTemplate = "mineral_only"
)

// ResourceLayout is the resolved mineral/gas composition of a template.
type ResourceLayout struct {
	Minerals int  `json:"minerals"`
	Gas      int  `json:"gas"`
	Rich     bool `json:"rich,omitempty"`
}

// Layout resolves the template to counts. Returns ErrBadTemplate for
// unknown keys; the empty template means "no resources" and is legal.
func (t ResourceTemplate) Layout() (ResourceLayout, error) {
	switch t {
	case "":
		return ResourceLayout{}, nil
	case TemplateStandard:
		return ResourceLayout{Minerals: 8, Gas: 2}, nil
	case TemplateRich:
		return ResourceLayout{Minerals: 8, Gas: 2, Rich: true}, nil
	case TemplateGold:
		return ResourceLayout{Minerals: 6, Gas: 2, Rich: true}, nil
	case TemplatePoor:
		return ResourceLayout{Minerals: 6, Gas: 1}, nil
	case TemplateGasOnly:
		return ResourceLayout{Gas: 2}, nil
	case TemplateMineralOnly:
		return ResourceLayout{Minerals: 8}, nil
	}
	return ResourceLayout{}, ErrBadTemplate
}

//-----------------------------------------------------------------------------
// Elevation tiers
//-----------------------------------------------------------------------------

// DefaultBaseElevation is the map floor when the definition leaves
// BaseElevation zero.
const DefaultBaseElevation uint8 = 120

// TierStep is the elevation distance between coarse tiers 0, 1 and 2.
// It deliberately exceeds pathcfg.CliffThreshold so tier edges always
// classify as cliffs unless a ramp covers them.
const TierStep uint8 = 40

// MaxTier bounds the coarse tier field.
const MaxTier = 2

// DefaultConnectionWidth is the corridor width when a connection omits it.
const DefaultConnectionWidth = 6.0

// NarrowWidth is the clamped corridor width of narrow connections.
const NarrowWidth = 2.0

// cliffRingThickness is the width of the manual cliff ring painted around
// elevated region perimeters.
const cliffRingThickness = 1.5

//-----------------------------------------------------------------------------
// Schema
//-----------------------------------------------------------------------------

// Region is a named strategic location with a circular footprint.
type Region struct {
	ID   string         `json:"id"`
	Role conngraph.Role `json:"role"`
	Pos  geom.Point     `json:"pos"`
	// Tier is the coarse elevation tier 0..2, used when Elevation is nil.
	Tier int `json:"tier,omitempty"`
	// Elevation is the fine-grained 0..255 override.
	Elevation *uint8  `json:"elevation,omitempty"`
	Radius    float64 `json:"radius"`
	// OwnerSlot is the owning player slot, 0 for neutral.
	OwnerSlot int `json:"ownerSlot,omitempty"`
	// Resources keys the resource template placed at this region.
	Resources ResourceTemplate `json:"resources,omitempty"`
}

// Connection declares intended walkability between two region IDs.
type Connection struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	Kind      ConnKind     `json:"kind"`
	Width     float64      `json:"width,omitempty"`
	Waypoints []geom.Point `json:"waypoints,omitempty"`
}

// FeatureKind tags a direct terrain-feature entry.
type FeatureKind string

const (
	FeatureElevationArea     FeatureKind = "elevation_area"
	FeatureElevationGradient FeatureKind = "elevation_gradient"
	FeatureWater             FeatureKind = "water"
	FeatureForest            FeatureKind = "forest"
	FeatureVoid              FeatureKind = "void"
	FeatureRoad              FeatureKind = "road"
	FeatureMud               FeatureKind = "mud"
	FeatureUnwalkable        FeatureKind = "unwalkable"
)

// TerrainFeature is one direct terrain-feature entry. Shape-based kinds
// read Shape; gradients read From/To/Width/elevations/Ease.
type TerrainFeature struct {
	Kind  FeatureKind `json:"kind"`
	Shape *ShapeSpec  `json:"shape,omitempty"`

	// Elevation area fields.
	Elevation uint8   `json:"elevation,omitempty"`
	Blend     float64 `json:"blend,omitempty"`

	// Elevation gradient fields.
	From          geom.Point `json:"from,omitempty"`
	To            geom.Point `json:"to,omitempty"`
	FromElevation uint8      `json:"fromElevation,omitempty"`
	ToElevation   uint8      `json:"toElevation,omitempty"`
	Width         float64    `json:"width,omitempty"`
	// Ease is "linear" (default) or "smooth".
	Ease string `json:"ease,omitempty"`

	// Deep selects deep water; Dense selects dense forest.
	Deep  bool `json:"deep,omitempty"`
	Dense bool `json:"dense,omitempty"`
}

// Options is the generation option bag.
type Options struct {
	// Seed drives every random draw. Zero selects a fixed default seed.
	Seed int64 `json:"seed"`
	// ValidateConnectivity runs the analyzer + validator after painting.
	ValidateConnectivity bool `json:"validateConnectivity"`
	// AutoFixConnectivity lets the fixer paint corrective ramps once.
	AutoFixConnectivity bool `json:"autoFixConnectivity"`
	// Debug attaches the derived graph and issues to the output.
	Debug bool `json:"debugMode"`
}

// Definition is the complete declarative map description.
type Definition struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Biome  Biome  `json:"biome"`

	// BaseElevation is the uniform floor; zero means DefaultBaseElevation.
	BaseElevation uint8 `json:"baseElevation,omitempty"`
	// Border is the void frame thickness; zero paints no frame.
	Border int `json:"border,omitempty"`

	Regions     []Region         `json:"regions"`
	Connections []Connection     `json:"connections"`
	Features    []TerrainFeature `json:"features,omitempty"`

	// VegetationDensity and DecorationDensity steer seeded doodad counts,
	// per thousand buildable cells.
	VegetationDensity float64 `json:"vegetationDensity,omitempty"`
	DecorationDensity float64 `json:"decorationDensity,omitempty"`

	Options Options `json:"options"`
}

// Floor returns the effective base elevation.
func (d *Definition) Floor() uint8 {
	if d.BaseElevation == 0 {
		return DefaultBaseElevation
	}
	return d.BaseElevation
}

// PlayerCount returns the number of main regions.
func (d *Definition) PlayerCount() int {
	n := 0
	for _, r := range d.Regions {
		if r.Role == conngraph.RoleMain {
			n++
		}
	}
	return n
}

// RegionElevation resolves a region's effective elevation: the fine-grained
// override when present, else floor + tier·TierStep (saturating at 255).
func (d *Definition) RegionElevation(r Region) uint8 {
	if r.Elevation != nil {
		return *r.Elevation
	}
	e := int(d.Floor()) + r.Tier*int(TierStep)
	if e > 255 {
		e = 255
	}
	return uint8(e)
}
