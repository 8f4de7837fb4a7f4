package mapdef_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/mapdef"
	"github.com/velmara/gridforge/paint"
)

// twoPlayerDef is the canonical small skirmish definition used across the
// repository's tests: two tier-2 mains, two tier-1 naturals, a center, with
// ramp connections main→natural and ground connections natural→center.
func twoPlayerDef() *mapdef.Definition {
	return &mapdef.Definition{
		ID: "skirmish2", Name: "Skirmish Valley",
		Width: 128, Height: 128, Biome: mapdef.BiomeGrass,
		Border: 2,
		Regions: []mapdef.Region{
			{ID: "main1", Role: conngraph.RoleMain, Pos: geom.Point{X: 24, Y: 24}, Tier: 2, Radius: 14, OwnerSlot: 1, Resources: mapdef.TemplateStandard},
			{ID: "main2", Role: conngraph.RoleMain, Pos: geom.Point{X: 104, Y: 104}, Tier: 2, Radius: 14, OwnerSlot: 2, Resources: mapdef.TemplateStandard},
			{ID: "nat1", Role: conngraph.RoleNatural, Pos: geom.Point{X: 48, Y: 40}, Tier: 1, Radius: 11, OwnerSlot: 1, Resources: mapdef.TemplateStandard},
			{ID: "nat2", Role: conngraph.RoleNatural, Pos: geom.Point{X: 80, Y: 88}, Tier: 1, Radius: 11, OwnerSlot: 2, Resources: mapdef.TemplateStandard},
			{ID: "center", Role: conngraph.RoleCenter, Pos: geom.Point{X: 64, Y: 64}, Tier: 0, Radius: 12},
		},
		Connections: []mapdef.Connection{
			{From: "main1", To: "nat1", Kind: mapdef.ConnRamp, Width: 8},
			{From: "main2", To: "nat2", Kind: mapdef.ConnRamp, Width: 8},
			{From: "nat1", To: "center", Kind: mapdef.ConnRamp, Width: 8},
			{From: "nat2", To: "center", Kind: mapdef.ConnRamp, Width: 8},
		},
		Options: mapdef.Options{Seed: 7, ValidateConnectivity: true},
	}
}

// TestValidate_OK accepts the canonical definition.
func TestValidate_OK(t *testing.T) {
	require.NoError(t, mapdef.Validate(twoPlayerDef()))
}

// TestValidate_Structural exercises each structural defect class and checks
// that one call reports all of them.
func TestValidate_Structural(t *testing.T) {
	d := twoPlayerDef()
	d.Biome = "lava"
	d.Regions = append(d.Regions, mapdef.Region{ID: "main1", Role: conngraph.RoleMain})            // duplicate
	d.Regions = append(d.Regions, mapdef.Region{ID: "weird", Role: "fortress"})                    // bad role
	d.Regions = append(d.Regions, mapdef.Region{ID: "res", Role: conngraph.RoleGold, Resources: "mega"}) // bad template
	d.Connections = append(d.Connections, mapdef.Connection{From: "ghost", To: "main1", Kind: "tunnel"})
	d.Features = append(d.Features, mapdef.TerrainFeature{Kind: mapdef.FeatureWater})

	err := mapdef.Validate(d)
	require.Error(t, err)
	for _, want := range []error{
		mapdef.ErrBadBiome, mapdef.ErrDuplicateRegion, mapdef.ErrBadRole,
		mapdef.ErrBadTemplate, mapdef.ErrUnknownRegion,
		mapdef.ErrBadConnectionKind, mapdef.ErrBadFeature,
	} {
		assert.ErrorIs(t, err, want)
	}
}

// TestResourceTemplates resolves every canonical template.
func TestResourceTemplates(t *testing.T) {
	cases := []struct {
		tmpl     mapdef.ResourceTemplate
		minerals int
		gas      int
		rich     bool
	}{
		{mapdef.TemplateStandard, 8, 2, false},
		{mapdef.TemplateRich, 8, 2, true},
		{mapdef.TemplateGold, 6, 2, true},
		{mapdef.TemplatePoor, 6, 1, false},
		{mapdef.TemplateGasOnly, 0, 2, false},
		{mapdef.TemplateMineralOnly, 8, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		layout, err := tc.tmpl.Layout()
		require.NoError(t, err, "template %q", tc.tmpl)
		assert.Equal(t, tc.minerals, layout.Minerals, "template %q minerals", tc.tmpl)
		assert.Equal(t, tc.gas, layout.Gas, "template %q gas", tc.tmpl)
		assert.Equal(t, tc.rich, layout.Rich, "template %q rich", tc.tmpl)
	}
	if _, err := mapdef.ResourceTemplate("mega").Layout(); !errors.Is(err, mapdef.ErrBadTemplate) {
		t.Errorf("unknown template: want ErrBadTemplate, got %v", err)
	}
}

// TestRegionElevation covers tiers, the fine-grained override and saturation.
func TestRegionElevation(t *testing.T) {
	d := twoPlayerDef()
	assert.Equal(t, uint8(120), d.RegionElevation(mapdef.Region{Tier: 0}))
	assert.Equal(t, uint8(160), d.RegionElevation(mapdef.Region{Tier: 1}))
	assert.Equal(t, uint8(200), d.RegionElevation(mapdef.Region{Tier: 2}))

	fine := uint8(137)
	assert.Equal(t, fine, d.RegionElevation(mapdef.Region{Tier: 2, Elevation: &fine}))

	d.BaseElevation = 240
	assert.Equal(t, uint8(255), d.RegionElevation(mapdef.Region{Tier: 2}), "tier math saturates at 255")
}

// TestShapeSpec_Table resolves each shape type and rejects degenerates.
func TestShapeSpec_Table(t *testing.T) {
	ok := []mapdef.ShapeSpec{
		{Type: "circle", Radius: 3},
		{Type: "rect", Min: geom.Point{}, Max: geom.Point{X: 4, Y: 4}},
		{Type: "ellipse", RadiusX: 3, RadiusY: 2},
		{Type: "polygon", Vertices: []geom.Point{{}, {X: 4}, {X: 4, Y: 4}}},
		{Type: "line", A: geom.Point{}, B: geom.Point{X: 9}, HalfWidth: 1},
		{Type: "path", Waypoints: []geom.Point{{}, {X: 5}, {X: 5, Y: 5}}, HalfWidth: 1},
	}
	for _, s := range ok {
		if _, err := s.Shape(); err != nil {
			t.Errorf("ShapeSpec %q: unexpected error %v", s.Type, err)
		}
	}
	bad := []mapdef.ShapeSpec{
		{Type: "circle"},
		{Type: "polygon", Vertices: []geom.Point{{}, {X: 1}}},
		{Type: "blob"},
		{Type: "path", Waypoints: []geom.Point{{}}, HalfWidth: 1},
	}
	for _, s := range bad {
		if _, err := s.Shape(); !errors.Is(err, mapdef.ErrBadShape) {
			t.Errorf("ShapeSpec %q: want ErrBadShape, got %v", s.Type, err)
		}
	}
}

// TestDefinitionJSONRoundTrip checks the schema is fully JSON-serializable.
func TestDefinitionJSONRoundTrip(t *testing.T) {
	d := twoPlayerDef()
	d.Features = []mapdef.TerrainFeature{
		{Kind: mapdef.FeatureWater, Deep: true, Shape: &mapdef.ShapeSpec{Type: "circle", Center: geom.Point{X: 64, Y: 20}, Radius: 6}},
		{Kind: mapdef.FeatureElevationGradient, From: geom.Point{X: 10, Y: 64}, To: geom.Point{X: 40, Y: 64}, FromElevation: 120, ToElevation: 150, Width: 10, Ease: "smooth"},
	}
	data, err := json.Marshal(d)
	require.NoError(t, err)

	var back mapdef.Definition
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *d, back)
}

// TestCompile_CommandShape checks the fixed lowering order and per-kind
// command choices.
func TestCompile_CommandShape(t *testing.T) {
	d := twoPlayerDef()
	d.Connections = append(d.Connections,
		mapdef.Connection{From: "nat1", To: "nat2", Kind: mapdef.ConnDestructible, Width: 6},
		mapdef.Connection{From: "main1", To: "center", Kind: mapdef.ConnBridge, Width: 5},
		mapdef.Connection{From: "main2", To: "center", Kind: mapdef.ConnNarrow},
	)
	plan, err := mapdef.Compile(d)
	require.NoError(t, err)

	require.NotEmpty(t, plan.Commands)
	assert.Equal(t, paint.OpFill, plan.Commands[0].Op, "fill comes first")
	assert.Equal(t, paint.OpBorder, plan.Commands[1].Op, "border frames early")

	counts := map[paint.Op]int{}
	for _, c := range plan.Commands {
		counts[c.Op]++
	}
	// Five region plateaus; the center sits at floor level, so only the
	// four elevated regions get a cliff ring.
	assert.Equal(t, 5, counts[paint.OpPlateau])
	assert.Equal(t, 4, counts[paint.OpUnwalkable], "cliff rings only on elevated regions")
	assert.Equal(t, 4, counts[paint.OpRamp], "one ramp per ramp connection")
	assert.GreaterOrEqual(t, counts[paint.OpGradient], 3, "ground-clearing corridors")
	assert.Equal(t, 1, counts[paint.OpRoad], "bridge lays a road")

	require.Len(t, plan.Destructibles, 1)
	assert.InDelta(t, 4.0, plan.Destructibles[0].Radius, 0.001)

	require.Len(t, plan.Nodes, 5)
	assert.Equal(t, "center", plan.Nodes[4].ID)
	assert.Equal(t, uint8(200), plan.Nodes[0].Elevation, "tier-2 main at 200")
}

// TestCompile_CorridorsClearBlocking checks non-ramp connections lower to
// clearing corridors while direct gradient features stay cosmetic.
func TestCompile_CorridorsClearBlocking(t *testing.T) {
	d := twoPlayerDef()
	d.Connections = []mapdef.Connection{
		{From: "nat1", To: "center", Kind: mapdef.ConnGround, Width: 6},
	}
	d.Features = []mapdef.TerrainFeature{
		{Kind: mapdef.FeatureElevationGradient, From: geom.Point{X: 10, Y: 64}, To: geom.Point{X: 40, Y: 64}, FromElevation: 120, ToElevation: 150, Width: 10},
	}
	plan, err := mapdef.Compile(d)
	require.NoError(t, err)

	var corridors, cosmetic int
	for _, c := range plan.Commands {
		if c.Op != paint.OpGradient {
			continue
		}
		if c.Clear {
			corridors++
		} else {
			cosmetic++
		}
	}
	assert.Equal(t, 1, corridors, "the ground connection lowers to a clearing corridor")
	assert.Equal(t, 1, cosmetic, "the direct gradient feature stays cosmetic")
}

// TestCompile_RejectsBroken refuses to lower a structurally bad definition.
func TestCompile_RejectsBroken(t *testing.T) {
	d := twoPlayerDef()
	d.Connections[0].From = "ghost"
	_, err := mapdef.Compile(d)
	require.ErrorIs(t, err, mapdef.ErrNotValidated)
	require.ErrorIs(t, err, mapdef.ErrUnknownRegion)
}
