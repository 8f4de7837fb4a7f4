package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/grid"
	"github.com/velmara/gridforge/mapdata"
	"github.com/velmara/gridforge/mapdef"
	"github.com/velmara/gridforge/paint"
	"github.com/velmara/gridforge/placement"
)

// flatDef is a small skirmish definition on flat ground.
func flatDef(seed int64) *mapdef.Definition {
	return &mapdef.Definition{
		ID: "flat2", Name: "Flat Two", Width: 64, Height: 64,
		Biome: mapdef.BiomeGrass,
		Regions: []mapdef.Region{
			{ID: "main1", Role: conngraph.RoleMain, Pos: geom.Point{X: 14, Y: 14}, Radius: 12, OwnerSlot: 1, Resources: mapdef.TemplateStandard},
			{ID: "main2", Role: conngraph.RoleMain, Pos: geom.Point{X: 50, Y: 50}, Radius: 12, OwnerSlot: 2, Resources: mapdef.TemplateStandard},
			{ID: "gold1", Role: conngraph.RoleGold, Pos: geom.Point{X: 50, Y: 14}, Radius: 9, Resources: mapdef.TemplateGold},
			{ID: "tower1", Role: conngraph.RoleWatchtower, Pos: geom.Point{X: 32, Y: 32}, Radius: 6},
		},
		VegetationDensity: 8,
		DecorationDensity: 4,
		Options:           mapdef.Options{Seed: seed},
	}
}

func flatGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(64, 64, 120)
	require.NoError(t, err)
	paint.Classify(g)
	return g
}

func TestPlace_Anchors(t *testing.T) {
	g := flatGrid(t)
	s, err := placement.Place(g, flatDef(11), nil)
	require.NoError(t, err)

	require.Len(t, s.Spawns, 2)
	assert.Equal(t, "main1", s.Spawns[0].ID)
	assert.Equal(t, 1, s.Spawns[0].Slot)
	assert.Equal(t, geom.Point{X: 14, Y: 14}, s.Spawns[0].Pos)

	require.Len(t, s.Expansions, 1)
	assert.Equal(t, conngraph.RoleGold, s.Expansions[0].Role)

	require.Len(t, s.WatchTowers, 1)
	assert.Equal(t, "tower1", s.WatchTowers[0].ID)
}

func TestPlace_Deterministic(t *testing.T) {
	a := flatGrid(t)
	b := flatGrid(t)

	s1, err := placement.Place(a, flatDef(99), nil)
	require.NoError(t, err)
	s2, err := placement.Place(b, flatDef(99), nil)
	require.NoError(t, err)

	assert.Equal(t, s1, s2, "same seed must reproduce every object")
	assert.Equal(t, a.Cells, b.Cells, "variant stamping must reproduce")

	s3, err := placement.Place(flatGrid(t), flatDef(100), nil)
	require.NoError(t, err)
	assert.NotEqual(t, s1.Decorations, s3.Decorations, "seed must matter")
}

func TestPlace_RampClusters(t *testing.T) {
	g, err := grid.New(40, 20, 100)
	require.NoError(t, err)
	require.NoError(t, paint.Apply(g, []paint.Command{
		paint.RectSet(geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 15, Y: 19}}, 180),
		paint.Ramp(geom.Point{X: 12, Y: 10}, geom.Point{X: 24, Y: 10}, 4),
	}))
	paint.Classify(g)

	s, err := placement.Place(g, flatDef(5), nil)
	require.NoError(t, err)

	require.Len(t, s.Ramps, 1)
	r := s.Ramps[0]
	assert.Equal(t, "ramp_1", r.ID)
	assert.Less(t, r.LowElevation, r.HighElevation)
	assert.InDelta(t, 10, r.Center.Y, 1.0)
	assert.Greater(t, r.Length, r.Width)
}

func TestPlace_ResourceFields(t *testing.T) {
	g := flatGrid(t)
	def := flatDef(21)
	s, err := placement.Place(g, def, nil)
	require.NoError(t, err)

	require.Len(t, s.Resources, 3)
	byRegion := map[string]mapdata.ResourceField{}
	for _, f := range s.Resources {
		byRegion[f.RegionID] = f
	}

	std := byRegion["main1"]
	require.Len(t, std.Patches, 10) // 8 minerals + 2 gas
	minerals, gas := 0, 0
	for _, p := range std.Patches {
		switch p.Kind {
		case mapdata.ResourceMinerals:
			minerals++
			assert.Equal(t, 1500, p.Amount)
		case mapdata.ResourceGas:
			gas++
		}
		assert.InDelta(t, 14, p.Pos.X, 10)
		assert.InDelta(t, 14, p.Pos.Y, 10)
	}
	assert.Equal(t, 8, minerals)
	assert.Equal(t, 2, gas)

	gold := byRegion["gold1"]
	rich := 0
	for _, p := range gold.Patches {
		if p.Kind == mapdata.ResourceRichMinerals {
			rich++
		}
	}
	assert.Equal(t, 6, rich, "gold template lays rich minerals")
}

func TestPlace_DecorationsOnBuildableGround(t *testing.T) {
	g := flatGrid(t)
	def := flatDef(7)
	s, err := placement.Place(g, def, nil)
	require.NoError(t, err)

	require.NotEmpty(t, s.Decorations)
	for _, d := range s.Decorations {
		x, y := int(d.Pos.X), int(d.Pos.Y)
		require.True(t, g.InBounds(x, y))
		assert.True(t, g.Cells[g.Index(x, y)].Buildable(),
			"doodad %s at (%d,%d) must sit on buildable ground", d.Kind, x, y)
	}
}

func TestPlace_Rocks(t *testing.T) {
	g := flatGrid(t)
	rocks := []mapdef.Destructible{{Pos: geom.Point{X: 30, Y: 30}, Radius: 4}}
	s, err := placement.Place(g, flatDef(3), rocks)
	require.NoError(t, err)

	require.Len(t, s.Destructibles, 1)
	assert.Equal(t, "rocks_1", s.Destructibles[0].ID)
	assert.Equal(t, 500, s.Destructibles[0].Health)
}

func TestPlace_NilArgs(t *testing.T) {
	_, err := placement.Place(nil, flatDef(1), nil)
	assert.ErrorIs(t, err, placement.ErrNilGrid)
	g := flatGrid(t)
	_, err = placement.Place(g, nil, nil)
	assert.ErrorIs(t, err, placement.ErrNilDefinition)
}
