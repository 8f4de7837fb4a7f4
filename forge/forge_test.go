package forge_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/forge"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/mapdef"
	"github.com/velmara/gridforge/validate"
)

// brokenTwoPlayer declares mains wired to the center but leaves both
// naturals stranded on their own tier-1 plateaus.
func brokenTwoPlayer(opts mapdef.Options) *mapdef.Definition {
	return &mapdef.Definition{
		ID: "broken2", Name: "Stranded Naturals", Width: 128, Height: 128,
		Biome: mapdef.BiomeGrass,
		Regions: []mapdef.Region{
			{ID: "main1", Role: conngraph.RoleMain, Pos: geom.Point{X: 24, Y: 24}, Tier: 2, Radius: 14, OwnerSlot: 1, Resources: mapdef.TemplateStandard},
			{ID: "main2", Role: conngraph.RoleMain, Pos: geom.Point{X: 104, Y: 104}, Tier: 2, Radius: 14, OwnerSlot: 2, Resources: mapdef.TemplateStandard},
			{ID: "nat1", Role: conngraph.RoleNatural, Pos: geom.Point{X: 56, Y: 24}, Tier: 1, Radius: 11, Resources: mapdef.TemplateStandard},
			{ID: "nat2", Role: conngraph.RoleNatural, Pos: geom.Point{X: 72, Y: 104}, Tier: 1, Radius: 11, Resources: mapdef.TemplateStandard},
			{ID: "center", Role: conngraph.RoleCenter, Pos: geom.Point{X: 64, Y: 64}, Tier: 0, Radius: 12},
		},
		Connections: []mapdef.Connection{
			{From: "main1", To: "center", Kind: mapdef.ConnRamp, Width: 6},
			{From: "main2", To: "center", Kind: mapdef.ConnRamp, Width: 6},
		},
		Options: opts,
	}
}

func TestGenerate_ReportsStrandedNaturals(t *testing.T) {
	def := brokenTwoPlayer(mapdef.Options{Seed: 7, ValidateConnectivity: true})

	md, res, err := forge.Generate(def)
	require.NoError(t, err)
	require.NotNil(t, md, "generation always returns a map")
	require.NotNil(t, res)
	require.False(t, res.Valid)

	perMain := map[string]int{}
	for _, is := range res.Errors() {
		require.Equal(t, validate.KindNaturalUnreachable, is.Kind,
			"the only errors must be stranded naturals")
		perMain[is.AffectedNodes[0]]++
	}
	assert.Equal(t, map[string]int{"main1": 1, "main2": 1}, perMain)

	// Two declared main→center ramps survive as ramp objects.
	assert.Len(t, md.Ramps, 2)
}

func TestGenerate_AutoFixRepairsNaturals(t *testing.T) {
	def := brokenTwoPlayer(mapdef.Options{
		Seed: 7, ValidateConnectivity: true, AutoFixConnectivity: true,
	})

	md, res, err := forge.Generate(def)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, res.Valid, "one fix pass must clear every error")
	assert.Empty(t, res.Errors())
	assert.Len(t, md.Ramps, 4, "two declared plus two corrective ramps")
}

// TestGenerate_GroundCorridorCrossesCliffRings joins two tier-1 mains with a
// plain ground corridor and checks the corridor punches through the cliff
// rings both plateaus paint around themselves.
func TestGenerate_GroundCorridorCrossesCliffRings(t *testing.T) {
	def := &mapdef.Definition{
		ID: "ground2", Name: "Twin Mesas", Width: 96, Height: 48,
		Biome: mapdef.BiomeDesert,
		Regions: []mapdef.Region{
			{ID: "m1", Role: conngraph.RoleMain, Pos: geom.Point{X: 24, Y: 24}, Tier: 1, Radius: 10, OwnerSlot: 1},
			{ID: "m2", Role: conngraph.RoleMain, Pos: geom.Point{X: 72, Y: 24}, Tier: 1, Radius: 10, OwnerSlot: 2},
		},
		Connections: []mapdef.Connection{
			{From: "m1", To: "m2", Kind: mapdef.ConnGround, Width: 6},
		},
		Options: mapdef.Options{Seed: 1, ValidateConnectivity: true, Debug: true},
	}

	md, res, err := forge.Generate(def)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Valid, "a declared ground connection must analyze as passable: %+v", res.Issues)
	assert.Empty(t, res.Errors())

	require.NotNil(t, md.Graph)
	require.Len(t, md.Graph.Edges, 1)
	assert.Equal(t, conngraph.EdgeGround, md.Graph.Edges[0].Kind)
	assert.Empty(t, md.Ramps, "a ground corridor places no ramp objects")
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := mapdef.Options{Seed: 42, ValidateConnectivity: true, AutoFixConnectivity: true}

	a, _, err := forge.Generate(brokenTwoPlayer(opts))
	require.NoError(t, err)
	b, _, err := forge.Generate(brokenTwoPlayer(opts))
	require.NoError(t, err)

	aj, err := json.Marshal(a)
	require.NoError(t, err)
	bj, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, aj, bj, "same definition and seed must be byte-identical")

	c, _, err := forge.Generate(brokenTwoPlayer(mapdef.Options{
		Seed: 43, ValidateConnectivity: true, AutoFixConnectivity: true,
	}))
	require.NoError(t, err)
	cj, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotEqual(t, aj, cj, "a different seed must change the map")
}

func TestGenerate_DebugAttachesGraph(t *testing.T) {
	def := brokenTwoPlayer(mapdef.Options{Seed: 7, ValidateConnectivity: true, Debug: true})

	md, res, err := forge.Generate(def)
	require.NoError(t, err)
	require.NotNil(t, md.Graph)
	assert.Len(t, md.Graph.Nodes, 5)
	assert.NotEmpty(t, md.Issues)
	assert.Equal(t, res.Issues, md.Issues)
}

func TestGenerate_RejectsBadDefinition(t *testing.T) {
	def := brokenTwoPlayer(mapdef.Options{Seed: 1})
	def.Connections[0].To = "nowhere"

	_, _, err := forge.Generate(def)
	require.Error(t, err)
	assert.ErrorIs(t, err, mapdef.ErrUnknownRegion)
}

func TestGenerate_StableID(t *testing.T) {
	opts := mapdef.Options{Seed: 9}
	a, _, err := forge.Generate(brokenTwoPlayer(opts))
	require.NoError(t, err)
	b, _, err := forge.Generate(brokenTwoPlayer(opts))
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, 2, a.PlayerCount)
}
