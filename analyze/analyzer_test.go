package analyze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmara/gridforge/analyze"
	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/grid"
	"github.com/velmara/gridforge/paint"
)

// splitWorld builds a 60×20 grid with a low west half, a high east half and
// (optionally) a ramp bridging the step at y=10.
func splitWorld(t *testing.T, withRamp bool) *grid.Grid {
	t.Helper()
	g, err := grid.New(60, 20, 0)
	require.NoError(t, err)
	cmds := []paint.Command{
		paint.RectSet(geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 29, Y: 19}}, 100),
		paint.RectSet(geom.Rect{Min: geom.Point{X: 30, Y: 0}, Max: geom.Point{X: 59, Y: 19}}, 180),
	}
	if withRamp {
		cmds = append(cmds, paint.Ramp(geom.Point{X: 22, Y: 10}, geom.Point{X: 38, Y: 10}, 4))
	}
	require.NoError(t, paint.Apply(g, cmds))
	paint.Classify(g)
	return g
}

func westEastNodes() []conngraph.Node {
	return []conngraph.Node{
		{ID: "west", Role: conngraph.RoleMain, Pos: geom.Point{X: 8, Y: 10}, Elevation: 100, OwnerSlot: 1},
		{ID: "east", Role: conngraph.RoleMain, Pos: geom.Point{X: 52, Y: 10}, Elevation: 180, OwnerSlot: 2},
	}
}

// TestAnalyze_NilGrid rejects a missing grid.
func TestAnalyze_NilGrid(t *testing.T) {
	if _, err := analyze.Analyze(nil, nil); !errors.Is(err, analyze.ErrNilGrid) {
		t.Fatalf("want ErrNilGrid, got %v", err)
	}
}

// TestAnalyze_BlockedAcrossCliff: without a ramp the elevation step blocks
// the pair and the islands split.
func TestAnalyze_BlockedAcrossCliff(t *testing.T) {
	g := splitWorld(t, false)
	graph, err := analyze.Analyze(g, westEastNodes())
	require.NoError(t, err)

	e := graph.Edge("west", "east")
	require.NotNil(t, e)
	assert.Equal(t, conngraph.EdgeBlocked, e.Kind)
	assert.Equal(t, uint8(80), e.ElevationDelta)
	assert.Len(t, graph.Islands(), 2)
	assert.False(t, graph.MainsConnected())
}

// TestAnalyze_RampConnects: the same world with a ramp yields a ramp edge
// with a usable sample path.
func TestAnalyze_RampConnects(t *testing.T) {
	g := splitWorld(t, true)
	graph, err := analyze.Analyze(g, westEastNodes())
	require.NoError(t, err)

	e := graph.Edge("west", "east")
	require.NotNil(t, e)
	assert.Equal(t, conngraph.EdgeRamp, e.Kind, "path crosses ramp cells")
	assert.Greater(t, e.PathLen, 0)
	assert.NotEmpty(t, e.SamplePath)
	assert.True(t, graph.MainsConnected())
	assert.Len(t, graph.Islands(), 1)
}

// TestAnalyze_GroundPair: two nodes on the same flat half connect as ground.
func TestAnalyze_GroundPair(t *testing.T) {
	g := splitWorld(t, false)
	nodes := []conngraph.Node{
		{ID: "a", Role: conngraph.RoleMain, Pos: geom.Point{X: 5, Y: 5}, Elevation: 100},
		{ID: "b", Role: conngraph.RoleNatural, Pos: geom.Point{X: 24, Y: 16}, Elevation: 100},
	}
	graph, err := analyze.Analyze(g, nodes)
	require.NoError(t, err)
	e := graph.Edge("a", "b")
	require.NotNil(t, e)
	assert.Equal(t, conngraph.EdgeGround, e.Kind)
}

// TestAnalyze_FloodContainment: every reachable cell is in bounds and
// walkable.
func TestAnalyze_FloodContainment(t *testing.T) {
	g := splitWorld(t, true)
	graph, err := analyze.Analyze(g, westEastNodes())
	require.NoError(t, err)

	for _, n := range graph.Nodes() {
		n.Reachable.Each(func(idx int) {
			if idx < 0 || idx >= len(g.Cells) {
				t.Fatalf("node %s: reachable index %d out of bounds", n.ID, idx)
			}
			if !g.Cells[idx].Walkable() {
				x, y := g.Coord(idx)
				t.Fatalf("node %s: reachable cell (%d,%d) is not walkable", n.ID, x, y)
			}
		})
		assert.Greater(t, n.Reachable.Size(), 0, "node %s flooded nothing", n.ID)
	}
}

// TestAnalyze_SeedSearch places a node on an unwalkable cliff cell and
// expects the expanding ring search to find a walkable seed nearby.
func TestAnalyze_SeedSearch(t *testing.T) {
	g := splitWorld(t, false)
	// Cells on the step boundary at x=29/30 classify as cliff.
	nodes := []conngraph.Node{
		{ID: "edge", Role: conngraph.RoleWatchtower, Pos: geom.Point{X: 30, Y: 10}, Elevation: 180},
		{ID: "east", Role: conngraph.RoleMain, Pos: geom.Point{X: 52, Y: 10}, Elevation: 180},
	}
	require.False(t, g.Cell(30, 10).Walkable(), "scenario sanity: node sits on a cliff")

	graph, err := analyze.Analyze(g, nodes)
	require.NoError(t, err)
	edgeNode, err := graph.Node("edge")
	require.NoError(t, err)
	assert.Greater(t, edgeNode.Reachable.Size(), 0, "ring search must find a seed")
}

// TestAnalyze_DuplicateNodeIDs surfaces the structural error.
func TestAnalyze_DuplicateNodeIDs(t *testing.T) {
	g := splitWorld(t, false)
	nodes := []conngraph.Node{
		{ID: "dup", Pos: geom.Point{X: 5, Y: 5}},
		{ID: "dup", Pos: geom.Point{X: 8, Y: 8}},
	}
	if _, err := analyze.Analyze(g, nodes); !errors.Is(err, conngraph.ErrDuplicateNode) {
		t.Fatalf("want ErrDuplicateNode, got %v", err)
	}
}
