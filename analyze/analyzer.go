// Package analyze - constrained flood-fill over the classified grid.
package analyze

import (
	"errors"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/grid"
	"github.com/velmara/gridforge/pathcfg"
)

// ErrNilGrid indicates Analyze was invoked without a grid.
var ErrNilGrid = errors.New("analyze: grid is nil")

// seedSearchRadius bounds the expanding ring search for a walkable seed
// when a node's own cell is not walkable. Empirical placement-drift
// tolerance; deliberately not derived from pathcfg.
const seedSearchRadius = 10

// pairTolerance bounds the ring search around a target node's cell when
// resolving pair reachability. Empirical, see seedSearchRadius.
const pairTolerance = 5

// samplePathStride thins recorded paths for the debug export: every Nth
// cell plus the endpoint.
const samplePathStride = 8

// flood holds one node's BFS result: the reachable cell set and parent
// links for path reconstruction (-1 = unreached).
type flood struct {
	seed    int
	cells   mapset.Set[int]
	parents []int32
}

// Analyze floods from every node and returns the fully populated
// connectivity graph: one node entry per input node (with its reachable
// set), one edge entry per unordered pair.
//
// Returns ErrNilGrid, or a conngraph structural error for duplicate or
// empty node IDs.
func Analyze(g *grid.Grid, nodes []conngraph.Node) (*conngraph.Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	graph := conngraph.NewGraph()

	floods := make(map[string]*flood, len(nodes))
	for _, n := range nodes {
		f := floodFrom(g, n)
		n.Reachable = f.cells
		if err := graph.AddNode(n); err != nil {
			return nil, err
		}
		floods[n.ID] = f
	}

	// One derived edge per unordered pair, in input order.
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			edge := classifyPair(g, floods, nodes[i], nodes[j])
			if err := graph.AddEdge(edge); err != nil {
				return nil, err
			}
		}
	}
	return graph, nil
}

// nodeCell clamps a node's position to its containing cell.
func nodeCell(g *grid.Grid, n conngraph.Node) (int, int) {
	x := int(math.Round(n.Pos.X))
	y := int(math.Round(n.Pos.Y))
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
	return x, y
}

// findSeed returns the flood seed for a node: its own cell when walkable,
// else the first walkable cell on expanding rings up to seedSearchRadius.
// Returns -1 when no walkable cell is near.
func findSeed(g *grid.Grid, n conngraph.Node) int {
	cx, cy := nodeCell(g, n)
	if g.Cell(cx, cy).Walkable() {
		return g.Index(cx, cy)
	}
	for r := 1; r <= seedSearchRadius; r++ {
		idx := ringScan(g, cx, cy, r, func(idx int) bool { return g.Cells[idx].Walkable() })
		if idx >= 0 {
			return idx
		}
	}
	return -1
}

// stepAllowed is the flood constraint: the destination must be walkable,
// and the move either crosses a ramp cell or stays within the walkable
// climb.
func stepAllowed(from, to *grid.Cell) bool {
	if !to.Walkable() {
		return false
	}
	if from.Ramp || to.Ramp {
		return true
	}
	return pathcfg.ClimbWalkable(from.Elevation, to.Elevation)
}

// floodFrom runs the constrained 8-directional BFS from a node's seed.
// The queue is an index-cursor slice: O(1) amortized dequeue.
// Complexity: O(W×H).
func floodFrom(g *grid.Grid, n conngraph.Node) *flood {
	f := &flood{
		seed:    -1,
		cells:   mapset.New[int](),
		parents: make([]int32, len(g.Cells)),
	}
	for i := range f.parents {
		f.parents[i] = -1
	}
	seed := findSeed(g, n)
	if seed < 0 {
		return f
	}
	f.seed = seed
	f.cells.Put(seed)
	f.parents[seed] = int32(seed) // root points at itself

	offsets := grid.NeighborOffsets(grid.Conn8)
	queue := []int{seed}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		cx, cy := g.Coord(cur)
		from := &g.Cells[cur]
		for _, d := range offsets {
			nx, ny := cx+d[0], cy+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := g.Index(nx, ny)
			if f.parents[ni] >= 0 {
				continue
			}
			if !stepAllowed(from, &g.Cells[ni]) {
				continue
			}
			f.parents[ni] = int32(cur)
			f.cells.Put(ni)
			queue = append(queue, ni)
		}
	}
	return f
}

// reachTarget finds the cell of the target node (or a nearby cell within
// pairTolerance rings) inside the source flood's reachable set. Returns -1
// when nothing matches.
func reachTarget(g *grid.Grid, src *flood, target conngraph.Node) int {
	tx, ty := nodeCell(g, target)
	if idx := g.Index(tx, ty); src.cells.Has(idx) {
		return idx
	}
	for r := 1; r <= pairTolerance; r++ {
		if idx := ringScan(g, tx, ty, r, func(idx int) bool { return src.cells.Has(idx) }); idx >= 0 {
			return idx
		}
	}
	return -1
}

// ringScan walks the square ring of the given radius around (cx, cy) in a
// fixed clockwise order and returns the first in-bounds cell index matching
// the predicate, or -1. The fixed order keeps seed and target selection
// deterministic.
func ringScan(g *grid.Grid, cx, cy, r int, match func(int) bool) int {
	check := func(x, y int) int {
		if g.InBounds(x, y) && match(g.Index(x, y)) {
			return g.Index(x, y)
		}
		return -1
	}
	for x := cx - r; x <= cx+r; x++ {
		if idx := check(x, cy-r); idx >= 0 {
			return idx
		}
	}
	for y := cy - r + 1; y <= cy+r-1; y++ {
		if idx := check(cx+r, y); idx >= 0 {
			return idx
		}
	}
	for x := cx + r; x >= cx-r; x-- {
		if idx := check(x, cy+r); idx >= 0 {
			return idx
		}
	}
	for y := cy + r - 1; y >= cy-r+1; y-- {
		if idx := check(cx-r, y); idx >= 0 {
			return idx
		}
	}
	return -1
}

// classifyPair resolves one unordered node pair into a derived edge.
func classifyPair(g *grid.Grid, floods map[string]*flood, a, b conngraph.Node) conngraph.Edge {
	edge := conngraph.Edge{
		From:           a.ID,
		To:             b.ID,
		Kind:           conngraph.EdgeBlocked,
		Distance:       a.Pos.Dist(b.Pos),
		ElevationDelta: elevDelta(a.Elevation, b.Elevation),
	}
	src := floods[a.ID]
	if src.seed < 0 {
		return edge
	}
	target := reachTarget(g, src, b)
	if target < 0 {
		return edge
	}

	path := rebuildCellPath(src, target)
	edge.PathLen = len(path) - 1
	edge.SamplePath = thinPath(path)
	edge.Kind = conngraph.EdgeGround
	for _, idx := range path {
		if g.Cells[idx].Ramp {
			edge.Kind = conngraph.EdgeRamp
			break
		}
	}
	return edge
}

// rebuildCellPath walks parent links from target back to the seed.
func rebuildCellPath(f *flood, target int) []int {
	var rev []int
	for cur := target; ; cur = int(f.parents[cur]) {
		rev = append(rev, cur)
		if cur == f.seed {
			break
		}
	}
	path := make([]int, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = idx
	}
	return path
}

// thinPath keeps every samplePathStride-th cell plus the final one.
func thinPath(path []int) []int {
	if len(path) == 0 {
		return nil
	}
	var out []int
	for i := 0; i < len(path); i += samplePathStride {
		out = append(out, path[i])
	}
	if out[len(out)-1] != path[len(path)-1] {
		out = append(out, path[len(path)-1])
	}
	return out
}

// elevDelta returns |a − b| without underflow.
func elevDelta(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
