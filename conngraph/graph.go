package conngraph

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Graph owns the nodes and derived edges of one analysis run. It is not
// goroutine-safe; a graph belongs to one generation pipeline.
type Graph struct {
	nodes map[string]*Node
	edges map[string]*Edge
}

// NewGraph returns an empty connectivity graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// AddNode registers a strategic location.
// Returns ErrEmptyNodeID or ErrDuplicateNode.
// Complexity: O(1).
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.nodes[n.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	g.nodes[n.ID] = &n
	return nil
}

// AddEdge records the derived edge for an unordered node pair, replacing any
// previous entry for the same pair (the analyzer re-derives wholesale).
// Returns ErrSelfEdge or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) AddEdge(e Edge) error {
	if e.From == e.To {
		return fmt.Errorf("%w: %q", ErrSelfEdge, e.From)
	}
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, e.To)
	}
	g.edges[EdgeKey(e.From, e.To)] = &e
	return nil
}

// Node returns the node with the given ID, or ErrNodeNotFound.
func (g *Graph) Node(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return n, nil
}

// Edge returns the derived edge for the unordered pair (a, b), or nil if the
// analyzer recorded none.
func (g *Graph) Edge(a, b string) *Edge {
	return g.edges[EdgeKey(a, b)]
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of recorded pair edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all nodes sorted by ID, for deterministic iteration.
// Complexity: O(V log V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edges returns all edges sorted by pair key, for deterministic iteration.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	keys := make([]string, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Edge, 0, len(keys))
	for _, k := range keys {
		out = append(out, g.edges[k])
	}
	return out
}

// NodesByRole returns all nodes of the given role, sorted by ID.
func (g *Graph) NodesByRole(role Role) []*Node {
	var out []*Node
	for _, n := range g.Nodes() {
		if n.Role == role {
			out = append(out, n)
		}
	}
	return out
}

// neighbors returns the IDs adjacent to id via non-blocked edges, sorted.
func (g *Graph) neighbors(id string) []string {
	var out []string
	for _, e := range g.edges {
		if e.Kind == EdgeBlocked {
			continue
		}
		switch id {
		case e.From:
			out = append(out, e.To)
		case e.To:
			out = append(out, e.From)
		}
	}
	sort.Strings(out)
	return out
}

// ShortestPath runs BFS over non-blocked edges and returns the node ID
// sequence from one node to another (inclusive).
// Returns ErrNodeNotFound for unknown endpoints, ErrNoPath when unreachable.
// Complexity: O(V+E) with an index-cursor queue (no O(n) dequeue).
func (g *Graph) ShortestPath(from, to string) ([]string, error) {
	if _, ok := g.nodes[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	if from == to {
		return []string{from}, nil
	}
	parent := map[string]string{from: ""}
	queue := []string{from}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, nb := range g.neighbors(cur) {
			if _, seen := parent[nb]; seen {
				continue
			}
			parent[nb] = cur
			if nb == to {
				return rebuildPath(parent, to), nil
			}
			queue = append(queue, nb)
		}
	}
	return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, from, to)
}

// rebuildPath walks parent links back from dest and reverses.
func rebuildPath(parent map[string]string, dest string) []string {
	var path []string
	for cur := dest; cur != ""; cur = parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ReachableFrom returns the set of node IDs reachable from id via
// non-blocked edges, including id itself.
// Returns ErrNodeNotFound for an unknown start.
// Complexity: O(V+E).
func (g *Graph) ReachableFrom(id string) (mapset.Set[string], error) {
	if _, ok := g.nodes[id]; !ok {
		return mapset.Set[string]{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	seen := mapset.New[string]()
	seen.Put(id)
	queue := []string{id}
	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range g.neighbors(queue[qi]) {
			if seen.Has(nb) {
				continue
			}
			seen.Put(nb)
			queue = append(queue, nb)
		}
	}
	return seen, nil
}
