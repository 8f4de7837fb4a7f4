package conngraph

import (
	"encoding/json"
	"fmt"
)

// graphJSON is the wire form of a Graph: flat, sorted node and edge lists.
type graphJSON struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ToJSON serializes the graph for tooling and round-trip storage. Nodes and
// edges are emitted sorted, so equal graphs serialize byte-identically.
// Reachable sets are not serialized (they are per-run analyzer state).
func (g *Graph) ToJSON() ([]byte, error) {
	out := graphJSON{
		Nodes: make([]Node, 0, len(g.nodes)),
		Edges: make([]Edge, 0, len(g.edges)),
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, *n)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, *e)
	}
	return json.MarshalIndent(out, "", "  ")
}

// FromJSON rebuilds a graph from its ToJSON form.
// Returns the usual structural errors for malformed node/edge data.
func FromJSON(data []byte) (*Graph, error) {
	var in graphJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("conngraph: decode: %w", err)
	}
	g := NewGraph()
	for _, n := range in.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range in.Edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// DebugExport summarizes the graph for visualization tools: the JSON wire
// form plus derived aggregates and structural findings.
type DebugExport struct {
	Nodes          []Node         `json:"nodes"`
	Edges          []Edge         `json:"edges"`
	Islands        [][]string     `json:"islands"`
	MainsConnected bool           `json:"mainsConnected"`
	MainsReachNat  bool           `json:"mainsReachNatural"`
	Reachable      map[string]int `json:"reachableCells,omitempty"`
	Findings       []string       `json:"findings,omitempty"`
}

// Export builds the debug summary. Reachable counts are included for nodes
// the analyzer has flooded.
func (g *Graph) Export() DebugExport {
	exp := DebugExport{
		Islands:        g.Islands(),
		MainsConnected: g.MainsConnected(),
		MainsReachNat:  g.MainsReachNatural(),
		Findings:       g.CheckStructure(),
		Reachable:      make(map[string]int),
	}
	for _, n := range g.Nodes() {
		exp.Nodes = append(exp.Nodes, *n)
		if n.Reachable.Size() > 0 {
			exp.Reachable[n.ID] = n.Reachable.Size()
		}
	}
	for _, e := range g.Edges() {
		exp.Edges = append(exp.Edges, *e)
	}
	if len(exp.Reachable) == 0 {
		exp.Reachable = nil
	}
	return exp
}
