package conngraph

import (
	"fmt"

	"github.com/velmara/gridforge/pathcfg"
)

// CheckStructure runs graph-level sanity checks and returns human-readable
// findings: orphan nodes (no recorded edges at all), elevation-inconsistent
// edges (stored delta disagrees with node elevations), and ground edges
// whose elevation delta exceeds the walkable climb (those should have been
// classified ramp or blocked).
//
// These are debug-grade diagnostics for tooling. Game-design validation
// lives in the validate package.
//
// Complexity: O(V+E).
func (g *Graph) CheckStructure() []string {
	var findings []string

	touched := make(map[string]bool, len(g.nodes))
	for _, e := range g.Edges() {
		touched[e.From] = true
		touched[e.To] = true

		from, to := g.nodes[e.From], g.nodes[e.To]
		want := elevDelta(from.Elevation, to.Elevation)
		if e.ElevationDelta != want {
			findings = append(findings, fmt.Sprintf(
				"edge %s: stored elevation delta %d, node elevations imply %d",
				EdgeKey(e.From, e.To), e.ElevationDelta, want))
		}
		if e.Kind == EdgeGround && want > pathcfg.WalkableClimb {
			findings = append(findings, fmt.Sprintf(
				"edge %s: ground-classified but elevation delta %d exceeds walkable climb %d",
				EdgeKey(e.From, e.To), want, pathcfg.WalkableClimb))
		}
	}

	for _, n := range g.Nodes() {
		if !touched[n.ID] && len(g.nodes) > 1 {
			findings = append(findings, fmt.Sprintf("node %s: orphan (no recorded edges)", n.ID))
		}
	}
	return findings
}

// elevDelta returns |a − b| without underflow.
func elevDelta(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
