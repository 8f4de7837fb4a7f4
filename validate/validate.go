package validate

import (
	"fmt"
	"math"

	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/pathcfg"
)

// nearPairDistance bounds rule 4: only blocked pairs this close (in map
// units) warrant a missing-ramp warning.
const nearPairDistance = 100.0

// rampFixWidth is the corridor width of every suggested ramp.
const rampFixWidth = 6.0

// Check runs every rule against the graph and returns the full issue list.
// Pure: the graph is never mutated, and Check never fails.
//
// Complexity: O(V² + E) dominated by the pairwise main checks.
func Check(g *conngraph.Graph) Result {
	var issues []Issue
	islands := g.Islands()
	home := islandHome(islands)

	issues = append(issues, checkMainPairs(g, home)...)
	issues = append(issues, checkNaturals(g, home)...)
	issues = append(issues, checkIslands(g, islands)...)
	issues = append(issues, checkBlockedNearPairs(g)...)

	res := Result{Issues: issues, Valid: true}
	for _, is := range issues {
		if is.Severity == SeverityError {
			res.Valid = false
			break
		}
	}
	return res
}

// islandHome maps node ID → island index.
func islandHome(islands [][]string) map[string]int {
	home := make(map[string]int)
	for i, members := range islands {
		for _, id := range members {
			home[id] = i
		}
	}
	return home
}

// rampFix builds the add_ramp suggestion for a node pair: a segment of
// clamp(distance/5, 8, 12) cells centered on the straight-line midpoint.
func rampFix(a, b *conngraph.Node) *SuggestedFix {
	dist := a.Pos.Dist(b.Pos)
	span := geom.Clamp(dist/5, 8, 12)
	mid := geom.Point{X: (a.Pos.X + b.Pos.X) / 2, Y: (a.Pos.Y + b.Pos.Y) / 2}
	if dist == 0 {
		return &SuggestedFix{Kind: FixAddRamp, From: mid, To: mid.Add(span, 0), Width: rampFixWidth}
	}
	ux := (b.Pos.X - a.Pos.X) / dist
	uy := (b.Pos.Y - a.Pos.Y) / dist
	half := span / 2
	return &SuggestedFix{
		Kind:  FixAddRamp,
		From:  geom.Point{X: mid.X - ux*half, Y: mid.Y - uy*half},
		To:    geom.Point{X: mid.X + ux*half, Y: mid.Y + uy*half},
		Width: rampFixWidth,
	}
}

// checkMainPairs enforces rule 1: all mains mutually reachable.
func checkMainPairs(g *conngraph.Graph, home map[string]int) []Issue {
	var issues []Issue
	mains := g.NodesByRole(conngraph.RoleMain)
	for i := 0; i < len(mains); i++ {
		for j := i + 1; j < len(mains); j++ {
			a, b := mains[i], mains[j]
			if home[a.ID] == home[b.ID] {
				continue
			}
			issues = append(issues, Issue{
				Severity:      SeverityError,
				Kind:          KindMainUnreachable,
				Message:       fmt.Sprintf("mains %s and %s cannot reach each other", a.ID, b.ID),
				AffectedNodes: []string{a.ID, b.ID},
				Fix:           rampFix(a, b),
			})
		}
	}
	return issues
}

// checkNaturals enforces rule 2: every main reaches its closest natural.
func checkNaturals(g *conngraph.Graph, home map[string]int) []Issue {
	var issues []Issue
	naturals := g.NodesByRole(conngraph.RoleNatural)
	if len(naturals) == 0 {
		return nil
	}
	for _, m := range g.NodesByRole(conngraph.RoleMain) {
		closest := naturals[0]
		best := math.Inf(1)
		for _, n := range naturals {
			if d := m.Pos.Dist(n.Pos); d < best {
				best = d
				closest = n
			}
		}
		if home[m.ID] == home[closest.ID] {
			continue
		}
		issues = append(issues, Issue{
			Severity:      SeverityError,
			Kind:          KindNaturalUnreachable,
			Message:       fmt.Sprintf("main %s cannot reach its closest natural %s", m.ID, closest.ID),
			AffectedNodes: []string{m.ID, closest.ID},
			Fix:           rampFix(m, closest),
		})
	}
	return issues
}

// checkIslands enforces rule 3: stray islands. The island holding the most
// mains is the main game area; other islands with mains are errors, islands
// with expansions but no main are warnings.
func checkIslands(g *conngraph.Graph, islands [][]string) []Issue {
	var issues []Issue
	mainArea := -1
	mostMains := 0
	counts := make([]int, len(islands))
	for i, members := range islands {
		for _, id := range members {
			if n, err := g.Node(id); err == nil && n.Role == conngraph.RoleMain {
				counts[i]++
			}
		}
		if counts[i] > mostMains {
			mostMains = counts[i]
			mainArea = i
		}
	}

	for i, members := range islands {
		if i == mainArea {
			continue
		}
		if counts[i] > 0 {
			issues = append(issues, Issue{
				Severity:      SeverityError,
				Kind:          KindIslandIsolated,
				Message:       fmt.Sprintf("island %v is isolated from the main game area", members),
				AffectedNodes: members,
			})
			continue
		}
		hasExpansion := false
		for _, id := range members {
			if n, err := g.Node(id); err == nil && n.Role.Expansion() {
				hasExpansion = true
				break
			}
		}
		if hasExpansion && mostMains > 0 {
			issues = append(issues, Issue{
				Severity:      SeverityWarning,
				Kind:          KindExpansionIsolated,
				Message:       fmt.Sprintf("island %v holds expansions but no main", members),
				AffectedNodes: members,
			})
		}
	}
	return issues
}

// expansionPair reports whether a blocked edge joins main↔natural or
// natural↔third, the adjacencies rule 4 cares about.
func expansionPair(a, b conngraph.Role) bool {
	if a > b {
		a, b = b, a
	}
	return (a == conngraph.RoleMain && b == conngraph.RoleNatural) ||
		(a == conngraph.RoleNatural && b == conngraph.RoleThird)
}

// checkBlockedNearPairs enforces rule 4: near blocked pairs across a climb
// get a missing-ramp warning.
func checkBlockedNearPairs(g *conngraph.Graph) []Issue {
	var issues []Issue
	for _, e := range g.Edges() {
		if e.Kind != conngraph.EdgeBlocked {
			continue
		}
		if e.Distance > nearPairDistance || e.ElevationDelta <= pathcfg.WalkableClimb {
			continue
		}
		from, errF := g.Node(e.From)
		to, errT := g.Node(e.To)
		if errF != nil || errT != nil || !expansionPair(from.Role, to.Role) {
			continue
		}
		issues = append(issues, Issue{
			Severity:      SeverityWarning,
			Kind:          KindMissingRamp,
			Message:       fmt.Sprintf("%s and %s are near but separated by a climb; a ramp would connect them", e.From, e.To),
			AffectedNodes: []string{e.From, e.To},
			Fix:           rampFix(from, to),
		})
	}
	return issues
}
