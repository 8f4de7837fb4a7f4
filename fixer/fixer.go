package fixer

import (
	"errors"
	"fmt"

	"github.com/velmara/gridforge/analyze"
	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/grid"
	"github.com/velmara/gridforge/paint"
	"github.com/velmara/gridforge/validate"
)

var (
	// ErrNilGrid is returned when Fix receives no terrain to repair.
	ErrNilGrid = errors.New("fixer: nil grid")
)

// Ramp records one corridor painted by the fixer, in map units.
type Ramp struct {
	From  geom.Point `json:"from"`
	To    geom.Point `json:"to"`
	Width float64    `json:"width"`
}

// Report summarizes a repair pass.
type Report struct {
	// Success is true when the repainted map validates clean.
	Success bool `json:"success"`
	// RampsAdded counts the corridors painted (== len(Ramps)).
	RampsAdded int `json:"rampsAdded"`
	// Ramps lists what was painted, in issue order.
	Ramps []Ramp `json:"ramps,omitempty"`
	// Messages holds one human-readable line per action taken.
	Messages []string `json:"messages,omitempty"`
	// Graph is the connectivity graph rebuilt after repainting.
	// Nil when nothing was painted.
	Graph *conngraph.Graph `json:"-"`
	// Revalidated is the validation result after the repair pass.
	Revalidated validate.Result `json:"revalidated"`
}

// Fix paints one ramp per distinct error suggestion in res, reclassifies
// the grid, then re-analyzes and re-validates exactly once. The grid is
// mutated in place; nodes are the same region anchors handed to analyze.
//
// When res carries no actionable suggestions the grid is left untouched
// and Revalidated echoes res.
func Fix(g *grid.Grid, nodes []conngraph.Node, res validate.Result) (*Report, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	rep := &Report{}
	seen := make(map[string]bool)
	var cmds []paint.Command
	for _, is := range res.Errors() {
		fix := is.Fix
		if fix == nil || fix.Kind != validate.FixAddRamp {
			continue
		}
		key := pairKey(is.AffectedNodes)
		if seen[key] {
			continue
		}
		seen[key] = true
		cmds = append(cmds, paint.Ramp(fix.From, fix.To, fix.Width))
		rep.Ramps = append(rep.Ramps, Ramp{From: fix.From, To: fix.To, Width: fix.Width})
		rep.Messages = append(rep.Messages,
			fmt.Sprintf("painted ramp (%.1f,%.1f)→(%.1f,%.1f) for %s",
				fix.From.X, fix.From.Y, fix.To.X, fix.To.Y, key))
	}
	rep.RampsAdded = len(rep.Ramps)

	if len(cmds) == 0 {
		rep.Revalidated = res
		rep.Success = res.Valid
		return rep, nil
	}

	if err := paint.Apply(g, cmds); err != nil {
		return nil, fmt.Errorf("fixer: repaint: %w", err)
	}
	paint.Classify(g)

	graph, err := analyze.Analyze(g, nodes)
	if err != nil {
		return nil, fmt.Errorf("fixer: re-analyze: %w", err)
	}
	rep.Graph = graph
	rep.Revalidated = validate.Check(graph)
	rep.Success = rep.Revalidated.Valid
	return rep, nil
}

// pairKey is an order-independent key over an issue's affected nodes.
func pairKey(ids []string) string {
	if len(ids) == 2 {
		return conngraph.EdgeKey(ids[0], ids[1])
	}
	key := ""
	for _, id := range ids {
		key += id + "|"
	}
	return key
}
