// Package fixer repairs connectivity defects found by validate.
//
// What fixer does:
//
//	🔧 Collects every add_ramp suggestion attached to an error issue.
//	🎨 Paints the suggested ramps onto the terrain grid and reclassifies it.
//	🔁 Re-runs the reachability analysis and validation exactly once.
//	📋 Reports what was painted and whether the map is now valid.
//
// Scope:
//
//   - Only error issues drive repairs. Warnings describe nice-to-have
//     shortcuts and never gate validity, so synthesizing terrain for them
//     would change maps that are already correct.
//   - Duplicate suggestions for the same node pair collapse to one ramp.
//   - One pass only. If the repainted map still fails validation the
//     report says so; fixer never loops.
//
// Typical use:
//
//	res := validate.Check(graph)
//	if !res.Valid {
//	    rep, err := fixer.Fix(g, nodes, res)
//	    ...
//	    if rep.Success { /* map repaired */ }
//	}
//
// Complexity: O(R·A) for R painted ramps of area A, plus one full
// analyze/validate cycle over the grid.
package fixer
