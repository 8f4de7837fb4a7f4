// Package placement derives the placeable object layer from a classified
// terrain grid: spawns, expansions, watchtowers, ramp objects, resource
// fields, destructible rocks and biome decorations.
//
// What placement guarantees:
//
//	🎲 Determinism. Every random draw comes from substreams derived from
//	   the definition seed in a fixed order (cell variants, decorations,
//	   resources). Same definition + seed ⇒ byte-identical output.
//	🗺️ Read-mostly. The grid is only touched to stamp per-cell texture
//	   variants; classes, elevation and features are never changed.
//	🧭 Grounded positions. Spawns and expansions sit exactly on their
//	   region anchors; resources arc around the base facing away from the
//	   map center; decorations reject anything but buildable ground.
//
// Placement runs last in the generation pipeline, after the terrain is
// final and connectivity has been validated (and possibly repaired).
//
// Complexity: O(width×height) for variants and ramp clustering, O(n) in
// requested object counts for everything else.
package placement
