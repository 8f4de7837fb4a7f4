// Package forge runs the full map generation pipeline.
//
// One call does everything:
//
//	md, res, err := forge.Generate(def)
//
// Pipeline, in order:
//
//	1️⃣ Validate the definition (structural errors are hard failures).
//	2️⃣ Compile regions/connections/features to paint commands.
//	3️⃣ Paint the terrain grid and classify every cell.
//	4️⃣ Analyze reachability into a connectivity graph.
//	5️⃣ Validate the graph against the game-design rules.
//	6️⃣ Optionally let the fixer paint corrective ramps, once.
//	7️⃣ Place spawns, resources, rocks and decorations.
//
// Generation is single-threaded and does no I/O. Given the same
// definition and seed the output is byte-identical, decorations
// included.
//
// Connectivity problems are data, not failures: Generate always returns
// a map when the definition itself is well-formed, alongside the
// validation result for the caller to judge.
package forge
