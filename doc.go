// Package gridforge derives fully walkable, game-ready terrain maps from
// compact declarative descriptions — deterministically, from a single seed.
//
// 🚀 What is gridforge?
//
//	A connectivity-first map generation toolkit that brings together:
//		• Paint engine: rasterize ordered terrain commands into a cell grid
//		• Declarative compiler: regions & connections → paint commands
//		• Connectivity graph: who can walk to whom, derived by flood-fill
//		• Validator: game-design invariants (mains reachable, no stray islands)
//		• Fixer: synthesize corrective ramps, then re-verify
//		• Placement: seeded resources, decorations and derived map objects
//
// ✨ Why choose gridforge?
//
//   - Deterministic – same definition + same seed ⇒ byte-identical maps
//   - Self-repairing – broken connectivity gets ramped, not rejected
//   - Pure pipeline – no I/O, no goroutines, no hidden state in the core
//   - Inspectable – every graph and map round-trips to JSON for tooling
//
// The pipeline, leaves first:
//
//	geom/      — shape primitives (circle, rect, ellipse, polygon, line, path)
//	grid/      — the cell grid: elevation, terrain class, features
//	pathcfg/   — shared walkability constants (generation ↔ runtime agree)
//	paint/     — the raster engine and terrain classification
//	mapdef/    — declarative schema, structural validation, compiler
//	conngraph/ — the connectivity graph model + JSON debug export
//	analyze/   — grid → graph via constrained flood-fill
//	validate/  — design rules → structured issues with suggested fixes
//	fixer/     — one-pass ramp synthesis + re-validation
//	placement/ — seeded resources, decorations, spawns, towers, rocks
//	mapdata/   — the stable output contract consumed by game collaborators
//	forge/     — the orchestrator: Generate(definition) → MapData
//
// Quick ASCII example, a two-player skirmish map:
//
//	┌────────────────────┐
//	│ M1══N1    N2══M2   │   M = main (high ground)
//	│   ╲  ╲    ╱  ╱     │   N = natural expansion
//	│     ═══C═══        │   C = contested center
//	└────────────────────┘   ══ = ramps the fixer will prove (or paint)
//
// Dive into examples/ for full scenarios, and cmd/forgeview for a live
// debug viewer over the JSON export.
package gridforge
