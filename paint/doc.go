// Package paint is the raster engine: it executes an ordered list of terrain
// commands against a grid, then classifies every cell's walkability.
//
// What:
//
//   - Command: a tagged geometric mutation (fill, plateau, rect, ramp,
//     gradient, water, forest, void, road, mud, unwalkable, border).
//   - Apply: run a command list in order; later commands override earlier
//     ones inside their footprint, except features never overwrite ramps.
//   - Classify: the single post-paint pass deriving each cell's Class,
//     including 8-neighbor cliff detection.
//
// Why:
//
//   - Both definition forms (imperative command lists and the declarative
//     compiler) funnel into this one vocabulary, so connectivity analysis
//     and the fixer only ever reason about one raster semantics.
//
// Ramps:
//
//   - A ramp reads both endpoint elevations from the current grid, then
//     auto-extends its far endpoint until the climb per cell stays within
//     pathcfg.MaxSlopePerCell. Interior cells interpolate linearly along
//     the long axis and are marked ramp; cliff detection skips them.
//
// Ordering is significant everywhere: classification checks ramp first,
// then blocking features, then cliffs, then decorative features.
//
// Complexity: each command is O(area of its footprint); Classify is
// O(W×H×8).
//
// Errors:
//
//   - ErrNilGrid: Apply invoked without a grid.
//   - ErrUnknownOp: a command with an unrecognized opcode.
//   - ErrBadCommand: a command with missing or degenerate geometry.
package paint
