// Package grid defines the terrain cell grid every other stage of the
// pipeline reads or mutates.
//
// What:
//
//   - Cell: terrain class, elevation (0..255), decorative feature, variant.
//   - Grid: a rectangular, row-major array of Cells with O(1) index math.
//   - Four- or eight-connectivity neighbor offsets, precomputed once.
//
// Why:
//
//   - The paint engine mutates cell contents in place; the analyzer walks
//     cells by row-major index so flood-fill state fits flat slices.
//   - Ownership: a Grid belongs to exactly one generation run. Nothing in
//     this package is goroutine-safe, and nothing needs to be.
//
// Invariants:
//
//   - A cell classified ClassRamp is never simultaneously ClassUnwalkable
//     (classification enforces ramp priority).
//   - Elevation is uint8 by construction; interpolated writers clamp.
//
// Complexity:
//
//   - New/Clone: O(W×H). Index/Coord/InBounds/At/Set: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: zero width or height requested.
//   - ErrOutOfBounds: cell access outside the grid.
package grid
