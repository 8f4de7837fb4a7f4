// Package analyze derives the actual connectivity graph from a rasterized,
// classified grid: it floods from every strategic node and classifies each
// node pair as ground, ramp or blocked.
//
// Algorithm, per node:
//
//  1. Seed: the node's own cell if walkable, else the nearest walkable cell
//     found by an expanding ring search (radius 1..10).
//  2. Flood: 8-directional BFS; a step is permitted only if the destination
//     is walkable AND (either endpoint is a ramp cell OR the elevation
//     delta is within pathcfg.WalkableClimb). Parent links are recorded for
//     path sampling.
//  3. Pairing: an unordered pair connects if the target node's cell — or a
//     nearby cell within a 5-cell ring, tolerating placement drift — shows
//     up in the source's reachable set. The edge is ramp if the recorded
//     path crosses a ramp cell, ground otherwise, blocked when no cell
//     matches.
//
// The graph is rebuilt wholesale on every call; nothing is patched
// incrementally. That is what keeps the fixer's paint-then-re-derive loop
// easy to trust.
//
// Complexity: O(W×H) per node for the flood, O(V²) pair resolution.
//
// Errors:
//
//   - ErrNilGrid: no grid supplied.
//   - node registration errors surface from conngraph (duplicate IDs).
package analyze
