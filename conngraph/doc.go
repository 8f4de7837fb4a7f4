// Package conngraph models the connectivity graph over a map's strategic
// locations: which bases, expansions and towers can reach which others, and
// how (flat ground, a ramp, or not at all).
//
// What:
//
//   - Node: a named strategic location with role, position, elevation and
//     the set of grid cells reachable from it (filled by the analyzer).
//   - Edge: one entry per unordered node pair, keyed order-independently,
//     classified ground, ramp or blocked.
//   - Graph: node/edge maps plus derived aggregates — island partition via
//     union-find, "all mains mutually connected", "mains reach a natural".
//   - BFS shortest paths over non-blocked edges, reachability sets,
//     structural checks (orphans, self-edges, elevation sanity).
//   - JSON round-trip (ToJSON / FromJSON) and a debug export for tooling.
//
// Why:
//
//   - The validator and fixer reason about this graph, never about raw
//     cells; the analyzer rebuilds it wholesale after every raster change,
//     which keeps the fix-then-re-derive loop trivially correct.
//
// Complexity:
//
//   - AddNode/AddEdge: O(1). ShortestPath/ReachableFrom: O(V+E).
//   - Islands: near-O(E α(V)) union-find with path compression.
//
// Errors:
//
//   - ErrEmptyNodeID, ErrDuplicateNode, ErrNodeNotFound, ErrSelfEdge:
//     structural failures while building the graph.
//   - ErrNoPath: ShortestPath found no non-blocked route.
package conngraph
