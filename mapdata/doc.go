// Package mapdata defines the finished-map output contract.
//
// MapData is what a generation run hands to rendering and simulation:
// the classified terrain plus every derived object (spawns, expansions,
// watchtowers, ramps, destructibles, decorations, resource fields). The
// struct is JSON-stable; downstream consumers key on its field names.
//
// Debug runs additionally attach the derived connectivity graph export
// and the validation issue list.
//
// mapdata holds no logic beyond construction helpers. The placement
// package fills the object slices; forge assembles the whole value.
package mapdata
