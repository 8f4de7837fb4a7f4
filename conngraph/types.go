// Package conngraph core types and sentinel errors.
package conngraph

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/velmara/gridforge/geom"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyNodeID indicates a node with an empty identifier.
	ErrEmptyNodeID = errors.New("conngraph: node ID is empty")
	// ErrDuplicateNode indicates a node ID registered twice.
	ErrDuplicateNode = errors.New("conngraph: duplicate node ID")
	// ErrNodeNotFound indicates an operation referenced an unknown node.
	ErrNodeNotFound = errors.New("conngraph: node not found")
	// ErrSelfEdge indicates an edge from a node to itself.
	ErrSelfEdge = errors.New("conngraph: self-edge not allowed")
	// ErrNoPath indicates ShortestPath found no non-blocked route.
	ErrNoPath = errors.New("conngraph: no path between nodes")
)

// Role names the strategic purpose of a location, in conventional RTS terms.
type Role string

const (
	// RoleMain is a player's starting base.
	RoleMain Role = "main"
	// RoleNatural is the first expansion outside a main.
	RoleNatural Role = "natural"
	// RoleThird is the second expansion.
	RoleThird Role = "third"
	// RoleFourth is the third expansion.
	RoleFourth Role = "fourth"
	// RoleGold is a high-value contested expansion.
	RoleGold Role = "gold"
	// RoleCenter is the contested map middle.
	RoleCenter Role = "center"
	// RoleChoke is a narrow strategic passage.
	RoleChoke Role = "choke"
	// RoleWatchtower is a vision-granting tower location.
	RoleWatchtower Role = "watchtower"
	// RolePathway is a route marker between locations.
	RolePathway Role = "pathway"
)

// Expansion reports whether the role is a resource expansion tier.
func (r Role) Expansion() bool {
	switch r {
	case RoleNatural, RoleThird, RoleFourth, RoleGold:
		return true
	}
	return false
}

// EdgeKind classifies how two nodes connect on the rasterized terrain.
type EdgeKind string

const (
	// EdgeGround means a walkable path with no ramp crossing.
	EdgeGround EdgeKind = "ground"
	// EdgeRamp means the walkable path crosses at least one ramp cell.
	EdgeRamp EdgeKind = "ramp"
	// EdgeBlocked means no walkable path was found.
	EdgeBlocked EdgeKind = "blocked"
)

// Node is a strategic location. Reachable is rebuilt by the analyzer on
// every run and holds row-major grid indices; it is nil until analyzed.
type Node struct {
	ID        string     `json:"id"`
	Role      Role       `json:"role"`
	Pos       geom.Point `json:"pos"`
	Elevation uint8      `json:"elevation"`
	// OwnerSlot is the owning player slot, 0 for neutral locations.
	OwnerSlot int `json:"ownerSlot,omitempty"`

	// Reachable holds the grid cell indices flooded from this node.
	// Not serialized; see DebugExport for reachable set sizes.
	Reachable mapset.Set[int] `json:"-"`
}

// Edge describes the derived relationship of one unordered node pair.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"kind"`
	// Distance is the straight-line distance between the node positions.
	Distance float64 `json:"distance"`
	// PathLen is the hop count of the sampled walkable path, 0 if blocked.
	PathLen int `json:"pathLen,omitempty"`
	// SamplePath is a thinned sequence of grid indices along the found
	// path, kept for debug visualization.
	SamplePath []int `json:"samplePath,omitempty"`
	// ElevationDelta is |elevation(from) − elevation(to)|.
	ElevationDelta uint8 `json:"elevationDelta"`
}

// EdgeKey returns the order-independent key for a node pair, so that
// EdgeKey(a, b) == EdgeKey(b, a) for all pairs.
func EdgeKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
