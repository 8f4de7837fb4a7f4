package mapdata

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/grid"
	"github.com/velmara/gridforge/mapdef"
	"github.com/velmara/gridforge/validate"
)

// Spawn is a player start location derived from a main region.
type Spawn struct {
	ID        string     `json:"id"`
	Slot      int        `json:"slot"`
	Pos       geom.Point `json:"pos"`
	Elevation uint8      `json:"elevation"`
}

// Expansion is a non-main base site (natural, third, fourth, gold).
type Expansion struct {
	ID        string         `json:"id"`
	Role      conngraph.Role `json:"role"`
	Pos       geom.Point     `json:"pos"`
	Elevation uint8          `json:"elevation"`
	OwnerSlot int            `json:"ownerSlot,omitempty"`
}

// WatchTower is a neutral vision point.
type WatchTower struct {
	ID     string     `json:"id"`
	Pos    geom.Point `json:"pos"`
	Radius float64    `json:"radius"`
}

// RampObject describes one contiguous ramp surface as a placeable object.
type RampObject struct {
	ID            string     `json:"id"`
	Center        geom.Point `json:"center"`
	Length        float64    `json:"length"`
	Width         float64    `json:"width"`
	LowElevation  uint8      `json:"lowElevation"`
	HighElevation uint8      `json:"highElevation"`
}

// DestructibleRock blocks a corridor until destroyed.
type DestructibleRock struct {
	ID     string     `json:"id"`
	Pos    geom.Point `json:"pos"`
	Radius float64    `json:"radius"`
	Health int        `json:"health"`
}

// Decoration is one biome doodad. Purely cosmetic.
type Decoration struct {
	Kind    string     `json:"kind"`
	Pos     geom.Point `json:"pos"`
	Variant uint8      `json:"variant"`
}

// ResourceKind tags a single resource patch.
type ResourceKind string

const (
	ResourceMinerals     ResourceKind = "minerals"
	ResourceRichMinerals ResourceKind = "rich_minerals"
	ResourceGas          ResourceKind = "gas"
)

// ResourcePatch is one harvestable node.
type ResourcePatch struct {
	Kind   ResourceKind `json:"kind"`
	Pos    geom.Point   `json:"pos"`
	Amount int          `json:"amount"`
}

// ResourceField groups the patches serving one base region.
type ResourceField struct {
	RegionID string          `json:"regionId"`
	Patches  []ResourcePatch `json:"patches"`
}

// MapData is the stable generation output contract.
type MapData struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Biome       mapdef.Biome `json:"biome"`
	Seed        int64        `json:"seed"`
	PlayerCount int          `json:"playerCount"`

	Terrain [][]grid.Cell `json:"terrain"`

	Spawns        []Spawn            `json:"spawns"`
	Expansions    []Expansion        `json:"expansions"`
	WatchTowers   []WatchTower       `json:"watchTowers"`
	Ramps         []RampObject       `json:"ramps"`
	Destructibles []DestructibleRock `json:"destructibles"`
	Decorations   []Decoration       `json:"decorations"`
	Resources     []ResourceField    `json:"resources"`

	// Debug payload, attached only when Options.Debug is set.
	Graph  *conngraph.DebugExport `json:"graph,omitempty"`
	Issues []validate.Issue       `json:"issues,omitempty"`
}

// NewID derives a stable v5 UUID from the definition identity and seed,
// so regenerating the same definition yields the same map ID.
func NewID(defID string, seed int64) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s:%d", defID, seed)))
}
