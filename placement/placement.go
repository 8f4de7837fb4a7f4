package placement

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/grid"
	"github.com/velmara/gridforge/mapdata"
	"github.com/velmara/gridforge/mapdef"
)

var (
	// ErrNilGrid is returned when Place receives no terrain.
	ErrNilGrid = errors.New("placement: nil grid")
	// ErrNilDefinition is returned when Place receives no definition.
	ErrNilDefinition = errors.New("placement: nil definition")
)

// Set is the full object layer for one map.
type Set struct {
	Spawns        []mapdata.Spawn
	Expansions    []mapdata.Expansion
	WatchTowers   []mapdata.WatchTower
	Ramps         []mapdata.RampObject
	Destructibles []mapdata.DestructibleRock
	Decorations   []mapdata.Decoration
	Resources     []mapdata.ResourceField
}

// rockHealth is the fixed hit-point pool of a destructible rock.
const rockHealth = 500

// Place derives every placeable object from the classified grid and the
// definition. The grid is mutated only to stamp texture variants; all
// random draws come from seed-derived substreams in a fixed order.
//
// Complexity: O(width×height + objects).
func Place(g *grid.Grid, def *mapdef.Definition, rocks []mapdef.Destructible) (*Set, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if def == nil {
		return nil, ErrNilDefinition
	}

	seed := def.Options.Seed
	s := &Set{}

	stampVariants(g, def.Biome, streamRNG(seed, streamVariants))
	placeAnchors(s, def)
	s.Ramps = rampObjects(g)
	placeRocks(s, rocks)
	s.Decorations = scatterDecorations(g, def, streamRNG(seed, streamDecorations))
	s.Resources = resourceFields(def, streamRNG(seed, streamResources))
	return s, nil
}

// biomeVariants maps each biome to its texture variant count.
var biomeVariants = map[mapdef.Biome]int{
	mapdef.BiomeGrass:  4,
	mapdef.BiomeDesert: 4,
	mapdef.BiomeSnow:   3,
	mapdef.BiomeJungle: 4,
	mapdef.BiomeAsh:    3,
	mapdef.BiomeDusk:   3,
}

// stampVariants assigns a texture variant to every cell, row-major so the
// draw order is stable.
func stampVariants(g *grid.Grid, biome mapdef.Biome, rng *rand.Rand) {
	n := biomeVariants[biome]
	if n < 2 {
		n = 2
	}
	for i := range g.Cells {
		g.Cells[i].Variant = uint8(rng.Intn(n))
	}
}

// placeAnchors turns regions into spawns, expansions and watchtowers.
// No randomness: objects sit exactly on their region anchors.
func placeAnchors(s *Set, def *mapdef.Definition) {
	for _, r := range def.Regions {
		elev := def.RegionElevation(r)
		switch {
		case r.Role == conngraph.RoleMain:
			s.Spawns = append(s.Spawns, mapdata.Spawn{
				ID: r.ID, Slot: r.OwnerSlot, Pos: r.Pos, Elevation: elev,
			})
		case r.Role.Expansion():
			s.Expansions = append(s.Expansions, mapdata.Expansion{
				ID: r.ID, Role: r.Role, Pos: r.Pos, Elevation: elev, OwnerSlot: r.OwnerSlot,
			})
		case r.Role == conngraph.RoleWatchtower:
			s.WatchTowers = append(s.WatchTowers, mapdata.WatchTower{
				ID: r.ID, Pos: r.Pos, Radius: r.Radius,
			})
		}
	}
}

// rampObjects clusters contiguous ramp cells (8-connected) into one object
// per surface. Scan order is row-major, so IDs are stable.
func rampObjects(g *grid.Grid) []mapdata.RampObject {
	var out []mapdata.RampObject
	visited := make([]bool, len(g.Cells))
	offsets := grid.NeighborOffsets(grid.Conn8)

	for start := range g.Cells {
		if visited[start] || !g.Cells[start].Ramp {
			continue
		}
		cluster := collectCluster(g, start, visited, offsets)
		out = append(out, summarizeRamp(g, len(out)+1, cluster))
	}
	return out
}

// collectCluster floods one ramp surface from start using an index-cursor
// queue (O(1) amortized dequeue).
func collectCluster(g *grid.Grid, start int, visited []bool, offsets [][2]int) []int {
	queue := []int{start}
	visited[start] = true
	for cursor := 0; cursor < len(queue); cursor++ {
		idx := queue[cursor]
		x, y := g.Coord(idx)
		for _, d := range offsets {
			nx, ny := x+d[0], y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := g.Index(nx, ny)
			if visited[ni] || !g.Cells[ni].Ramp {
				continue
			}
			visited[ni] = true
			queue = append(queue, ni)
		}
	}
	return queue
}

func summarizeRamp(g *grid.Grid, ord int, cluster []int) mapdata.RampObject {
	minX, minY := math.MaxInt32, math.MaxInt32
	maxX, maxY := -1, -1
	var sumX, sumY float64
	lo, hi := uint8(255), uint8(0)
	for _, idx := range cluster {
		x, y := g.Coord(idx)
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
		sumX += float64(x)
		sumY += float64(y)
		if e := g.Cells[idx].Elevation; e < lo {
			lo = e
		}
		if e := g.Cells[idx].Elevation; e > hi {
			hi = e
		}
	}
	n := float64(len(cluster))
	spanX := float64(maxX-minX) + 1
	spanY := float64(maxY-minY) + 1
	length := math.Max(spanX, spanY)
	return mapdata.RampObject{
		ID:            fmt.Sprintf("ramp_%d", ord),
		Center:        geom.Point{X: sumX / n, Y: sumY / n},
		Length:        length,
		Width:         n / length,
		LowElevation:  lo,
		HighElevation: hi,
	}
}

// placeRocks converts compiled destructible markers into rock objects.
func placeRocks(s *Set, rocks []mapdef.Destructible) {
	for i, r := range rocks {
		s.Destructibles = append(s.Destructibles, mapdata.DestructibleRock{
			ID:     fmt.Sprintf("rocks_%d", i+1),
			Pos:    r.Pos,
			Radius: r.Radius,
			Health: rockHealth,
		})
	}
}

// biomeFlora lists vegetation doodads per biome; biomeProps the rest.
var (
	biomeFlora = map[mapdef.Biome][]string{
		mapdef.BiomeGrass:  {"tree_lone", "bush", "grass_tuft"},
		mapdef.BiomeDesert: {"cactus", "dune_shrub"},
		mapdef.BiomeSnow:   {"pine", "pine_dead"},
		mapdef.BiomeJungle: {"fern", "palm", "vine_stump"},
		mapdef.BiomeAsh:    {"charred_stump"},
		mapdef.BiomeDusk:   {"dead_tree", "shale_shrub"},
	}
	biomeProps = map[mapdef.Biome][]string{
		mapdef.BiomeGrass:  {"rock_small", "boulder"},
		mapdef.BiomeDesert: {"rock_small", "bones"},
		mapdef.BiomeSnow:   {"rock_ice", "snowdrift"},
		mapdef.BiomeJungle: {"boulder_moss"},
		mapdef.BiomeAsh:    {"ember_rock", "vent"},
		mapdef.BiomeDusk:   {"crystal", "shale"},
	}
)

// scatterDecorations rejection-samples doodads onto buildable ground.
// Densities are expressed per thousand buildable cells; vegetation draws
// precede prop draws so the stream order is fixed.
func scatterDecorations(g *grid.Grid, def *mapdef.Definition, rng *rand.Rand) []mapdata.Decoration {
	buildable := 0
	for i := range g.Cells {
		if g.Cells[i].Buildable() {
			buildable++
		}
	}
	if buildable == 0 {
		return nil
	}

	var out []mapdata.Decoration
	out = scatterKind(g, rng, out, biomeFlora[def.Biome],
		targetCount(def.VegetationDensity, buildable))
	out = scatterKind(g, rng, out, biomeProps[def.Biome],
		targetCount(def.DecorationDensity, buildable))
	return out
}

func targetCount(perThousand float64, buildable int) int {
	return int(perThousand * float64(buildable) / 1000)
}

func scatterKind(g *grid.Grid, rng *rand.Rand, out []mapdata.Decoration, kinds []string, target int) []mapdata.Decoration {
	if target <= 0 || len(kinds) == 0 {
		return out
	}
	placed := 0
	for attempt := 0; attempt < target*10 && placed < target; attempt++ {
		idx := rng.Intn(len(g.Cells))
		if !g.Cells[idx].Buildable() {
			continue
		}
		x, y := g.Coord(idx)
		out = append(out, mapdata.Decoration{
			Kind: kinds[rng.Intn(len(kinds))],
			Pos: geom.Point{
				X: float64(x) + rng.Float64(),
				Y: float64(y) + rng.Float64(),
			},
			Variant: uint8(rng.Intn(4)),
		})
		placed++
	}
	return out
}
