package paint

import (
	"github.com/velmara/gridforge/grid"
	"github.com/velmara/gridforge/pathcfg"
)

// Classify assigns every cell's terrain class. Run exactly once, after all
// paint commands. The order of checks is significant:
//
//  1. ramp-marked cells classify ramp (and silence cliff detection around
//     them), so ramps never erroneously read as impassable cliffs;
//  2. blocking features (void, cliff, deep water) classify unwalkable;
//  3. cliff detection: any 8-neighbor differing in elevation by at least
//     pathcfg.CliffThreshold, where that neighbor is not itself a ramp,
//     classifies unwalkable and stamps the cliff feature on bare cells;
//  4. remaining decorative features classify unbuildable (roads stay ground);
//  5. everything else is ground.
//
// Complexity: O(W×H×8).
func Classify(g *grid.Grid) {
	offsets := grid.NeighborOffsets(grid.Conn8)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Cell(x, y)
			switch {
			case c.Ramp:
				c.Class = grid.ClassRamp
			case c.Feature.Blocking():
				c.Class = grid.ClassUnwalkable
			case cliffAt(g, x, y, offsets):
				c.Class = grid.ClassUnwalkable
				if c.Feature == grid.FeatureNone {
					c.Feature = grid.FeatureCliff
				}
			case c.Feature.Decorative():
				c.Class = grid.ClassUnbuildable
			default:
				c.Class = grid.ClassGround
			}
		}
	}
}

// cliffAt reports whether cliff detection fires at (x, y): some 8-neighbor
// differs in elevation by at least the cliff threshold and is not a ramp.
func cliffAt(g *grid.Grid, x, y int, offsets [][2]int) bool {
	e := g.Cell(x, y).Elevation
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		n := g.Cell(nx, ny)
		if n.Ramp {
			continue
		}
		var delta uint8
		if n.Elevation > e {
			delta = n.Elevation - e
		} else {
			delta = e - n.Elevation
		}
		if delta >= pathcfg.CliffThreshold {
			return true
		}
	}
	return false
}
