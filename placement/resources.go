package placement

import (
	"math"
	"math/rand"

	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/mapdata"
	"github.com/velmara/gridforge/mapdef"
)

// Patch amounts. Rich minerals pay out more per patch, gas is shared.
const (
	mineralAmount     = 1500
	richMineralAmount = 2500
	gasAmount         = 2250
)

// Mineral line geometry, relative to the region footprint.
const (
	arcSpread    = 100 * math.Pi / 180 // total mineral arc
	gasOffset    = 65 * math.Pi / 180  // gas angle off the arc axis
	arcRadiusMul = 0.55                // arc radius as share of region radius
	minArcRadius = 4.0
	patchJitter  = 0.5
)

// resourceFields builds one field per region carrying a resource template.
// The mineral line arcs around the base anchor facing away from the map
// center; gas patches flank the arc. Regions are visited in definition
// order and each patch draws two jitter values, so the stream is stable.
func resourceFields(def *mapdef.Definition, rng *rand.Rand) []mapdata.ResourceField {
	center := geom.Point{X: float64(def.Width) / 2, Y: float64(def.Height) / 2}

	var out []mapdata.ResourceField
	for _, r := range def.Regions {
		layout, err := r.Resources.Layout()
		if err != nil || (layout.Minerals == 0 && layout.Gas == 0) {
			continue
		}
		out = append(out, mapdata.ResourceField{
			RegionID: r.ID,
			Patches:  fieldPatches(r, layout, center, rng),
		})
	}
	return out
}

func fieldPatches(r mapdef.Region, layout mapdef.ResourceLayout, center geom.Point, rng *rand.Rand) []mapdata.ResourcePatch {
	axis := awayAngle(r.Pos, center)
	radius := math.Max(r.Radius*arcRadiusMul, minArcRadius)

	kind := mapdata.ResourceMinerals
	amount := mineralAmount
	if layout.Rich {
		kind = mapdata.ResourceRichMinerals
		amount = richMineralAmount
	}

	var patches []mapdata.ResourcePatch
	for i := 0; i < layout.Minerals; i++ {
		t := 0.5
		if layout.Minerals > 1 {
			t = float64(i) / float64(layout.Minerals-1)
		}
		a := axis + (t-0.5)*arcSpread
		patches = append(patches, mapdata.ResourcePatch{
			Kind:   kind,
			Pos:    jittered(r.Pos, radius, a, rng),
			Amount: amount,
		})
	}
	for i := 0; i < layout.Gas; i++ {
		a := axis + gasOffset
		if i%2 == 1 {
			a = axis - gasOffset
		}
		patches = append(patches, mapdata.ResourcePatch{
			Kind:   mapdata.ResourceGas,
			Pos:    jittered(r.Pos, radius+1.5, a, rng),
			Amount: gasAmount,
		})
	}
	return patches
}

// awayAngle points from the map center through the region anchor, so the
// mineral line sits behind the base. A region dead-center faces north.
func awayAngle(pos, center geom.Point) float64 {
	dx, dy := pos.X-center.X, pos.Y-center.Y
	if dx == 0 && dy == 0 {
		return -math.Pi / 2
	}
	return math.Atan2(dy, dx)
}

func jittered(anchor geom.Point, radius, angle float64, rng *rand.Rand) geom.Point {
	return geom.Point{
		X: anchor.X + radius*math.Cos(angle) + (rng.Float64()-0.5)*patchJitter,
		Y: anchor.Y + radius*math.Sin(angle) + (rng.Float64()-0.5)*patchJitter,
	}
}
