package mapdef

import (
	"fmt"

	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/paint"
)

// Destructible marks a spot where compiled connections want breakable rocks.
type Destructible struct {
	Pos    geom.Point `json:"pos"`
	Radius float64    `json:"radius"`
}

// Plan is the compiled form of a definition: the ordered paint command list,
// the strategic nodes the analyzer floods from, and entity seeds the
// placement stage consumes.
type Plan struct {
	Commands      []paint.Command
	Nodes         []conngraph.Node
	Destructibles []Destructible
}

// Compile lowers a definition into the paint vocabulary. The definition is
// re-validated first; a structurally broken one yields ErrNotValidated
// wrapping the full defect list.
//
// Command order matters and is fixed: fill, border frame, region plateaus
// with their cliff rings, connections, then direct terrain features.
// Connections carve through earlier cliff rings: ramp cells shed every
// feature, ground corridors shed blocking ones. Later feature shapes never
// overwrite ramp cells.
//
// Complexity: O(regions + connections + features) commands; raster cost is
// paid later in paint.Apply.
func Compile(d *Definition) (*Plan, error) {
	if err := Validate(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotValidated, err)
	}

	plan := &Plan{}
	floor := d.Floor()
	plan.Commands = append(plan.Commands, paint.Fill(floor))
	if d.Border > 0 {
		plan.Commands = append(plan.Commands, paint.Border(d.Border))
	}

	regions := make(map[string]Region, len(d.Regions))
	for _, r := range d.Regions {
		regions[r.ID] = r
		elev := d.RegionElevation(r)
		plan.Commands = append(plan.Commands, paint.Plateau(r.Pos, r.Radius, elev))
		if elev > floor && r.Radius > cliffRingThickness {
			// Manual cliff ring on the elevated perimeter. Ramp-adjacent
			// stretches are cleared when connections paint over them.
			plan.Commands = append(plan.Commands, paint.Unwalkable(ring{
				center: r.Pos,
				inner:  r.Radius - cliffRingThickness,
				outer:  r.Radius,
			}))
		}
		plan.Nodes = append(plan.Nodes, conngraph.Node{
			ID:        r.ID,
			Role:      r.Role,
			Pos:       r.Pos,
			Elevation: elev,
			OwnerSlot: r.OwnerSlot,
		})
	}

	for _, c := range d.Connections {
		plan.compileConnection(d, regions[c.From], regions[c.To], c)
	}

	for _, f := range d.Features {
		cmd, err := compileFeature(f)
		if err != nil {
			// Validate already vetted features; this guards direct Plan use.
			return nil, err
		}
		plan.Commands = append(plan.Commands, cmd)
	}

	return plan, nil
}

// connectionWidth resolves the corridor width for a connection kind.
func connectionWidth(c Connection) float64 {
	if c.Kind == ConnNarrow {
		return NarrowWidth
	}
	if c.Width > 0 {
		return c.Width
	}
	return DefaultConnectionWidth
}

// edgePoint walks from a region center toward target, stopping just inside
// the region rim, so corridors bridge the perimeter instead of re-painting
// the region interior.
func edgePoint(r Region, target geom.Point) geom.Point {
	d := r.Pos.Dist(target)
	if d == 0 || r.Radius == 0 {
		return r.Pos
	}
	t := (r.Radius - 1) / d
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return geom.Point{
		X: r.Pos.X + (target.X-r.Pos.X)*t,
		Y: r.Pos.Y + (target.Y-r.Pos.Y)*t,
	}
}

// compileConnection lowers one declared connection into ramp or
// ground-clearing commands along the straight line or custom waypoints.
func (p *Plan) compileConnection(d *Definition, from, to Region, c Connection) {
	width := connectionWidth(c)

	// Route: region edge → waypoints → region edge.
	route := make([]geom.Point, 0, len(c.Waypoints)+2)
	firstTarget := to.Pos
	if len(c.Waypoints) > 0 {
		firstTarget = c.Waypoints[0]
	}
	route = append(route, edgePoint(from, firstTarget))
	route = append(route, c.Waypoints...)
	lastTarget := from.Pos
	if len(c.Waypoints) > 0 {
		lastTarget = c.Waypoints[len(c.Waypoints)-1]
	}
	route = append(route, edgePoint(to, lastTarget))

	eFrom := d.RegionElevation(from)
	eTo := d.RegionElevation(to)

	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]
		switch c.Kind {
		case ConnRamp:
			p.Commands = append(p.Commands, paint.Ramp(a, b, width))
		default:
			// Ground-clearing: flatten the corridor between the two region
			// elevations and shed blocking features so the cliff rings the
			// endpoints painted do not wall off their own connection.
			segFrom := lerpElev(eFrom, eTo, float64(i-1)/float64(len(route)-1))
			segTo := lerpElev(eFrom, eTo, float64(i)/float64(len(route)-1))
			p.Commands = append(p.Commands, paint.Corridor(a, b, width, segFrom, segTo, paint.EaseLinear))
			if c.Kind == ConnBridge {
				p.Commands = append(p.Commands, paint.Road(geom.Line{A: a, B: b, HalfWidth: width / 2}))
			}
		}
	}

	if c.Kind == ConnDestructible {
		// Rocks sit at the route midpoint.
		mid := route[len(route)/2]
		if len(route)%2 == 0 {
			a, b := route[len(route)/2-1], route[len(route)/2]
			mid = geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		}
		p.Destructibles = append(p.Destructibles, Destructible{Pos: mid, Radius: width/2 + 1})
	}
}

// lerpElev interpolates two elevations at parameter t, rounding to the grid
// scale.
func lerpElev(a, b uint8, t float64) uint8 {
	return uint8(geom.Clamp(geom.Lerp(float64(a), float64(b), t)+0.5, 0, 255))
}

// compileFeature lowers one direct terrain feature.
func compileFeature(f TerrainFeature) (paint.Command, error) {
	if f.Kind == FeatureElevationGradient {
		ease := paint.EaseLinear
		if f.Ease == "smooth" {
			ease = paint.EaseSmooth
		}
		return paint.Gradient(f.From, f.To, f.Width, f.FromElevation, f.ToElevation, ease), nil
	}

	if f.Shape == nil {
		return paint.Command{}, fmt.Errorf("%w: %s needs a shape", ErrBadFeature, f.Kind)
	}
	shape, err := f.Shape.Shape()
	if err != nil {
		return paint.Command{}, err
	}
	switch f.Kind {
	case FeatureElevationArea:
		return paint.ElevationArea(shape, f.Elevation, f.Blend), nil
	case FeatureWater:
		return paint.Water(shape, f.Deep), nil
	case FeatureForest:
		return paint.Forest(shape, f.Dense), nil
	case FeatureVoid:
		return paint.Void(shape), nil
	case FeatureRoad:
		return paint.Road(shape), nil
	case FeatureMud:
		return paint.Mud(shape), nil
	case FeatureUnwalkable:
		return paint.Unwalkable(shape), nil
	}
	return paint.Command{}, fmt.Errorf("%w: kind %q", ErrBadFeature, f.Kind)
}
