package forge

import (
	"fmt"

	"github.com/velmara/gridforge/analyze"
	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/fixer"
	"github.com/velmara/gridforge/grid"
	"github.com/velmara/gridforge/mapdata"
	"github.com/velmara/gridforge/mapdef"
	"github.com/velmara/gridforge/paint"
	"github.com/velmara/gridforge/placement"
	"github.com/velmara/gridforge/validate"
)

// Generate runs the whole pipeline over a declarative definition.
//
// The returned validation result is nil when the definition disables
// connectivity checking. A non-nil result with errors still comes with a
// complete map; strict callers decide what to do with it.
//
// Complexity: O(width×height × nodes) dominated by the flood fills.
func Generate(def *mapdef.Definition) (*mapdata.MapData, *validate.Result, error) {
	plan, err := mapdef.Compile(def)
	if err != nil {
		return nil, nil, err
	}

	g, err := grid.New(def.Width, def.Height, def.Floor())
	if err != nil {
		return nil, nil, err
	}
	if err := paint.Apply(g, plan.Commands); err != nil {
		return nil, nil, fmt.Errorf("forge: paint: %w", err)
	}
	paint.Classify(g)

	var (
		graph *conngraph.Graph
		res   *validate.Result
	)
	opts := def.Options
	if opts.ValidateConnectivity || opts.AutoFixConnectivity || opts.Debug {
		graph, err = analyze.Analyze(g, plan.Nodes)
		if err != nil {
			return nil, nil, fmt.Errorf("forge: analyze: %w", err)
		}
		checked := validate.Check(graph)
		res = &checked

		if !checked.Valid && opts.AutoFixConnectivity {
			rep, err := fixer.Fix(g, plan.Nodes, checked)
			if err != nil {
				return nil, nil, fmt.Errorf("forge: fix: %w", err)
			}
			if rep.Graph != nil {
				graph = rep.Graph
			}
			res = &rep.Revalidated
		}
	}

	objects, err := placement.Place(g, def, plan.Destructibles)
	if err != nil {
		return nil, nil, fmt.Errorf("forge: placement: %w", err)
	}

	md := &mapdata.MapData{
		ID:          mapdata.NewID(def.ID, opts.Seed),
		Name:        def.Name,
		Width:       def.Width,
		Height:      def.Height,
		Biome:       def.Biome,
		Seed:        opts.Seed,
		PlayerCount: def.PlayerCount(),
		Terrain:     g.Rows(),

		Spawns:        objects.Spawns,
		Expansions:    objects.Expansions,
		WatchTowers:   objects.WatchTowers,
		Ramps:         objects.Ramps,
		Destructibles: objects.Destructibles,
		Decorations:   objects.Decorations,
		Resources:     objects.Resources,
	}
	if opts.Debug && graph != nil {
		export := graph.Export()
		md.Graph = &export
		if res != nil {
			md.Issues = res.Issues
		}
	}
	return md, res, nil
}
