// Package mapdef is the declarative map definition: a fully
// JSON-serializable description of regions, connections, terrain features,
// resources and generation options, plus the compiler that lowers it into
// the paint command vocabulary.
//
// What:
//
//   - Definition: named regions (main, natural, third, gold, center,
//     watchtower, pathway, ...) with circular footprints at coarse tiers or
//     fine-grained elevations, typed connections between region IDs, direct
//     terrain-feature shapes, vegetation/decoration densities, resource
//     templates and the generation option bag.
//   - Validate: structural checks before any raster work — duplicate region
//     IDs, connections referencing missing regions, biomes outside the six
//     canonical ones, unknown roles/kinds/templates.
//   - Compile: Definition → ordered []paint.Command plus the strategic node
//     list the analyzer floods from.
//
// Why:
//
//   - Both definition forms (imperative command lists and this schema)
//     converge on one raster vocabulary, so everything downstream of the
//     paint engine is agnostic to how the map was authored.
//
// Compilation rules:
//
//   - Regions become plateaus; elevated regions get a manual cliff ring on
//     their perimeter, which later ramp commands carve through.
//   - Connections become ramps (kind ramp) or flattening gradients (ground,
//     bridge, narrow, destructible) along the straight line or waypoints
//     between the two region edges.
//   - Elevation areas blend old/new elevation across a ring outside the
//     shape; gradients interpolate along a directed segment with linear or
//     smoothstep easing.
//
// Errors: all structural problems are sentinel-wrapped and joined, so one
// Validate call reports every defect at once.
package mapdef
