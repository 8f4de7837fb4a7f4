// Package geom provides the pure 2D shape primitives the raster pipeline
// paints with: circle, rectangle, ellipse, polygon, line segment and path.
//
// What:
//
//   - Shape: containment, bounding box and signed distance for each primitive.
//   - Line/Path carry a half-width, so they describe corridors, not curves.
//   - Interpolation helpers (Lerp, Smoothstep) shared by elevation blending.
//
// Why:
//
//   - The paint engine iterates a shape's integer bounds and asks Contains
//     per cell; keeping shapes closed-form keeps rasterization trivial.
//   - Signed distance drives elevation blend rings (inside < 0, outside > 0).
//
// Complexity:
//
//   - Circle/Rect/Ellipse: O(1) per query.
//   - Polygon: O(n) per query (even-odd ray crossing over n vertices).
//   - Line: O(1); Path: O(k) over k segments.
//
// All functions are pure; no shape mutates after construction.
package geom
