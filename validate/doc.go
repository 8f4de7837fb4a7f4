// Package validate applies game-design rules to a derived connectivity
// graph and reports structured issues, each optionally carrying a
// machine-actionable suggested fix.
//
// Rules, each independent:
//
//  1. Every pair of mains must be mutually reachable (error).
//  2. Every main must reach its closest natural by straight-line distance
//     (error).
//  3. An island holding a main outside the main game area (the island with
//     the most mains) is an error; an island holding expansions but no
//     main is a warning.
//  4. A blocked main↔natural or natural↔third edge within 100 distance
//     units whose elevation delta exceeds the walkable climb is a warning
//     suggesting a ramp.
//
// A graph is valid iff it has zero error-severity issues; warnings never
// block validity. Ramp suggestions span clamp(distance/5, 8, 12) cells
// around the pair midpoint, so the fixer can paint them verbatim.
//
// Validation is a pure function: it never mutates the graph and never
// fails — broken maps produce issues, not errors.
package validate
