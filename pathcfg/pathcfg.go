// Package pathcfg centralizes the physical walkability constants shared by
// map generation and runtime pathfinding, so that a map proven connected at
// generation time stays connected for the agents that later walk it.
//
// Everything here is a plain constant or a closed-form function of constants:
// no options, no state. Both the paint engine (ramp sizing), the connectivity
// analyzer (climb checks) and the validator (ramp suggestions) read from this
// single source.
package pathcfg

//-----------------------------------------------------------------------------
// Elevation & Slope Constants
//-----------------------------------------------------------------------------

// WalkableClimb is the maximum elevation delta (in elevation units, 0..255)
// a unit may traverse between adjacent cells without a ramp.
const WalkableClimb uint8 = 16

// CliffThreshold is the minimum elevation delta between 8-neighbors that
// classifies the boundary as a cliff, unless a ramp covers it.
// Invariant: CliffThreshold > WalkableClimb, otherwise every legal step
// would also be a cliff.
const CliffThreshold uint8 = 32

// MaxSlopePerCell is the maximum elevation change a ramp may climb per cell
// along its long axis. Ramps shorter than the implied minimum length are
// auto-extended by the paint engine.
const MaxSlopePerCell uint8 = 8

//-----------------------------------------------------------------------------
// Ramp Sizing
//-----------------------------------------------------------------------------

// MinRampLength returns the minimum ramp length (in cells) able to climb the
// given elevation delta without exceeding MaxSlopePerCell. A zero delta needs
// no slope and yields 1.
//
// Complexity: O(1).
func MinRampLength(delta uint8) int {
	if delta == 0 {
		return 1
	}
	// Ceiling division: the last partial cell still counts.
	return (int(delta) + int(MaxSlopePerCell) - 1) / int(MaxSlopePerCell)
}

// ClimbWalkable reports whether the elevation delta between two adjacent
// cells is traversable without a ramp.
//
// Complexity: O(1).
func ClimbWalkable(a, b uint8) bool {
	if a > b {
		return a-b <= WalkableClimb
	}
	return b-a <= WalkableClimb
}
