package placement

import "math/rand"

// defaultSeed replaces seed==0 so reproducible defaults stay reproducible.
const defaultSeed int64 = 1

// Substream identifiers, consumed in pipeline order.
const (
	streamVariants uint64 = iota + 1
	streamDecorations
	streamResources
)

// mixSeed folds a stream id into the parent seed with a SplitMix64-style
// finalizer so substreams are decorrelated even for adjacent ids.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns the deterministic RNG for one substream.
// Policy: seed==0 means defaultSeed.
func streamRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(mixSeed(seed, stream)))
}
