package fit

import "math/rand"

// defaultSeed replaces a caller seed of 0 so the zero Options value is
// deterministic rather than time-based.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for the given seed,
// applying the seed==0 policy.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed with a restart index into an
// independent stream seed using a SplitMix64-style finalizer, so that
// restarts draw uncorrelated start points from one caller seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
