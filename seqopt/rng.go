// Package seqopt - deterministic RNG plumbing for the search driver.
//
// All randomness in the package flows through this file.
//
// Goals:
//   - Determinism: same seed ⇒ identical populations, trials and results
//     across platforms; no time-based sources anywhere.
//   - Encapsulation: one RNG factory plus a stream deriver; the driver
//     never calls rand.New directly.
//   - Safety: pure helpers, no panics, no logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The driver is single-threaded;
//     if population evaluation is ever parallelized, derive one stream per
//     worker with deriveRNG instead of sharing.
package seqopt

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass Seed==0.
// The value is arbitrary but stable so defaults stay reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche (canonical constants; see Vigna
// 2014). Used to split one user seed into decorrelated substreams — the
// driver keeps population initialization and generation evolution on
// separate streams so changing one knob never shifts the other's draws.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream from a base RNG
// and a stream identifier. If base==nil, defaultRNGSeed is the parent.
// base.Int63() is consumed once so that reusing a stream id by mistake
// still yields distinct children.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
