// Package tsp - RNG utilities for randomized starting tours.
//
// Goals:
//   - Determinism: same seed ⇒ identical tour across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each call builds its own stream;
//     use DeriveSeed to give parallel workers independent seeds.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64-style finalizer, so nearby streams are uncorrelated.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// RandomTour returns a uniformly shuffled permutation of [0..n−1]
// (Fisher–Yates driven by rngFromSeed(seed)).
//
// Complexity: O(n) time, O(n) space.
func RandomTour(n int, seed int64) []int {
	tour := IdentityTour(n)
	r := rngFromSeed(seed)

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		tour[i], tour[j] = tour[j], tour[i]
	}

	return tour
}
