// SPDX-License-Identifier: MIT
// Package: polyarea/rng

package rng

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// A SplitMix64-style avalanche is applied so that neighbouring stream ids
// (0, 1, 2, ...) yield well separated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic stream for worker `stream`
// under the given parent seed. parent==0 follows the DefaultSeed policy.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-worker sources.
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) *Rand {
	if parent == 0 {
		parent = DefaultSeed
	}

	return New(nonZero(DeriveSeed(parent, stream)))
}

// Split derives a child stream from a live *Rand. The parent is advanced
// once so that repeated Split calls with the same stream id still differ.
func (g *Rand) Split(stream uint64) *Rand {
	return New(nonZero(DeriveSeed(g.Int63(), stream)))
}

// nonZero keeps a derived seed from collapsing onto the seed==0 default.
func nonZero(s int64) int64 {
	if s == 0 {
		return DefaultSeed + 1
	}

	return s
}
