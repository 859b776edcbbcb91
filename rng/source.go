// SPDX-License-Identifier: MIT
// Package: polyarea/rng

package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Source provides uniformly distributed reals.
//
// Uniform returns a value in [lo, hi]. When lo == hi it returns lo.
// Implementations may assume lo <= hi.
type Source interface {
	Uniform(lo, hi float64) float64
}

// Rand is a deterministic Source backed by *math/rand.Rand.
type Rand struct {
	r *rand.Rand
}

var _ Source = (*Rand)(nil)

// New returns a deterministic *Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return &Rand{r: rand.New(rand.NewSource(s))}
}

// FromRand wraps an existing *rand.Rand. Panics on nil to surface the
// programmer error early.
func FromRand(r *rand.Rand) *Rand {
	if r == nil {
		panic("rng: FromRand(nil)")
	}

	return &Rand{r: r}
}

// Uniform returns lo + (hi-lo)·u with u drawn from [0, 1).
//
// Complexity: O(1).
func (g *Rand) Uniform(lo, hi float64) float64 {
	if lo == hi {
		return lo
	}

	return lo + (hi-lo)*g.r.Float64()
}

// Float64 returns a uniform value in [0, 1).
func (g *Rand) Float64() float64 {
	return g.r.Float64()
}

// Int63 returns a non-negative pseudo-random 63-bit integer. It advances the
// stream and is the parent value used by Split.
func (g *Rand) Int63() int64 {
	return g.r.Int63()
}
