// SPDX-License-Identifier: MIT
// Package rng_test validates determinism and range guarantees of the bundled
// random source.
package rng_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyarea/rng"
)

// TestNew_SeedDeterminism checks that two sources built from the same seed
// emit identical sequences.
func TestNew_SeedDeterminism(t *testing.T) {
	a, b := rng.New(42), rng.New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uniform(-3, 7), b.Uniform(-3, 7), "draw %d differs", i)
	}
}

// TestNew_ZeroSeedUsesDefault locks the seed==0 policy.
func TestNew_ZeroSeedUsesDefault(t *testing.T) {
	a, b := rng.New(0), rng.New(rng.DefaultSeed)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

// TestUniform_Range verifies every draw stays inside [lo, hi].
func TestUniform_Range(t *testing.T) {
	g := rng.New(7)
	cases := []struct{ lo, hi float64 }{
		{0, 1},
		{-10, -9.5},
		{0.8, 1.0},
		{-1e6, 1e6},
	}
	for _, tc := range cases {
		for i := 0; i < 1000; i++ {
			v := g.Uniform(tc.lo, tc.hi)
			assert.GreaterOrEqual(t, v, tc.lo)
			assert.LessOrEqual(t, v, tc.hi)
		}
	}
}

// TestUniform_EmptyInterval returns lo without consuming the stream.
func TestUniform_EmptyInterval(t *testing.T) {
	g := rng.New(3)
	ref := rng.New(3)
	assert.Equal(t, 2.5, g.Uniform(2.5, 2.5))
	assert.Equal(t, ref.Float64(), g.Float64(), "degenerate interval must not advance the stream")
}

// TestDerive_IndependentStreams checks that different stream ids diverge and
// that the same (parent, stream) pair is reproducible.
func TestDerive_IndependentStreams(t *testing.T) {
	s0, s1 := rng.Derive(99, 0), rng.Derive(99, 1)
	again := rng.Derive(99, 0)

	var diverged bool
	for i := 0; i < 16; i++ {
		x0, x1, y0 := s0.Float64(), s1.Float64(), again.Float64()
		assert.Equal(t, x0, y0)
		if x0 != x1 {
			diverged = true
		}
	}
	assert.True(t, diverged, "streams 0 and 1 must not coincide")
}

// TestDeriveSeed_Avalanche verifies neighbouring stream ids map to distinct seeds.
func TestDeriveSeed_Avalanche(t *testing.T) {
	seen := make(map[int64]struct{})
	for s := uint64(0); s < 256; s++ {
		seed := rng.DeriveSeed(1, s)
		_, dup := seen[seed]
		require.False(t, dup, "duplicate derived seed for stream %d", s)
		seen[seed] = struct{}{}
	}
}

// TestSplit_AdvancesParent ensures repeated splits with the same id differ.
func TestSplit_AdvancesParent(t *testing.T) {
	parent := rng.New(5)
	a, b := parent.Split(0), parent.Split(0)
	assert.NotEqual(t, a.Float64(), b.Float64())
}

// TestFromRand_Nil panics on nil input.
func TestFromRand_Nil(t *testing.T) {
	assert.Panics(t, func() { rng.FromRand(nil) })
	assert.NotPanics(t, func() { rng.FromRand(rand.New(rand.NewSource(1))) })
}
