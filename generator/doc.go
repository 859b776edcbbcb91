// SPDX-License-Identifier: MIT
// Package: polyarea/generator
//
// Package generator synthesizes random simple polygons around the origin.
//
// Algorithm (Generate):
//  1. θᵢ = 2π·i/n for i ∈ [0, n) - evenly spaced base directions.
//  2. rᵢ ~ U[lo, hi] per vertex (default [0.8, 1.0]).
//  3. vᵢ = (cos θᵢ·rᵢ·R, sin θᵢ·rᵢ·R).
//  4. c  = mean of all vᵢ.
//  5. stable sort by atan2(vᵢ − c) ascending, so the ring is star-shaped
//     around c even when jitter moves vertices off their base direction.
//  6. geom.NewPolygon validates the ring; failures surface as ErrGeneration.
//
// Retrying is a caller decision. GenerateWithRetry packages the common
// "try k fresh samples" policy.
//
// Determinism:
//
//	All randomness comes from the rng.Source passed in; a seeded rng.New
//	yields identical polygons on every run.
//
// Complexity:
//
//	Time O(n log n) for the sort plus O(n²) for validation; memory O(n).
package generator
