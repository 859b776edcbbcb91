// SPDX-License-Identifier: MIT
// Package: polyarea/rng
//
// Package rng defines the random source consumed by the stochastic parts of
// polyarea (polygon synthesis and Monte Carlo sampling).
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: no process-wide generator; every consumer receives a
//     Source explicitly.
//   - Independence: Derive produces decorrelated child streams for parallel
//     workers.
//
// The only contract callers rely on is Source.Uniform(lo, hi), a uniform real
// in the closed interval [lo, hi]. Any generator can be plugged in by
// implementing it; *Rand is the bundled math/rand-backed implementation.
//
// Concurrency:
//   - *Rand is NOT goroutine-safe. Do not share one across goroutines.
//   - Use Derive to create one stream per worker.
package rng
