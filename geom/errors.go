// SPDX-License-Identifier: MIT
// Package: polyarea/geom
//
// errors.go - sentinel errors for polygon validation.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (vertex indices, counts) is attached with %w by geomErrorf.
//   • Validation order is fixed: size → finiteness → duplicates →
//     collinearity → simplicity → zero area. The first failing class is
//     reported.

package geom

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a ring with fewer than MinVertices points.
var ErrTooFewVertices = errors.New("geom: polygon needs at least 3 vertices")

// ErrNonFinite indicates a NaN or ±Inf coordinate.
var ErrNonFinite = errors.New("geom: non-finite coordinate")

// ErrDuplicateVertex indicates two vertices with identical coordinates.
var ErrDuplicateVertex = errors.New("geom: duplicate vertex")

// ErrDegenerate indicates a ring enclosing zero area (all points collinear).
var ErrDegenerate = errors.New("geom: degenerate polygon (zero area)")

// ErrSelfIntersecting indicates that two edges cross or overlap.
var ErrSelfIntersecting = errors.New("geom: polygon is not simple")

// geomErrorf attaches operation context to a sentinel while keeping it
// reachable through errors.Is.
func geomErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", op, sentinel, fmt.Sprintf(format, args...))
}
