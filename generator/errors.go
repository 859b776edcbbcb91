// SPDX-License-Identifier: MIT
// Package: polyarea/generator
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • ErrGeneration is joined with the geom validity sentinel that caused it,
//     so errors.Is(err, geom.ErrSelfIntersecting) also works.
//   • Option constructors panic on meaningless values; Generate never panics.

package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a malformed input detected before any sampling
// (vertex count < 3, non-positive or non-finite radius, attempts < 1).
var ErrInvalidArgument = errors.New("generator: invalid argument")

// ErrNeedSource indicates a nil rng.Source. It wraps ErrInvalidArgument.
var ErrNeedSource = fmt.Errorf("%w: random source is required", ErrInvalidArgument)

// ErrGeneration indicates that the synthesized ring failed validity checks.
var ErrGeneration = errors.New("generator: generated polygon is invalid")

// Method names used as error prefixes.
const (
	MethodGenerate          = "Generate"
	MethodGenerateWithRetry = "GenerateWithRetry"
)

// generatorErrorf prefixes a formatted message with the method name while
// keeping sentinel %w verbs intact.
func generatorErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
