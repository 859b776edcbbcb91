// Package polyarea compares two ways of measuring the area of a random
// simple polygon: the exact shoelace formula and Monte Carlo sampling of
// the bounding box. It answers one question: how many random points does
// the estimator need before it lands within a given relative error?
//
// 🚀 What is in the box?
//
//		• Geometry: validated simple polygons, shoelace area, strict
//		  point-in-polygon, segment intersection
//		• Generation: star-shaped random polygons around the origin
//		• Estimation: sequential and parallel Monte Carlo area estimates
//		• Search: doubling search for a sample count meeting an error bound
//		• Statistics: repeated-trial mean / stddev / bias summaries
//
// ✨ Why polyarea?
//
//   - Deterministic – every random draw goes through an injected rng.Source
//   - Honest geometry – boundary points are never "inside"
//   - Small API – plain functions, option structs, sentinel errors
//
// Packages:
//
//	geom/       - Point, Polygon, BoundingBox, Area, Contains, Validate
//	generator/  - Generate, GenerateWithRetry + functional options
//	montecarlo/ - Estimate, EstimateParallel, Search, RunTrials
//	rng/        - Source interface, seeded Rand, SplitMix64 stream derivation
//	cmd/polyarea - CLI: YAML config, JSON/YAML/text report, GeoJSON export
//	examples/   - runnable convergence sweep
//
// Quick ASCII example:
//
//	(0,1) ┌───┐ (1,1)
//	      │ • │      exact area 1; a point on an edge counts as outside
//	(0,0) └───┘ (1,0)
//
//	go install github.com/katalvlaran/polyarea/cmd/polyarea@latest
package polyarea
