// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polyarea/geom"
	"github.com/katalvlaran/polyarea/montecarlo"
)

// Report is the outcome of one run.
//
// Samples is the search's reported count, one doubling past the trial that
// ended the loop; LastSamples is the count that trial used. Estimate is a
// fresh estimate at Samples.
type Report struct {
	RunID           string        `json:"run_id" yaml:"run_id"`
	Seed            int64         `json:"seed" yaml:"seed"`
	Vertices        int           `json:"vertices" yaml:"vertices"`
	Radius          float64       `json:"radius" yaml:"radius"`
	AcceptableError float64       `json:"acceptable_error" yaml:"acceptable_error"`
	MaxSamples      int           `json:"max_samples" yaml:"max_samples"`
	ExactArea       float64       `json:"exact_area" yaml:"exact_area"`
	Estimate        float64       `json:"estimate" yaml:"estimate"`
	RelativeError   float64       `json:"relative_error" yaml:"relative_error"`
	SearchEstimate  float64       `json:"search_estimate" yaml:"search_estimate"`
	Samples         int           `json:"samples" yaml:"samples"`
	LastSamples     int           `json:"last_samples" yaml:"last_samples"`
	Trials          int           `json:"trials" yaml:"trials"`
	Converged       bool          `json:"converged" yaml:"converged"`
	TimedOut        bool          `json:"timed_out" yaml:"timed_out"`
	Elapsed         string        `json:"elapsed" yaml:"elapsed"`
	Stats           *TrialSummary `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// TrialSummary is the serialisable form of montecarlo.TrialStats.
type TrialSummary struct {
	Trials           int     `json:"trials" yaml:"trials"`
	Samples          int     `json:"samples" yaml:"samples"`
	Mean             float64 `json:"mean" yaml:"mean"`
	StdDev           float64 `json:"std_dev" yaml:"std_dev"`
	StdErr           float64 `json:"std_err" yaml:"std_err"`
	MeanAbsDeviation float64 `json:"mean_abs_deviation" yaml:"mean_abs_deviation"`
	RelativeBias     float64 `json:"relative_bias" yaml:"relative_bias"`
}

func summarize(st montecarlo.TrialStats) *TrialSummary {
	return &TrialSummary{
		Trials:           st.Trials,
		Samples:          st.Samples,
		Mean:             st.Mean,
		StdDev:           st.StdDev,
		StdErr:           st.StdErr,
		MeanAbsDeviation: st.MeanAbsDeviation,
		RelativeBias:     st.RelativeBias,
	}
}

// Write renders r to w in the given format.
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return r.writeText(w)
	default:
		return fmt.Errorf("%w: unknown format %q", ErrConfig, format)
	}
}

func (r Report) writeText(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("Run:            %s (seed %d)", r.RunID, r.Seed),
		fmt.Sprintf("Polygon:        %s vertices, radius %g", humanize.Comma(int64(r.Vertices)), r.Radius),
		fmt.Sprintf("Exact area:     %.6f", r.ExactArea),
		fmt.Sprintf("Estimated area: %.6f (relative error %.4f%%)", r.Estimate, 100*r.RelativeError),
		fmt.Sprintf("Minimum points: %s (last trial %s)", humanize.Comma(int64(r.Samples)), humanize.Comma(int64(r.LastSamples))),
		fmt.Sprintf("Converged:      %t after %d trials", r.Converged, r.Trials),
		fmt.Sprintf("Execution time: %s", r.Elapsed),
	}
	if r.TimedOut {
		lines = append(lines, "Search stopped at the time limit.")
	}
	if s := r.Stats; s != nil {
		lines = append(lines,
			fmt.Sprintf("Trials:         %s × %s samples", humanize.Comma(int64(s.Trials)), humanize.Comma(int64(s.Samples))),
			fmt.Sprintf("  mean %.6f  std dev %.6f  std err %.6f", s.Mean, s.StdDev, s.StdErr),
			fmt.Sprintf("  mean |dev| %.6f  bias %+.4f%%", s.MeanAbsDeviation, 100*s.RelativeBias),
		)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}

// toOrb converts p to a closed orb ring wrapped in a polygon.
func toOrb(p geom.Polygon) orb.Polygon {
	ring := make(orb.Ring, 0, p.Len()+1)
	for _, v := range p.Vertices() {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}

	return orb.Polygon{ring}
}

// polygonFeature wraps p and the headline figures of r as a GeoJSON
// feature collection.
func polygonFeature(p geom.Polygon, r Report) *geojson.FeatureCollection {
	shape := toOrb(p)
	f := geojson.NewFeature(shape)
	f.Properties["run_id"] = r.RunID
	f.Properties["exact_area"] = r.ExactArea
	f.Properties["estimate"] = r.Estimate
	f.Properties["samples"] = r.Samples
	f.Properties["converged"] = r.Converged
	f.Properties["wkt"] = wkt.MarshalString(shape)

	return geojson.NewFeatureCollection().Append(f)
}

func writeGeoJSON(path string, p geom.Polygon, r Report) error {
	data, err := polygonFeature(p, r).MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}

	return nil
}
