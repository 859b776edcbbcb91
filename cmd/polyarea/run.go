// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"
	"github.com/paulmach/orb/planar"
	"go.uber.org/zap"

	"github.com/katalvlaran/polyarea/generator"
	"github.com/katalvlaran/polyarea/geom"
	"github.com/katalvlaran/polyarea/montecarlo"
	"github.com/katalvlaran/polyarea/rng"
)

// run generates a polygon, searches for a sample count that meets the
// configured error, re-estimates at that count and writes the report.
func run(ctx context.Context, cfg Config, log *zap.Logger, stdout, stderr io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rep := Report{
		RunID:           uuid.NewString(),
		Seed:            seed,
		Vertices:        cfg.Vertices,
		Radius:          cfg.Radius,
		AcceptableError: cfg.AcceptableError,
		MaxSamples:      cfg.MaxSamples,
	}
	log = log.With(zap.String("run_id", rep.RunID), zap.Int64("seed", seed))
	src := rng.New(seed)

	poly, err := generator.GenerateWithRetry(src, cfg.Vertices, cfg.Radius, cfg.Attempts)
	if err != nil {
		return fmt.Errorf("generate polygon: %w", err)
	}
	rep.ExactArea = geom.Area(poly)
	log.Info("polygon generated",
		zap.Int("vertices", poly.Len()),
		zap.Float64("exact_area", rep.ExactArea),
		zap.Float64("planar_area", math.Abs(planar.Area(toOrb(poly)))),
	)

	opts := montecarlo.DefaultSearchOptions()
	opts.AcceptableError = cfg.AcceptableError
	opts.MaxSamples = cfg.MaxSamples
	opts.TimeLimit = cfg.TimeLimit
	var trials []montecarlo.Trial
	opts.OnTrial = func(tr montecarlo.Trial) {
		trials = append(trials, tr)
		log.Debug("trial",
			zap.Int("index", tr.Index),
			zap.Int("samples", tr.Samples),
			zap.Float64("estimate", tr.Estimate),
			zap.Float64("relative_error", tr.RelativeError),
		)
	}

	res, err := montecarlo.SearchContext(ctx, poly, src, opts)
	switch {
	case errors.Is(err, montecarlo.ErrTimeLimit):
		rep.TimedOut = true
		log.Warn("search hit the time limit", zap.Int("trials", res.Trials), zap.Duration("elapsed", res.Elapsed))
	case err != nil:
		return fmt.Errorf("search: %w", err)
	}
	rep.Samples = res.Samples
	rep.LastSamples = res.LastSamples()
	rep.Trials = res.Trials
	rep.Converged = res.Converged
	rep.SearchEstimate = res.LastEstimate
	rep.Elapsed = res.Elapsed.String()
	log.Info("search finished",
		zap.Bool("converged", res.Converged),
		zap.Int("trials", res.Trials),
		zap.Int("samples", res.Samples),
		zap.Duration("elapsed", res.Elapsed),
	)

	if cfg.Workers > 1 {
		rep.Estimate, err = montecarlo.EstimateParallel(poly, res.Samples, cfg.Workers, seed)
	} else {
		rep.Estimate, err = montecarlo.Estimate(poly, res.Samples, src)
	}
	if err != nil {
		return fmt.Errorf("final estimate: %w", err)
	}
	rep.RelativeError = math.Abs(rep.Estimate-rep.ExactArea) / rep.ExactArea

	if cfg.Trials > 0 {
		st, err := runTrials(poly, src, cfg, trialSamples(res), stderr)
		if err != nil {
			return fmt.Errorf("trials: %w", err)
		}
		rep.Stats = summarize(st)
		log.Info("trials finished", zap.Int("trials", st.Trials), zap.Float64("std_dev", st.StdDev))
	}

	if cfg.GeoJSON != "" {
		if err = writeGeoJSON(cfg.GeoJSON, poly, rep); err != nil {
			return err
		}
		log.Info("polygon exported", zap.String("path", cfg.GeoJSON))
	}
	if cfg.Plot != "" && len(trials) > 0 {
		if err = writeConvergencePlot(cfg.Plot, trials, cfg.AcceptableError); err != nil {
			return err
		}
		log.Info("convergence plot written", zap.String("path", cfg.Plot))
	}

	return rep.Write(stdout, cfg.Format)
}

// trialSamples is the count the last search trial used, or the initial
// count when the search ran no trial.
func trialSamples(res montecarlo.ConvergenceResult) int {
	if n := res.LastSamples(); n > 0 {
		return n
	}

	return montecarlo.DefaultInitialSamples
}

func runTrials(p geom.Polygon, src rng.Source, cfg Config, samples int, stderr io.Writer) (montecarlo.TrialStats, error) {
	opts := montecarlo.TrialOptions{Samples: samples, Trials: cfg.Trials}
	if cfg.Progress {
		bar := pb.New(cfg.Trials)
		bar.SetWriter(stderr)
		bar.Start()
		defer bar.Finish()
		opts.Progress = func(done, _ int) { bar.SetCurrent(int64(done)) }
	}

	return montecarlo.RunTrials(p, src, opts)
}
