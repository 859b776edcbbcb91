// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polyarea/montecarlo"
)

// Output formats accepted by -format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrConfig marks a configuration that cannot drive a run.
var ErrConfig = errors.New("polyarea: invalid configuration")

// Config is the full set of run parameters. Zero Seed means time based.
type Config struct {
	Vertices        int           `yaml:"vertices"`
	Radius          float64       `yaml:"radius"`
	AcceptableError float64       `yaml:"acceptable_error"`
	MaxSamples      int           `yaml:"max_samples"`
	Seed            int64         `yaml:"seed"`
	Attempts        int           `yaml:"attempts"`
	Trials          int           `yaml:"trials"`
	Workers         int           `yaml:"workers"`
	TimeLimit       time.Duration `yaml:"time_limit"`
	Format          string        `yaml:"format"`
	GeoJSON         string        `yaml:"geojson"`
	Plot            string        `yaml:"plot"`
	LogLevel        string        `yaml:"log_level"`
	Progress        bool          `yaml:"progress"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Vertices:        100,
		Radius:          10,
		AcceptableError: montecarlo.DefaultAcceptableError,
		MaxSamples:      montecarlo.DefaultMaxSamples,
		Attempts:        10,
		Workers:         1,
		Format:          FormatText,
		LogLevel:        "info",
	}
}

// LoadConfig decodes the YAML file at path over cfg. Unknown keys are
// rejected.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	return nil
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Vertices < 3:
		return fmt.Errorf("%w: vertices must be ≥ 3, got %d", ErrConfig, c.Vertices)
	case !(c.Radius > 0) || math.IsInf(c.Radius, 0):
		return fmt.Errorf("%w: radius must be positive and finite, got %g", ErrConfig, c.Radius)
	case !(c.AcceptableError > 0) || math.IsInf(c.AcceptableError, 0):
		return fmt.Errorf("%w: error must be positive and finite, got %g", ErrConfig, c.AcceptableError)
	case c.MaxSamples < 1:
		return fmt.Errorf("%w: max samples must be ≥ 1, got %d", ErrConfig, c.MaxSamples)
	case c.Attempts < 1:
		return fmt.Errorf("%w: attempts must be ≥ 1, got %d", ErrConfig, c.Attempts)
	case c.Trials < 0 || c.Trials == 1:
		return fmt.Errorf("%w: trials must be 0 (off) or ≥ 2, got %d", ErrConfig, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrConfig, c.Workers)
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: time limit must be ≥ 0, got %s", ErrConfig, c.TimeLimit)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrConfig, c.Format)
	}

	return nil
}

// parseConfig builds the run configuration from args: defaults, then the
// -config file, then every flag set explicitly on the command line.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	var (
		fv   = DefaultConfig()
		path string
	)
	fs := flag.NewFlagSet("polyarea", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&path, "config", "", "YAML config file")
	fs.IntVar(&fv.Vertices, "vertices", fv.Vertices, "polygon vertex count")
	fs.Float64Var(&fv.Radius, "radius", fv.Radius, "nominal polygon radius")
	fs.Float64Var(&fv.AcceptableError, "error", fv.AcceptableError, "acceptable relative error")
	fs.IntVar(&fv.MaxSamples, "max-samples", fv.MaxSamples, "sample-count ceiling for the search")
	fs.Int64Var(&fv.Seed, "seed", fv.Seed, "random seed (0 = time based)")
	fs.IntVar(&fv.Attempts, "attempts", fv.Attempts, "polygon generation attempts")
	fs.IntVar(&fv.Trials, "trials", fv.Trials, "repeat trials at the found count (0 = off)")
	fs.IntVar(&fv.Workers, "workers", fv.Workers, "goroutines for the final estimate")
	fs.DurationVar(&fv.TimeLimit, "time-limit", fv.TimeLimit, "wall-clock budget for the search (0 = none)")
	fs.StringVar(&fv.Format, "format", fv.Format, "output format: text, json or yaml")
	fs.StringVar(&fv.GeoJSON, "geojson", fv.GeoJSON, "write the polygon as GeoJSON to this path")
	fs.StringVar(&fv.Plot, "plot", fv.Plot, "write a convergence chart (png, svg, pdf) to this path")
	fs.StringVar(&fv.LogLevel, "log-level", fv.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&fv.Progress, "progress", fv.Progress, "show a progress bar in trials mode")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %q", ErrConfig, fs.Args())
	}

	cfg := DefaultConfig()
	if path != "" {
		if err := LoadConfig(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if set, ok := overrides[f.Name]; ok {
			set(&cfg, &fv)
		}
	})

	return cfg, cfg.Validate()
}

// overrides copies one flag-bound field from src to dst.
var overrides = map[string]func(dst, src *Config){
	"vertices":    func(d, s *Config) { d.Vertices = s.Vertices },
	"radius":      func(d, s *Config) { d.Radius = s.Radius },
	"error":       func(d, s *Config) { d.AcceptableError = s.AcceptableError },
	"max-samples": func(d, s *Config) { d.MaxSamples = s.MaxSamples },
	"seed":        func(d, s *Config) { d.Seed = s.Seed },
	"attempts":    func(d, s *Config) { d.Attempts = s.Attempts },
	"trials":      func(d, s *Config) { d.Trials = s.Trials },
	"workers":     func(d, s *Config) { d.Workers = s.Workers },
	"time-limit":  func(d, s *Config) { d.TimeLimit = s.TimeLimit },
	"format":      func(d, s *Config) { d.Format = s.Format },
	"geojson":     func(d, s *Config) { d.GeoJSON = s.GeoJSON },
	"plot":        func(d, s *Config) { d.Plot = s.Plot },
	"log-level":   func(d, s *Config) { d.LogLevel = s.LogLevel },
	"progress":    func(d, s *Config) { d.Progress = s.Progress },
}
