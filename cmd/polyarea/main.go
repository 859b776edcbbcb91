// SPDX-License-Identifier: MIT

// Command polyarea generates a random simple polygon, computes its exact
// area with the shoelace formula and searches for the smallest doubling
// sample count at which a Monte Carlo estimate meets a relative error.
//
// Usage:
//
//	polyarea [-config run.yaml] [-vertices 100] [-radius 10] [-error 0.01]
//	         [-max-samples 1000000] [-seed N] [-trials N] [-workers N]
//	         [-time-limit 5s] [-format text|json|yaml] [-geojson out.json]
//	         [-plot convergence.png]
//
// Flags set on the command line override values from the -config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	cfg, err := parseConfig(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyarea:", err)
		return 2
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyarea:", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, log, os.Stdout, os.Stderr); err != nil {
		log.Error("run failed", zap.Error(err))
		return 1
	}

	return 0
}

// newLogger builds a console logger on stderr at the named level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %w", ErrConfig, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
