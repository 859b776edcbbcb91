// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/polyarea/montecarlo"
)

func TestWriteConvergencePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.svg")
	trials := []montecarlo.Trial{
		{Index: 0, Samples: 100, RelativeError: 0.08},
		{Index: 1, Samples: 200, RelativeError: 0.03},
		{Index: 2, Samples: 400, RelativeError: 0.004},
	}
	require.NoError(t, writeConvergencePlot(path, trials, 0.01))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	assert.ErrorIs(t, writeConvergencePlot(path, nil, 0.01), errNoTrials)
}

func TestRun_WritesPlot(t *testing.T) {
	cfg := smallConfig()
	cfg.Plot = filepath.Join(t.TempDir(), "conv.png")

	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t), &bytes.Buffer{}, &bytes.Buffer{}))
	info, err := os.Stat(cfg.Plot)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
