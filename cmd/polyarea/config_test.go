// SPDX-License-Identifier: MIT
package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 100, cfg.Vertices)
	assert.Equal(t, 0.01, cfg.AcceptableError)
	assert.Equal(t, 1_000_000, cfg.MaxSamples)
}

func TestParseConfig_FileThenFlags(t *testing.T) {
	path := writeFile(t, "run.yaml", `
vertices: 40
radius: 2.5
acceptable_error: 0.05
max_samples: 50000
seed: 42
time_limit: 3s
format: json
`)

	cfg, err := parseConfig([]string{"-config", path, "-vertices", "12", "-format", "yaml"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Vertices, "flag wins over file")
	assert.Equal(t, FormatYAML, cfg.Format, "flag wins over file")
	assert.Equal(t, 2.5, cfg.Radius)
	assert.Equal(t, 0.05, cfg.AcceptableError)
	assert.Equal(t, 50000, cfg.MaxSamples)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 3*time.Second, cfg.TimeLimit)
	assert.Equal(t, 10, cfg.Attempts, "untouched fields keep defaults")
}

// TestParseConfig_DefaultFlagDoesNotMaskFile: an unset flag never
// overwrites a file value even though it carries a default.
func TestParseConfig_DefaultFlagDoesNotMaskFile(t *testing.T) {
	path := writeFile(t, "run.yaml", "vertices: 7\n")
	cfg, err := parseConfig([]string{"-config", path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Vertices)
}

func TestParseConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"FewVertices", []string{"-vertices", "2"}},
		{"ZeroRadius", []string{"-radius", "0"}},
		{"NegativeError", []string{"-error", "-1"}},
		{"ZeroMaxSamples", []string{"-max-samples", "0"}},
		{"ZeroAttempts", []string{"-attempts", "0"}},
		{"SingleTrial", []string{"-trials", "1"}},
		{"ZeroWorkers", []string{"-workers", "0"}},
		{"NegativeTimeLimit", []string{"-time-limit", "-1s"}},
		{"UnknownFormat", []string{"-format", "xml"}},
		{"StrayArgument", []string{"extra"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(tc.args, io.Discard)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestParseConfig_BadInput(t *testing.T) {
	_, err := parseConfig([]string{"-vertices", "many"}, io.Discard)
	assert.Error(t, err)

	_, err = parseConfig([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = parseConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "bad.yaml", "vertexes: 10\n")
	_, err = parseConfig([]string{"-config", path}, io.Discard)
	assert.Error(t, err, "unknown keys are rejected")
}

func TestLoadConfig_EmptyFileKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(writeFile(t, "empty.yaml", ""), &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = newLogger("loud")
	assert.ErrorIs(t, err, ErrConfig)
}
