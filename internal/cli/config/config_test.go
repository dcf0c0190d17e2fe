// SPDX-License-Identifier: MIT
package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/solver"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linsolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "config file")
	flags.String("method", "", "method")
	flags.Int("max-iterations", 0, "sweeps")
	flags.Float64("relaxation", 0, "omega")
	flags.String("output", "", "format")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()

	path := writeConfig(t, `method: Jacobi
relaxation: 0.8
tolerance: 1e-9
max_iterations: 500
scaled_pivot: true
output: MD
`)
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "jacobi", cfg.Method)
	assert.InDelta(t, 0.8, cfg.Relaxation, 0)
	assert.InDelta(t, 1e-9, cfg.Tolerance, 0)
	assert.Equal(t, 500, cfg.MaxIterations)
	assert.True(t, cfg.ScaledPivot)
	assert.Equal(t, OutputMarkdown, cfg.OutputFormat)
	assert.Equal(t, path, GetConfigFileUsed())
}

// TestLoadConfig_Precedence checks flags > env > file > defaults.
func TestLoadConfig_Precedence(t *testing.T) {
	ResetConfig()

	path := writeConfig(t, "method: crout\nmax_iterations: 10\nrelaxation: 1.1\n")
	t.Setenv("LINSOLVE_MAX_ITERATIONS", "20")
	t.Setenv("LINSOLVE_METHOD", "doolittle")

	flags := testFlags()
	require.NoError(t, flags.Set("method", "jacobi"))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "jacobi", cfg.Method, "flag should override env and file")
	assert.Equal(t, 20, cfg.MaxIterations, "env should override file when the flag is unset")
	assert.InDelta(t, 1.1, cfg.Relaxation, 0, "file should override defaults")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"unknown method", "method: cholesky\n", solver.ErrUnknownMethod},
		{"relaxation out of range", "relaxation: 2.5\n", solver.ErrInvalidConfiguration},
		{"zero tolerance", "tolerance: 0\n", solver.ErrInvalidConfiguration},
		{"bad precision", "precision: 40\n", solver.ErrInvalidConfiguration},
		{"bad output", "output: xml\n", ErrInvalidOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestSolverConfig(t *testing.T) {
	cfg := Default()
	cfg.Method = "sor"
	cfg.Relaxation = 1.25

	sc, err := cfg.SolverConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, solver.GaussSeidel, sc.Method)
	assert.True(t, sc.Relaxed)
	assert.InDelta(t, 1.25, sc.Relaxation, 0)
	require.NoError(t, sc.Validate())

	cfg.Method = "gauss-seidel"
	sc, err = cfg.SolverConfig(nil)
	require.NoError(t, err)
	assert.False(t, sc.Relaxed)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), NewLogger(&buf, true))
	GetLogger(ctx).Debug("hello", "n", 2)
	assert.Contains(t, buf.String(), "hello")

	buf.Reset()
	quiet := NewLogger(&buf, false)
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	// fallback is a discard logger, never nil
	assert.NotNil(t, GetLogger(context.Background()))
}
