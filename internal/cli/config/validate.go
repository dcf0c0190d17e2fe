// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/katalvlaran/linsys/solver"
)

// ErrInvalidOutput indicates an unsupported --output value.
var ErrInvalidOutput = errors.New("config: unsupported output format")

const maxPrecision = 15

func (c *Config) normalize() {
	c.Method = strings.ToLower(strings.TrimSpace(c.Method))
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	if c.OutputFormat == "md" {
		c.OutputFormat = OutputMarkdown
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidOutput, c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("%w: precision must lie in [0,%d], got %d", solver.ErrInvalidConfiguration, maxPrecision, c.Precision)
	}
	sc, err := c.SolverConfig(nil)
	if err != nil {
		return err
	}
	return sc.Validate()
}

// SolverConfig maps the CLI configuration onto a solver.Config.
func (c *Config) SolverConfig(logger *slog.Logger) (solver.Config, error) {
	m, relaxed, err := solver.ParseVariant(c.Method)
	if err != nil {
		return solver.Config{}, err
	}
	return solver.Config{
		Method:         m,
		Relaxation:     c.Relaxation,
		Relaxed:        relaxed,
		Tolerance:      c.Tolerance,
		MaxIterations:  c.MaxIterations,
		PivotTolerance: c.PivotTolerance,
		ScaledPivot:    c.ScaledPivot,
		Logger:         logger,
	}, nil
}
