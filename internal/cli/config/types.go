// SPDX-License-Identifier: MIT

// Package config provides configuration management for the linsolve CLI.
//
// Values are layered with koanf: built-in defaults, then an optional YAML
// file (linsolve.yaml), then LINSOLVE_* environment variables, then flags
// that were set explicitly on the command line.
package config

import (
	"github.com/katalvlaran/linsys/direct"
	"github.com/katalvlaran/linsys/solver"
)

// Config holds all CLI configuration options.
type Config struct {
	Method         string  `koanf:"method"`
	Relaxation     float64 `koanf:"relaxation"`
	Tolerance      float64 `koanf:"tolerance"`
	MaxIterations  int     `koanf:"max_iterations"`
	PivotTolerance float64 `koanf:"pivot_tolerance"`
	ScaledPivot    bool    `koanf:"scaled_pivot"`
	Precision      int     `koanf:"precision"`
	Verbose        bool    `koanf:"verbose"`
	OutputFormat   string  `koanf:"output"`
}

// Default configuration values.
const (
	DefaultMethod    = "gauss-seidel"
	DefaultPrecision = 4
	DefaultOutput    = "table"
)

// Supported output formats.
const (
	OutputTable    = "table"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
)

// OutputFormats lists the accepted --output values.
var OutputFormats = []string{OutputTable, OutputMarkdown, OutputJSON}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Method:         DefaultMethod,
		Relaxation:     solver.DefaultRelaxation,
		Tolerance:      solver.DefaultTolerance,
		MaxIterations:  solver.DefaultMaxIterations,
		PivotTolerance: direct.DefaultPivotTolerance,
		Precision:      DefaultPrecision,
		OutputFormat:   DefaultOutput,
	}
}

func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"method":          d.Method,
		"relaxation":      d.Relaxation,
		"tolerance":       d.Tolerance,
		"max_iterations":  d.MaxIterations,
		"pivot_tolerance": d.PivotTolerance,
		"scaled_pivot":    d.ScaledPivot,
		"precision":       d.Precision,
		"verbose":         d.Verbose,
		"output":          d.OutputFormat,
	}
}
