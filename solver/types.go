// SPDX-License-Identifier: MIT

// Package solver is the unified entry point over the four solution methods:
// Jacobi and Gauss-Seidel (package iterative) and Crout and Doolittle
// (package direct).
//
// A Solver is built once from a Config and is safe for concurrent use: it
// holds no mutable state, and every Solve works on private copies of the
// system. Compare runs several methods on the same system concurrently.
//
// Each Report carries the method-specific result plus the diagnostics every
// caller wants: the residual ‖A·x − b‖∞, the diagonal-dominance report and,
// for iterative methods with an available map, the spectral radius of H.
package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/linsys/diagnostics"
	"github.com/katalvlaran/linsys/direct"
	"github.com/katalvlaran/linsys/iterative"
)

// Sentinel errors returned by the dispatcher.
var (
	// ErrInvalidConfiguration wraps iterative.ErrInvalidConfiguration, so
	// both sentinels match a rejected Config.
	ErrInvalidConfiguration = fmt.Errorf("solver: %w", iterative.ErrInvalidConfiguration)

	// ErrUnknownMethod indicates a method name or value outside the four
	// supported methods.
	ErrUnknownMethod = errors.New("solver: unknown method")

	// ErrNilSystem indicates a nil *matrix.System.
	ErrNilSystem = errors.New("solver: system is nil")
)

// Method enumerates the supported solution methods.
type Method int

const (
	// Jacobi is the simultaneous-update stationary method (JOR when relaxed).
	Jacobi Method = iota
	// GaussSeidel is the successive-update stationary method (SOR when relaxed).
	GaussSeidel
	// Crout is LU with unit upper-triangular U.
	Crout
	// Doolittle is LU with unit lower-triangular L.
	Doolittle
)

// Methods lists every method in display order.
var Methods = []Method{Jacobi, GaussSeidel, Crout, Doolittle}

var methodNames = map[Method]string{
	Jacobi:      "jacobi",
	GaussSeidel: "gauss-seidel",
	Crout:       "crout",
	Doolittle:   "doolittle",
}

// String returns the canonical lower-case name used in config files and flags.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return fmt.Sprintf("method(%d)", int(m))
}

// Iterative reports whether m is a stationary method.
func (m Method) Iterative() bool { return m == Jacobi || m == GaussSeidel }

// ParseMethod maps a name to a Method. Matching ignores case and accepts
// "_" or " " in place of "-", plus the aliases "jor", "sor", "gs", "seidel"
// and "lu".
func ParseMethod(s string) (Method, error) {
	m, _, err := ParseVariant(s)

	return m, err
}

// ParseVariant is ParseMethod that also reports whether the name selects a
// relaxed variant: "jor" and "sor" do, every other name does not.
func ParseVariant(s string) (m Method, relaxed bool, err error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	switch key {
	case "jacobi":
		return Jacobi, false, nil
	case "jor":
		return Jacobi, true, nil
	case "gauss-seidel", "gaussseidel", "gs", "seidel":
		return GaussSeidel, false, nil
	case "sor":
		return GaussSeidel, true, nil
	case "crout":
		return Crout, false, nil
	case "doolittle", "lu":
		return Doolittle, false, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Defaults applied by DefaultConfig.
const (
	DefaultRelaxation    = iterative.DefaultRelaxation
	DefaultTolerance     = iterative.DefaultTolerance
	DefaultMaxIterations = iterative.DefaultMaxIterations
)

// Config selects the method and its parameters.
//
// Relaxation applies to iterative methods only; any value other than 1, or
// Relaxed set, selects the relaxed variant (JOR / SOR). Tolerance and MaxIterations apply
// to iterative methods only; PivotTolerance and ScaledPivot to direct ones.
type Config struct {
	Method         Method
	Relaxation     float64
	Relaxed        bool
	Tolerance      float64
	MaxIterations  int
	PivotTolerance float64
	ScaledPivot    bool

	// OnIteration is forwarded to iterative solves (optional). Compare may
	// call it from several goroutines at once.
	OnIteration func(k int, x []float64, step float64)

	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// DefaultConfig returns Gauss-Seidel, ω = 1, ε = 1e-6, 100 sweeps and the
// literal 1e-9 pivot threshold.
func DefaultConfig() Config {
	return Config{
		Method:         GaussSeidel,
		Relaxation:     DefaultRelaxation,
		Tolerance:      DefaultTolerance,
		MaxIterations:  DefaultMaxIterations,
		PivotTolerance: direct.DefaultPivotTolerance,
	}
}

// Validate checks every range up front, independent of the selected method,
// so a Config that validates can be used with any method in Compare.
func (c Config) Validate() error {
	if _, ok := methodNames[c.Method]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMethod, int(c.Method))
	}
	if !(c.Relaxation > 0 && c.Relaxation < 2) {
		return fmt.Errorf("%w: relaxation must lie in (0,2), got %g", ErrInvalidConfiguration, c.Relaxation)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be > 0, got %g", ErrInvalidConfiguration, c.Tolerance)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations must be ≥ 1, got %d", ErrInvalidConfiguration, c.MaxIterations)
	}
	if !(c.PivotTolerance > 0) {
		return fmt.Errorf("%w: pivot tolerance must be > 0, got %g", ErrInvalidConfiguration, c.PivotTolerance)
	}

	return nil
}

// Report is the dispatcher's view of one solve.
type Report struct {
	Method   Method
	Solution []float64

	// Residual is ‖A·x − b‖∞ for Solution.
	Residual float64

	// Dominance is advisory for every method.
	Dominance diagnostics.Dominance

	// Exactly one of Iterative / Direct is set.
	Iterative *iterative.Result
	Direct    *direct.Result

	// SpectralRadius is ρ(H); only meaningful when HasSpectralRadius.
	SpectralRadius    float64
	HasSpectralRadius bool
}

// Label is the variant name shown to users: "Jacobi", "JOR",
// "Gauss-Seidel", "SOR", "Crout" or "Doolittle".
func (r *Report) Label() string {
	if r.Iterative != nil {
		return r.Iterative.Variant.String()
	}
	if r.Direct != nil {
		return r.Direct.Variant.String()
	}

	return r.Method.String()
}

// Converged is true for every successful direct solve and mirrors
// iterative.Result.Converged otherwise.
func (r *Report) Converged() bool {
	if r.Iterative != nil {
		return r.Iterative.Converged
	}

	return r.Direct != nil
}

// Converges reports ρ(H) < 1, the exact criterion for the stationary
// iteration to converge from any start. False when ρ is unavailable.
func (r *Report) Converges() bool {
	return r.HasSpectralRadius && r.SpectralRadius < 1
}

// Status is a one-line outcome summary.
func (r *Report) Status() string {
	if r.Iterative != nil {
		return r.Iterative.Status()
	}

	return "Solved by LU decomposition"
}

// Outcome is one method's entry in a Compare run. Err is a per-method
// failure (e.g. a singular pivot) and does not abort the other methods.
type Outcome struct {
	Method Method
	Report *Report
	Err    error
}
