// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"

	"github.com/katalvlaran/linsys/diagnostics"
	"github.com/katalvlaran/linsys/matrix"
)

// Method selects which iterate the sweep reads from.
type Method int

const (
	// Jacobi reads every σ term from the previous full iterate.
	Jacobi Method = iota

	// GaussSeidel reads already-updated components of the current sweep.
	GaussSeidel
)

// String returns the method's display name.
func (m Method) String() string {
	switch m {
	case Jacobi:
		return "Jacobi"
	case GaussSeidel:
		return "Gauss-Seidel"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Defaults applied by DefaultOptions.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
	DefaultRelaxation    = 1.0
)

// Options configures a stationary solve.
//
// Method        – Jacobi or GaussSeidel.
// Relaxed       – true when a relaxation factor was supplied (JOR / SOR).
// Omega         – relaxation factor ω; must lie in (0,2) when Relaxed.
// Tolerance     – stop once the L∞ step drops below it; must be > 0.
// MaxIterations – sweep budget; must be ≥ 1.
// OnIteration   – per-sweep hook: 1-based sweep, new iterate (read-only), L∞ step.
type Options struct {
	Method        Method
	Relaxed       bool
	Omega         float64
	Tolerance     float64
	MaxIterations int
	OnIteration   func(k int, x []float64, step float64)

	// first error recorded while applying options
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Gauss-Seidel, unrelaxed, tolerance 1e-6 and a
// budget of 100 sweeps, with a no-op OnIteration hook.
func DefaultOptions() Options {
	return Options{
		Method:        GaussSeidel,
		Relaxed:       false,
		Omega:         DefaultRelaxation,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		OnIteration:   func(int, []float64, float64) {},
	}
}

// WithMethod selects Jacobi or Gauss-Seidel.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != Jacobi && m != GaussSeidel {
			o.record(fmt.Errorf("%w: unknown method %d", ErrInvalidConfiguration, int(m)))
			return
		}
		o.Method = m
	}
}

// WithRelaxation enables JOR / SOR with factor ω. ω = 1 reproduces the
// unrelaxed method exactly; ω outside (0,2) surfaces as
// ErrInvalidConfiguration when Solve is called.
func WithRelaxation(omega float64) Option {
	return func(o *Options) {
		o.Relaxed = true
		o.Omega = omega
	}
}

// WithTolerance sets the L∞ stopping threshold ε (> 0).
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithMaxIterations sets the sweep budget (≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithOnIteration registers a per-sweep callback. A nil fn is ignored.
func WithOnIteration(fn func(k int, x []float64, step float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// record keeps the first option error only.
func (o *Options) record(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Validate reports the first violated range constraint as
// ErrInvalidConfiguration. Ranges are checked before any computation.
func (o Options) Validate() error {
	if o.err != nil {
		return o.err
	}
	// NaN fails every comparison, so the checks are written to reject it.
	if !(o.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be > 0, got %g", ErrInvalidConfiguration, o.Tolerance)
	}
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations must be ≥ 1, got %d", ErrInvalidConfiguration, o.MaxIterations)
	}
	if o.Relaxed && !(o.Omega > 0 && o.Omega < 2) {
		return fmt.Errorf("%w: relaxation must lie in (0,2), got %g", ErrInvalidConfiguration, o.Omega)
	}

	return nil
}

// Variant returns the iteration-map variant these options describe.
func (o Options) Variant() Variant {
	omega := DefaultRelaxation
	if o.Relaxed {
		omega = o.Omega
	}

	return Variant{Method: o.Method, Relaxed: o.Relaxed, Omega: omega}
}

// Result is the outcome of one stationary solve. It is freshly allocated per
// call and shares no memory with the inputs.
//
// Trace holds every iterate starting with x_0 = 0, so len(Trace) ==
// Iterations+1; Errors holds one L∞ step per sweep, len(Errors) == Iterations.
type Result struct {
	Variant    Variant
	Solution   []float64
	Converged  bool
	Iterations int
	Trace      [][]float64
	Errors     []float64

	// Split is the L/D/U decomposition of A the iteration map is built from.
	Split matrix.Splitting

	// Dominance is advisory; a non-dominant matrix may still converge.
	Dominance diagnostics.Dominance

	// Map is nil when the splitting cannot be inverted; MapErr then wraps
	// matrix.ErrSingular.
	Map    *IterationMap
	MapErr error
}

// Status renders the outcome the way the result header shows it.
func (r *Result) Status() string {
	if r.Converged {
		return fmt.Sprintf("Converged in %d iterations", r.Iterations)
	}

	return "Maximum iterations reached"
}

// FinalError returns the last L∞ step, or 0 before any sweep.
func (r *Result) FinalError() float64 {
	if len(r.Errors) == 0 {
		return 0
	}

	return r.Errors[len(r.Errors)-1]
}
