// SPDX-License-Identifier: MIT

package direct

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// Sentinel errors returned by the direct solvers.
var (
	// ErrSingularMatrix indicates a pivot below the numerical-zero threshold.
	ErrSingularMatrix = errors.New("direct: matrix is singular to working precision")

	// ErrBadPivotTolerance indicates a non-positive or non-finite tolerance.
	ErrBadPivotTolerance = errors.New("direct: pivot tolerance must be positive and finite")
)

// DefaultPivotTolerance is the numerical-zero threshold for LU pivots.
const DefaultPivotTolerance = 1e-9

// Variant selects the LU convention.
type Variant int

const (
	// Crout produces a unit upper-triangular U.
	Crout Variant = iota

	// Doolittle produces a unit lower-triangular L.
	Doolittle
)

// String returns the display name of the variant.
func (v Variant) String() string {
	switch v {
	case Crout:
		return "Crout"
	case Doolittle:
		return "Doolittle"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Options configures a direct solve.
type Options struct {
	// PivotTolerance is the absolute threshold below which |pivot| is
	// treated as zero.
	PivotTolerance float64

	// ScaledPivot multiplies PivotTolerance by max(1, ‖A‖∞).
	ScaledPivot bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the literal 1e-9 threshold, unscaled.
func DefaultOptions() Options {
	return Options{PivotTolerance: DefaultPivotTolerance}
}

// WithPivotTolerance overrides the numerical-zero threshold.
// Non-positive or non-finite values surface as ErrBadPivotTolerance.
func WithPivotTolerance(tol float64) Option {
	return func(o *Options) {
		o.PivotTolerance = tol
	}
}

// WithScaledPivot makes the threshold relative to the matrix scale.
func WithScaledPivot() Option {
	return func(o *Options) {
		o.ScaledPivot = true
	}
}

// threshold resolves the effective pivot threshold for rows.
func (o Options) threshold(rows [][]float64) (float64, error) {
	if !(o.PivotTolerance > 0) || math.IsInf(o.PivotTolerance, 1) {
		return 0, fmt.Errorf("%w: got %g", ErrBadPivotTolerance, o.PivotTolerance)
	}
	if !o.ScaledPivot {
		return o.PivotTolerance, nil
	}

	var norm, rowSum float64
	for _, row := range rows {
		rowSum = 0
		for _, v := range row {
			rowSum += math.Abs(v)
		}
		norm = math.Max(norm, rowSum)
	}

	return o.PivotTolerance * math.Max(1, norm), nil
}

// Result is the outcome of one LU solve: the factors, the intermediate
// vector Z of the forward pass (L·Z = b) and the solution X (U·X = Z).
type Result struct {
	Variant  Variant
	L        *matrix.Dense
	U        *matrix.Dense
	Z        []float64
	Solution []float64
}
