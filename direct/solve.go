// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"

	"github.com/katalvlaran/linsys/diagnostics"
	"github.com/katalvlaran/linsys/matrix"
)

// Solve factors A with the chosen variant and solves L·Z = b, U·X = Z.
//
// Errors:
//   - matrix shape errors for a malformed (A, b).
//   - ErrBadPivotTolerance, ErrSingularMatrix from Factor; no partial result.
func Solve(a matrix.Matrix, b []float64, v Variant, opts ...Option) (*Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("direct.Solve: %w", err)
	}
	l, u, err := Factor(a, v, opts...)
	if err != nil {
		return nil, fmt.Errorf("direct.Solve: %w", err)
	}

	// factor diagonals are either 1 or above the pivot threshold
	z, err := forward(l.ToRows(), b)
	if err != nil {
		return nil, fmt.Errorf("direct.Solve: %w", err)
	}
	x, err := backward(u.ToRows(), z)
	if err != nil {
		return nil, fmt.Errorf("direct.Solve: %w", err)
	}

	return &Result{Variant: v, L: l, U: u, Z: z, Solution: x}, nil
}

// Comparison holds Crout's and Doolittle's outcomes for the same system.
// A variant that failed has a nil result and a non-nil error.
type Comparison struct {
	Crout        *Result
	CroutErr     error
	Doolittle    *Result
	DoolittleErr error

	// MaxDeviation is max_i |x_crout[i] − x_doolittle[i]|; it is only
	// meaningful when both variants succeeded.
	MaxDeviation float64
}

// Both reports whether both variants produced a solution.
func (c *Comparison) Both() bool { return c.Crout != nil && c.Doolittle != nil }

// Compare solves A·x = b with both conventions. Only shape errors fail the
// call; per-variant failures are recorded in the Comparison.
func Compare(a matrix.Matrix, b []float64, opts ...Option) (*Comparison, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("direct.Compare: %w", err)
	}

	cmp := &Comparison{}
	cmp.Crout, cmp.CroutErr = Solve(a, b, Crout, opts...)
	cmp.Doolittle, cmp.DoolittleErr = Solve(a, b, Doolittle, opts...)
	if cmp.Both() {
		// both solutions have length n
		cmp.MaxDeviation, _ = diagnostics.LInf(cmp.Crout.Solution, cmp.Doolittle.Solution)
	}

	return cmp, nil
}
