// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// Factor computes A = L·U with the selected convention.
//
// Implementation:
//   - Stage 1: validate A (square, non-nil) and resolve the pivot threshold.
//   - Stage 2: run Crout (column-wise) or Doolittle (in-place elimination on
//     a private scratch copy).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - ErrBadPivotTolerance for an unusable threshold.
//   - ErrSingularMatrix (wrapped with the pivot index) on |pivot| < threshold.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factor(a matrix.Matrix, v Variant, opts ...Option) (l, u *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, fmt.Errorf("direct.Factor: %w", err)
	}
	d, err := matrix.AsDense(a)
	if err != nil {
		return nil, nil, fmt.Errorf("direct.Factor: %w", err)
	}
	rows := d.ToRows()

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	tol, err := cfg.threshold(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("direct.Factor: %w", err)
	}

	lr, ur, err := factorRows(rows, v, tol)
	if err != nil {
		return nil, nil, fmt.Errorf("direct.Factor(%s): %w", v, err)
	}
	if l, err = matrix.NewDenseFromRows(lr); err != nil {
		return nil, nil, fmt.Errorf("direct.Factor(%s): L: %w", v, err)
	}
	if u, err = matrix.NewDenseFromRows(ur); err != nil {
		return nil, nil, fmt.Errorf("direct.Factor(%s): U: %w", v, err)
	}

	return l, u, nil
}

// factorRows dispatches on the variant; rows is already a private copy.
func factorRows(rows [][]float64, v Variant, tol float64) (l, u [][]float64, err error) {
	switch v {
	case Crout:
		return crout(rows, tol)
	case Doolittle:
		return doolittle(rows, tol)
	default:
		return nil, nil, fmt.Errorf("direct: unknown variant %d", int(v))
	}
}

// crout builds a general lower L and a unit upper U column by column:
//
//	L[i][j] = A[i][j] − Σ_{k<j} L[i][k]·U[k][j]             for i ≥ j
//	U[j][i] = (A[j][i] − Σ_{k<j} L[j][k]·U[k][i]) / L[j][j]  for i > j
func crout(a [][]float64, tol float64) (l, u [][]float64, err error) {
	n := len(a)
	l, u = square(n), square(n)
	for i := 0; i < n; i++ {
		u[i][i] = 1
	}

	var i, j, k int
	var sum float64
	for j = 0; j < n; j++ {
		for i = j; i < n; i++ {
			sum = a[i][j]
			for k = 0; k < j; k++ {
				sum -= l[i][k] * u[k][j]
			}
			l[i][j] = sum
		}
		if math.Abs(l[j][j]) < tol {
			return nil, nil, fmt.Errorf("%w: pivot %d = %g", ErrSingularMatrix, j, l[j][j])
		}
		for i = j + 1; i < n; i++ {
			sum = a[j][i]
			for k = 0; k < j; k++ {
				sum -= l[j][k] * u[k][i]
			}
			u[j][i] = sum / l[j][j]
		}
	}

	return l, u, nil
}

// doolittle eliminates on w (a scratch copy it owns) and records the
// multipliers in a unit lower L and the pivot rows in U.
func doolittle(a [][]float64, tol float64) (l, u [][]float64, err error) {
	n := len(a)
	w := square(n)
	for i := range a {
		copy(w[i], a[i])
	}
	l, u = square(n), square(n)
	for i := 0; i < n; i++ {
		l[i][i] = 1
	}

	var i, j, k int
	for k = 0; k < n; k++ {
		if math.Abs(w[k][k]) < tol {
			return nil, nil, fmt.Errorf("%w: pivot %d = %g", ErrSingularMatrix, k, w[k][k])
		}
		u[k][k] = w[k][k]
		for i = k + 1; i < n; i++ {
			l[i][k] = w[i][k] / u[k][k]
			u[k][i] = w[k][i]
		}
		// trailing update of the scratch copy
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				w[i][j] -= l[i][k] * u[k][j]
			}
		}
	}

	return l, u, nil
}

// square allocates an n×n zero matrix as row slices over one backing array.
func square(n int) [][]float64 {
	buf := make([]float64, n*n)
	out := make([][]float64, n)
	for i := range out {
		out[i] = buf[i*n : (i+1)*n : (i+1)*n]
	}

	return out
}
