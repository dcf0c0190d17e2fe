// SPDX-License-Identifier: MIT

package diagnostics

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/matrix"
)

// LInf returns the Chebyshev distance max_i |x[i] − y[i]|.
// Fails with matrix.ErrDimensionMismatch if the lengths differ.
func LInf(x, y []float64) (float64, error) {
	if err := matrix.ValidateVecLen(y, len(x)); err != nil {
		return 0, fmt.Errorf("LInf: %w", err)
	}
	if len(x) == 0 {
		return 0, nil
	}

	return floats.Distance(x, y, math.Inf(1)), nil
}

// ResidualNorm returns ‖A·x − b‖∞, the largest equation violation of x.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
func ResidualNorm(a matrix.Matrix, x, b []float64) (float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return 0, fmt.Errorf("ResidualNorm: %w", err)
	}
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, fmt.Errorf("ResidualNorm: %w", err)
	}

	return floats.Distance(ax, b, math.Inf(1)), nil
}

// SpectralRadius returns ρ(H) = max |λ_i| over the (possibly complex)
// eigenvalues of the square matrix h.
//
// Implementation:
//   - Stage 1: copy h into a gonum mat.Dense (row-major, same layout).
//   - Stage 2: mat.Eigen with EigenNone (values only).
//   - Stage 3: fold cmplx.Abs into a maximum.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare on bad input.
//   - ErrEigenFailed if the factorization does not converge.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func SpectralRadius(h matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(h); err != nil {
		return 0, fmt.Errorf("SpectralRadius: %w", err)
	}
	d, err := matrix.AsDense(h)
	if err != nil {
		return 0, fmt.Errorf("SpectralRadius: %w", err)
	}

	n := d.Rows()
	flat := make([]float64, 0, n*n)
	for _, row := range d.ToRows() {
		flat = append(flat, row...)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, flat), mat.EigenNone); !ok {
		return 0, fmt.Errorf("SpectralRadius: %w", ErrEigenFailed)
	}

	var rho float64
	for _, lambda := range eig.Values(nil) {
		if abs := cmplx.Abs(lambda); abs > rho {
			rho = abs
		}
	}

	return rho, nil
}
