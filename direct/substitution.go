// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// ForwardSubstitute solves L·z = b top to bottom:
//
//	z[i] = (b[i] − Σ_{j<i} L[i][j]·z[j]) / L[i][i]
//
// Only the lower triangle of l is read. A zero diagonal entry yields
// matrix.ErrSingular.
func ForwardSubstitute(l matrix.Matrix, b []float64) ([]float64, error) {
	rows, err := triangularInput(l, b)
	if err != nil {
		return nil, fmt.Errorf("direct.ForwardSubstitute: %w", err)
	}
	z, err := forward(rows, b)
	if err != nil {
		return nil, fmt.Errorf("direct.ForwardSubstitute: %w", err)
	}

	return z, nil
}

// BackSubstitute solves U·x = z bottom to top:
//
//	x[i] = (z[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i]
//
// Only the upper triangle of u is read. A zero diagonal entry yields
// matrix.ErrSingular.
func BackSubstitute(u matrix.Matrix, z []float64) ([]float64, error) {
	rows, err := triangularInput(u, z)
	if err != nil {
		return nil, fmt.Errorf("direct.BackSubstitute: %w", err)
	}
	x, err := backward(rows, z)
	if err != nil {
		return nil, fmt.Errorf("direct.BackSubstitute: %w", err)
	}

	return x, nil
}

func triangularInput(t matrix.Matrix, v []float64) ([][]float64, error) {
	if err := matrix.ValidateSystem(t, v); err != nil {
		return nil, err
	}
	d, err := matrix.AsDense(t)
	if err != nil {
		return nil, err
	}

	return d.ToRows(), nil
}

func forward(l [][]float64, b []float64) ([]float64, error) {
	n := len(l)
	z := make([]float64, n)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		if l[i][i] == matrix.ZeroPivot {
			return nil, fmt.Errorf("row %d: %w", i, matrix.ErrSingular)
		}
		sum = b[i]
		for j = 0; j < i; j++ {
			sum -= l[i][j] * z[j]
		}
		z[i] = sum / l[i][i]
	}

	return z, nil
}

func backward(u [][]float64, z []float64) ([]float64, error) {
	n := len(u)
	x := make([]float64, n)
	var i, j int
	var sum float64
	for i = n - 1; i >= 0; i-- {
		if u[i][i] == matrix.ZeroPivot {
			return nil, fmt.Errorf("row %d: %w", i, matrix.ErrSingular)
		}
		sum = z[i]
		for j = i + 1; j < n; j++ {
			sum -= u[i][j] * x[j]
		}
		x[i] = sum / u[i][i]
	}

	return x, nil
}
