// SPDX-License-Identifier: MIT
package iterative_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/matrix"
)

func TestVariantLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v        iterative.Variant
		name     string
		hFormula string
		cFormula string
	}{
		{iterative.Variant{Method: iterative.Jacobi}, "Jacobi", "-D⁻¹(L+U)", "D⁻¹b"},
		{iterative.Variant{Method: iterative.Jacobi, Relaxed: true, Omega: 0.8}, "JOR", "(1-ω)I + ω(-D⁻¹(L+U))", "ωD⁻¹b"},
		{iterative.Variant{Method: iterative.GaussSeidel}, "Gauss-Seidel", "-(D+L)⁻¹U", "(D+L)⁻¹b"},
		{iterative.Variant{Method: iterative.GaussSeidel, Relaxed: true, Omega: 1.2}, "SOR", "(D+ωL)⁻¹[(1-ω)D - ωU]", "ω(D+ωL)⁻¹b"},
	}
	a := mustRows(t, [][]float64{{4, 1}, {2, 3}})
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.name, tc.v.String())
			m, err := iterative.ComputeIterationMap(a, []float64{1, 2}, tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.hFormula, m.HFormula)
			assert.Equal(t, tc.cFormula, m.CFormula)
		})
	}
	assert.Equal(t, "Method(9)", iterative.Method(9).String())
}

// TestMapMatchesSweeps checks x_{k+1} = H·x_k + C against the recorded trace.
func TestMapMatchesSweeps(t *testing.T) {
	t.Parallel()

	a := mustRows(t, dominant3)
	for _, m := range []iterative.Method{iterative.Jacobi, iterative.GaussSeidel} {
		for _, omega := range []float64{0.7, 1, 1.4} {
			name := fmt.Sprintf("%s/ω=%g", m, omega)
			res, err := iterative.Solve(a, rhs3,
				iterative.WithMethod(m),
				iterative.WithRelaxation(omega),
				iterative.WithMaxIterations(5),
				iterative.WithTolerance(1e-300),
			)
			require.NoError(t, err, name)
			require.NotNil(t, res.Map, name)
			require.NoError(t, res.MapErr, name)

			for k := 0; k < res.Iterations; k++ {
				got, err := res.Map.Apply(res.Trace[k])
				require.NoError(t, err)
				for i := range got {
					assert.InDelta(t, res.Trace[k+1][i], got[i], 1e-12, "%s k=%d i=%d", name, k, i)
				}
			}
		}
	}
}

func TestGaussSeidelMapValues(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{4, 1}, {2, 3}})
	m, err := iterative.ComputeIterationMap(a, []float64{1, 2}, iterative.Variant{Method: iterative.GaussSeidel})
	require.NoError(t, err)

	// (D+L)⁻¹ = [[1/4, 0], [-1/6, 1/3]]
	h := m.H.ToRows()
	assert.InDelta(t, 0.0, h[0][0], 1e-15)
	assert.InDelta(t, -0.25, h[0][1], 1e-15)
	assert.InDelta(t, 0.0, h[1][0], 1e-15)
	assert.InDelta(t, 1.0/6.0, h[1][1], 1e-15)
	assert.InDelta(t, 0.25, m.C[0], 1e-15)
	assert.InDelta(t, 0.5, m.C[1], 1e-15)

	rho, err := m.SpectralRadius()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, rho, 1e-12)

	jm, err := iterative.ComputeIterationMap(a, []float64{1, 2}, iterative.Variant{Method: iterative.Jacobi})
	require.NoError(t, err)
	rho, err = jm.SpectralRadius()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(1.0/6.0), rho, 1e-12)
}

func TestMapAbsentOnZeroDiagonal(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	for _, v := range []iterative.Variant{
		{Method: iterative.Jacobi},
		{Method: iterative.GaussSeidel},
		{Method: iterative.GaussSeidel, Relaxed: true, Omega: 1.5},
	} {
		m, err := iterative.ComputeIterationMap(a, []float64{1, 1}, v)
		assert.Nil(t, m, v.String())
		assert.ErrorIs(t, err, matrix.ErrSingular, v.String())
	}

	_, err := iterative.ComputeIterationMap(mustRows(t, dominant3), rhs3,
		iterative.Variant{Method: iterative.GaussSeidel, Relaxed: true, Omega: 2.5})
	assert.ErrorIs(t, err, iterative.ErrInvalidConfiguration)
}
