// SPDX-License-Identifier: MIT
package direct_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/diagnostics"
	"github.com/katalvlaran/linsys/direct"
	"github.com/katalvlaran/linsys/generate"
	"github.com/katalvlaran/linsys/matrix"
)

var variants = []direct.Variant{direct.Crout, direct.Doolittle}

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestDiagonalSystemIsExact(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{2, 0}, {0, 2}})
	for _, v := range variants {
		res, err := direct.Solve(a, []float64{4, 6}, v)
		require.NoError(t, err, v.String())
		assert.Equal(t, []float64{2, 3}, res.Solution, v.String())
		assert.Equal(t, v, res.Variant)
	}
}

func TestScalarSystem(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{5}})
	for _, v := range variants {
		res, err := direct.Solve(a, []float64{10}, v)
		require.NoError(t, err)
		assert.Equal(t, []float64{2}, res.Solution, v.String())
	}
}

func TestSingularMatrix(t *testing.T) {
	t.Parallel()

	for _, rows := range [][][]float64{
		{{0, 1}, {1, 0}},
		{{1, 2}, {2, 4}},
		{{1e-10, 1}, {1, 1}},
	} {
		a := mustRows(t, rows)
		for _, v := range variants {
			res, err := direct.Solve(a, []float64{1, 1}, v)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, direct.ErrSingularMatrix, "%s %v", v, rows)
		}
	}
}

func TestPivotTolerance(t *testing.T) {
	t.Parallel()

	tiny := mustRows(t, [][]float64{{1e-10, 1}, {1, 1}})
	_, err := direct.Solve(tiny, []float64{1, 2}, direct.Crout, direct.WithPivotTolerance(1e-12))
	require.NoError(t, err)

	// 1e-8 passes the literal threshold but not one scaled by ‖A‖∞ = 1000
	scaled := mustRows(t, [][]float64{{1e-8, 0}, {0, 1000}})
	for _, v := range variants {
		_, err = direct.Solve(scaled, []float64{1, 1}, v)
		require.NoError(t, err)
		_, err = direct.Solve(scaled, []float64{1, 1}, v, direct.WithScaledPivot())
		require.ErrorIs(t, err, direct.ErrSingularMatrix)
	}

	for _, tol := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = direct.Solve(scaled, []float64{1, 1}, direct.Doolittle, direct.WithPivotTolerance(tol))
		assert.ErrorIs(t, err, direct.ErrBadPivotTolerance)
	}
}

func TestFactorShapes(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{
		{4, 3, 2},
		{2, 1, 3},
		{3, 2, 1},
	})

	for _, v := range variants {
		l, u, err := direct.Factor(a, v)
		require.NoError(t, err)

		lr, ur := l.ToRows(), u.ToRows()
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				assert.Zero(t, lr[i][j], "%s L[%d][%d]", v, i, j)
				assert.Zero(t, ur[j][i], "%s U[%d][%d]", v, j, i)
			}
			switch v {
			case direct.Crout:
				assert.Equal(t, 1.0, ur[i][i])
			case direct.Doolittle:
				assert.Equal(t, 1.0, lr[i][i])
			}
		}

		prod, err := matrix.Mul(l, u)
		require.NoError(t, err)
		got, want := prod.ToRows(), a.ToRows()
		for i := range want {
			for j := range want[i] {
				assert.InDelta(t, want[i][j], got[i][j], 1e-12)
			}
		}
	}

	_, _, err := direct.Factor(a, direct.Variant(5))
	require.Error(t, err)
	assert.Equal(t, "Variant(5)", direct.Variant(5).String())
}

func TestInputNotMutated(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{4, 3}, {6, 3}})
	b := []float64{10, 12}
	before := a.ToRows()
	_, err := direct.Solve(a, b, direct.Doolittle)
	require.NoError(t, err)
	assert.Equal(t, before, a.ToRows())
	assert.Equal(t, []float64{10, 12}, b)
}

// TestCrossVariantAgreement checks Crout and Doolittle against each other and gonum.
func TestCrossVariantAgreement(t *testing.T) {
	t.Parallel()

	systems := []*matrix.System{}
	for seed := int64(1); seed <= 20; seed++ {
		sys, err := generate.DiagonallyDominant(6, generate.WithSeed(seed))
		require.NoError(t, err)
		systems = append(systems, sys)
	}
	// non-dominant but with well-separated leading minors
	fixed, err := matrix.NewSystem([][]float64{
		{2, 7, -1, 3},
		{4, 1, 5, -2},
		{-3, 6, 2, 8},
		{1, -4, 9, 2},
	}, []float64{3, -1, 4, 7})
	require.NoError(t, err)
	systems = append(systems, fixed)

	for k, sys := range systems {
		n := sys.N()
		cmp, err := direct.Compare(sys.A, sys.B)
		require.NoError(t, err)
		require.True(t, cmp.Both(), "system %d: %v / %v", k, cmp.CroutErr, cmp.DoolittleErr)
		assert.Less(t, cmp.MaxDeviation, 1e-6, "system %d", k)

		for _, res := range []*direct.Result{cmp.Crout, cmp.Doolittle} {
			r, err := diagnostics.ResidualNorm(sys.A, res.Solution, sys.B)
			require.NoError(t, err)
			assert.Less(t, r, 1e-6, "system %d %s", k, res.Variant)
		}

		flat := make([]float64, 0, n*n)
		for _, row := range sys.A.ToRows() {
			flat = append(flat, row...)
		}
		var x mat.VecDense
		require.NoError(t, x.SolveVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, append([]float64(nil), sys.B...))))
		for i := 0; i < n; i++ {
			assert.InDelta(t, x.AtVec(i), cmp.Crout.Solution[i], 1e-6)
		}
	}
}

func TestCompareSingular(t *testing.T) {
	t.Parallel()

	cmp, err := direct.Compare(mustRows(t, [][]float64{{0, 1}, {1, 0}}), []float64{1, 1})
	require.NoError(t, err)
	assert.False(t, cmp.Both())
	assert.ErrorIs(t, cmp.CroutErr, direct.ErrSingularMatrix)
	assert.ErrorIs(t, cmp.DoolittleErr, direct.ErrSingularMatrix)

	_, err = direct.Compare(mustRows(t, [][]float64{{1, 0}, {0, 1}}), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSubstitution(t *testing.T) {
	t.Parallel()

	z, err := direct.ForwardSubstitute(mustRows(t, [][]float64{{2, 99}, {1, 1}}), []float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, z)

	x, err := direct.BackSubstitute(mustRows(t, [][]float64{{1, 1}, {99, 2}}), []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, x)

	_, err = direct.ForwardSubstitute(mustRows(t, [][]float64{{1, 0}, {1, 0}}), []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, err = direct.BackSubstitute(mustRows(t, [][]float64{{0, 1}, {0, 1}}), []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrSingular)
	_, err = direct.BackSubstitute(mustRows(t, [][]float64{{1}}), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIntermediateVector(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{4, 1}, {2, 3}})
	res, err := direct.Solve(a, []float64{1, 2}, direct.Doolittle)
	require.NoError(t, err)
	// L = [[1,0],[0.5,1]], so Z = [1, 1.5]
	assert.Equal(t, []float64{1, 1.5}, res.Z)
	assert.InDelta(t, 0.1, res.Solution[0], 1e-15)
	assert.InDelta(t, 0.6, res.Solution[1], 1e-15)
}
