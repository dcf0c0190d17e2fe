// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
)

// hide wraps a Matrix so kernels cannot see the *Dense underneath and take
// their generic At/Set path instead.
type hide struct{ matrix.Matrix }

func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// NewFilledDense reshapes a row-major slice into an r×c matrix.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c)
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = vals[i*c : (i+1)*c]
	}

	return MustRows(t, rows)
}

// RandFilledDense draws every entry from U(-1,1) with a fixed seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.Float64()*2 - 1
	}

	return NewFilledDense(t, r, c, vals)
}

func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// toRows reads any Matrix through At.
func toRows(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// CompareExact requires m to equal want bit for bit.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, want, toRows(t, m))
}

// CompareClose requires equal shapes and |a_ij − b_ij| ≤ atol everywhere.
func CompareClose(t *testing.T, a, b matrix.Matrix, atol float64) {
	t.Helper()
	ra, rb := toRows(t, a), toRows(t, b)
	require.Len(t, ra, len(rb))
	for i := range ra {
		require.InDeltaSlice(t, rb[i], ra[i], atol, "row %d", i)
	}
}

func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	require.ErrorIs(t, err, target)
}

// bench helpers

func mustDenseB(b *testing.B, n, m int) *matrix.Dense {
	d, err := matrix.NewDense(n, m)
	if err != nil {
		b.Fatal(err)
	}

	return d
}

// fillDenseRand fills d from U(-1,1) and puts cols on the diagonal, so the
// triangular benchmarks never meet a zero pivot.
func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	n, m := d.Shape()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if err := d.Set(i, j, rng.Float64()*2-1); err != nil {
				b.Fatal(err)
			}
		}
		if i < m {
			_ = d.Set(i, i, float64(m))
		}
	}
}

func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
