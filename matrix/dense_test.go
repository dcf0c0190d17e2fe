// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

func TestNewDenseFromRows(t *testing.T) {
	t.Run("copies input", func(t *testing.T) {
		rows := [][]float64{{1, 2}, {3, 4}}
		m := MustRows(t, rows)
		rows[0][0] = 99
		CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows(nil)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		_, err = matrix.NewDenseFromRows([][]float64{{}})
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrRaggedRows)
	})
	t.Run("nan", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	})
}

func TestCloneIsDeep(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	MustSet(t, cp, 0, 0, -7)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, -7.0, MustAt(t, cp, 0, 0))
}

func TestRowAndToRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 0
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	out := m.ToRows()
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, out)
	out[1][2] = 0
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())
}

func TestNewSystem(t *testing.T) {
	a := [][]float64{{4, 1}, {2, 3}}
	b := []float64{1, 2}
	s, err := matrix.NewSystem(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, s.N())

	b[0] = 100
	require.Equal(t, []float64{1, 2}, s.B)

	cp := s.Clone()
	cp.B[1] = -1
	MustSet(t, cp.A, 0, 0, 0)
	require.Equal(t, 2.0, s.B[1])
	require.Equal(t, 4.0, MustAt(t, s.A, 0, 0))

	_, err = matrix.NewSystem([][]float64{{1, 2}}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.NewSystem(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewSystem(a, []float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
