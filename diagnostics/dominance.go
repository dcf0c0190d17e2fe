// SPDX-License-Identifier: MIT

package diagnostics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// RowDominance is the dominance verdict for a single row.
type RowDominance struct {
	Row         int     // row index
	Diagonal    float64 // |a_ii|
	OffDiagonal float64 // Σ_{j≠i} |a_ij|
	Dominant    bool    // Diagonal ≥ OffDiagonal
}

// Dominance is the full report: one entry per row and the overall verdict.
type Dominance struct {
	Rows     []RowDominance
	Dominant bool // true iff every row is dominant
}

// WeakRows returns the indices of rows that fail the dominance test,
// in ascending order.
func (d Dominance) WeakRows() []int {
	var out []int
	for _, r := range d.Rows {
		if !r.Dominant {
			out = append(out, r.Row)
		}
	}

	return out
}

// DiagonalDominance checks (weak) row diagonal dominance of a square matrix.
//
// Row i is dominant iff |a_ii| ≥ Σ_{j≠i}|a_ij|; the matrix is dominant iff
// all rows are. Equality counts as dominant.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func DiagonalDominance(a matrix.Matrix) (Dominance, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return Dominance{}, fmt.Errorf("DiagonalDominance: %w", err)
	}
	d, err := matrix.AsDense(a)
	if err != nil {
		return Dominance{}, fmt.Errorf("DiagonalDominance: %w", err)
	}

	rows := d.ToRows()
	n := len(rows)
	report := Dominance{Rows: make([]RowDominance, n), Dominant: true}
	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		off = 0
		for j = 0; j < n; j++ {
			if j != i {
				off += math.Abs(rows[i][j])
			}
		}
		rd := RowDominance{
			Row:         i,
			Diagonal:    math.Abs(rows[i][i]),
			OffDiagonal: off,
		}
		rd.Dominant = rd.Diagonal >= rd.OffDiagonal
		if !rd.Dominant {
			report.Dominant = false
		}
		report.Rows[i] = rd
	}

	return report, nil
}
