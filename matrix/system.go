// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// System is a square linear system A·x = b.
//
// A is owned by the System: constructors copy their inputs, so callers may
// keep mutating the slices they passed in.
type System struct {
	A *Dense    // n×n coefficient matrix
	B []float64 // right-hand side, len == n
}

// NewSystem builds a System from row literals and a right-hand side.
//
// Errors:
//   - ErrInvalidDimensions, ErrRaggedRows, ErrNaNInf from NewDenseFromRows.
//   - ErrNonSquare if A is not n×n.
//   - ErrDimensionMismatch if len(b) != n.
//   - ErrNaNInf if b carries NaN/±Inf.
func NewSystem(a [][]float64, b []float64) (*System, error) {
	d, err := NewDenseFromRows(a)
	if err != nil {
		return nil, matrixErrorf(opNewSystem, err)
	}
	if err = ValidateSystem(d, b); err != nil {
		return nil, matrixErrorf(opNewSystem, err)
	}
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opNewSystem, fmt.Errorf("b[%d]: %w", i, ErrNaNInf))
		}
	}
	rhs := make([]float64, len(b))
	copy(rhs, b)

	return &System{A: d, B: rhs}, nil
}

// N returns the system order.
func (s *System) N() int { return s.A.r }

// Clone returns a deep copy of the system.
func (s *System) Clone() *System {
	rhs := make([]float64, len(s.B))
	copy(rhs, s.B)

	return &System{A: s.A.copyDense(), B: rhs}
}
