// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the iterative solvers.
var (
	// ErrInvalidConfiguration indicates a tolerance, iteration budget or
	// relaxation factor outside its admissible range.
	ErrInvalidConfiguration = errors.New("iterative: invalid configuration")

	// ErrSingularPivot indicates a zero diagonal entry met during a sweep.
	ErrSingularPivot = errors.New("iterative: zero pivot on the diagonal")
)

// PivotError reports the row whose diagonal entry is zero.
// It unwraps to ErrSingularPivot.
type PivotError struct {
	Row       int // offending row index
	Iteration int // 1-based sweep in which it was met
}

// Error implements the error interface.
func (e *PivotError) Error() string {
	return fmt.Sprintf("%v: row %d (sweep %d)", ErrSingularPivot, e.Row, e.Iteration)
}

// Unwrap exposes ErrSingularPivot to errors.Is.
func (e *PivotError) Unwrap() error { return ErrSingularPivot }
