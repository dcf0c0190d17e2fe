// SPDX-License-Identifier: MIT

// Shape checks shared by the kernels and the solvers. Each returns a sentinel
// tagged with the validator name; callers add their own operation tag.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil Matrix, including a typed nil *Dense, with
// ErrNilMatrix.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b are both
// r×c. Both must be non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare requires a non-nil n×n matrix (ErrNilMatrix, ErrNonSquare).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is reported as ErrNilMatrix (the "nil argument" sentinel).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape is the element-wise precondition of Add and Sub.
func ValidateBinarySameShape(a, b Matrix) error {
	for _, m := range [2]Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateBinarySameShape", err)
		}
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible is the precondition of a·b: both non-nil and
// a.Cols() == b.Rows().
func ValidateMulCompatible(a, b Matrix) error {
	for _, m := range [2]Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateMulCompatible", err)
		}
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%d cols vs %d rows: %w", a.Cols(), b.Rows(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSystem checks the pair (A, b): A non-nil and square, len(b) == n.
// Used by every solver entry point before any computation starts.
func ValidateSystem(a Matrix, b []float64) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}
