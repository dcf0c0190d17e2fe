// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// matrix-vector products, scalar scaling and triangular inversion. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Every kernel materializes its operands as *Dense once (AsDense) and then
//     runs a single flat-slice loop with a fixed order.
//   - Results are freshly allocated; operands are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial sum value for substitution and accumulation loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exactly-zero diagonal entry.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opIdentity    = "Identity"
	opInvLower    = "InvertLowerTriangular"
	opInvDiagonal = "InvertDiagonal"
	opSplit       = "Split"
	opNewSystem   = "NewSystem"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Errors:
//   - ErrNilMatrix          (a or b is nil).
//   - ErrDimensionMismatch  (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	// single flat loop, deterministic 0..n-1
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Fails with ErrDimensionMismatch if shapes differ.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Fails with ErrDimensionMismatch if shapes differ.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The only failure mode is a nil input.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range dm.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop with row-major strides; zero A[i,k] rows are skipped.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x: y[i] = Σ_j m[i,j]·x[j].
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// InvertLowerTriangular inverts a lower-triangular matrix column by column
// using forward substitution:
//
//	invL[j][j] = 1 / L[j][j]
//	invL[i][j] = -(Σ_{k=j}^{i-1} L[i][k]·invL[k][j]) / L[i][i]   for i > j
//
// Only the lower triangle of l is read; entries above the diagonal are ignored.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare on bad input.
//   - ErrSingular if any diagonal entry is exactly zero. No partially filled
//     or NaN matrix is ever returned.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func InvertLowerTriangular(l Matrix) (*Dense, error) {
	if err := ValidateSquare(l); err != nil {
		return nil, matrixErrorf(opInvLower, err)
	}
	dl, err := AsDense(l)
	if err != nil {
		return nil, matrixErrorf(opInvLower, err)
	}
	n := dl.r
	// Check the whole diagonal first so the sentinel does not depend on column order.
	for j := 0; j < n; j++ {
		if dl.data[j*n+j] == ZeroPivot {
			return nil, matrixErrorf(opInvLower, fmt.Errorf("zero pivot at %d: %w", j, ErrSingular))
		}
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInvLower, err)
	}
	var i, j, k int
	var sum float64
	for j = 0; j < n; j++ {
		inv.data[j*n+j] = 1.0 / dl.data[j*n+j]
		for i = j + 1; i < n; i++ {
			sum = ZeroSum
			for k = j; k < i; k++ {
				sum -= dl.data[i*n+k] * inv.data[k*n+j]
			}
			inv.data[i*n+j] = sum / dl.data[i*n+i]
		}
	}

	return inv, nil
}

// InvertDiagonal returns diag(1/d_ii) for the diagonal of m.
// Off-diagonal entries of m are ignored.
// Fails with ErrSingular if any diagonal entry is exactly zero.
func InvertDiagonal(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInvDiagonal, err)
	}
	dm, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opInvDiagonal, err)
	}
	n := dm.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInvDiagonal, err)
	}
	for i := 0; i < n; i++ {
		if dm.data[i*n+i] == ZeroPivot {
			return nil, matrixErrorf(opInvDiagonal, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		inv.data[i*n+i] = 1.0 / dm.data[i*n+i]
	}

	return inv, nil
}
