// SPDX-License-Identifier: MIT

package matrix

// Splitting holds the additive decomposition A = L + D + U of a square matrix:
// L strictly lower, D diagonal, U strictly upper. Each part is an independent
// n×n Dense; the three never share storage with A or each other.
type Splitting struct {
	L *Dense // strictly lower triangle (i > j), zero elsewhere
	D *Dense // diagonal (i == j), zero elsewhere
	U *Dense // strictly upper triangle (i < j), zero elsewhere
}

// Split partitions a square matrix into its strictly-lower, diagonal and
// strictly-upper parts so that L + D + U reproduces m exactly.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrInvalidDimensions for a 0×0 matrix.
//
// Complexity:
//   - Time O(n^2), Space 3·O(n^2).
func Split(m Matrix) (Splitting, error) {
	if err := ValidateSquare(m); err != nil {
		return Splitting{}, matrixErrorf(opSplit, err)
	}
	src, err := AsDense(m)
	if err != nil {
		return Splitting{}, matrixErrorf(opSplit, err)
	}

	n := src.r
	l, err := NewDense(n, n)
	if err != nil {
		return Splitting{}, matrixErrorf(opSplit, err)
	}
	// same shape as l
	d, _ := NewDense(n, n)
	u, _ := NewDense(n, n)

	var i, j, off int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			off = i*n + j
			switch {
			case i > j:
				l.data[off] = src.data[off]
			case i == j:
				d.data[off] = src.data[off]
			default:
				u.data[off] = src.data[off]
			}
		}
	}

	return Splitting{L: l, D: d, U: u}, nil
}
