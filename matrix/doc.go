// Package matrix provides the dense linear-algebra primitives used by the
// linsys solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors that
//     return errors instead of panicking.
//   - System, the pair (A, b) of a square coefficient matrix and its
//     right-hand side, validated once at construction.
//   - Element-wise Add/Sub, Scale, Mul and MatVec kernels that fail with
//     ErrDimensionMismatch on incompatible shapes.
//   - Triangular and diagonal inversion (InvertLowerTriangular,
//     InvertDiagonal) that report ErrSingular instead of producing NaNs.
//   - Split, which decomposes a square matrix into its strictly lower,
//     diagonal and strictly upper parts (A = L + D + U).
//
// All kernels allocate a fresh result and never mutate their operands.
// Loop orders are fixed, so identical inputs yield bit-identical outputs.
package matrix
