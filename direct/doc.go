// SPDX-License-Identifier: MIT

// Package direct solves dense square systems A·x = b by LU factorization
// without pivoting, followed by forward and back substitution.
//
// Two conventions are provided:
//
//   - Crout:     A = L·U with unit upper-triangular U (U[i][i] = 1).
//   - Doolittle: A = L·U with unit lower-triangular L (L[i][i] = 1).
//
// A pivot whose magnitude falls below the pivot tolerance (default 1e-9)
// aborts the factorization with ErrSingularMatrix; no partial factors are
// returned. WithScaledPivot makes the threshold relative to ‖A‖∞.
//
// Doolittle eliminates in place on a scratch copy of A owned by the call;
// the caller's matrix is only read.
//
// Compare runs both conventions on the same system and reports how far their
// solutions drift apart.
package direct
