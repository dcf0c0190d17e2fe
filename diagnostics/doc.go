// SPDX-License-Identifier: MIT

// Package diagnostics reports numeric health checks for a linear system
// A·x = b and for the iterates produced while solving it.
//
// What:
//
//   - DiagonalDominance: per-row |a_ii| ≥ Σ_{j≠i}|a_ij| test plus the
//     overall verdict. Advisory only; nothing here blocks a solve.
//   - LInf: Chebyshev distance max_i |x_i − y_i|, the convergence metric of
//     the stationary solvers.
//   - ResidualNorm: ‖A·x − b‖∞ for any candidate solution.
//   - SpectralRadius: max |λ| over the eigenvalues of an iteration matrix H;
//     a stationary method converges for every start iff ρ(H) < 1.
//
// Vector norms are delegated to gonum/floats and eigenvalues to gonum/mat.
// All functions are pure and deterministic.
package diagnostics
