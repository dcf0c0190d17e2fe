// Package linsys solves dense square linear systems A·x = b with four
// classical methods, and exposes every intermediate quantity they produce.
//
// Methods:
//
//   - Jacobi and Gauss-Seidel stationary iterations, optionally relaxed
//     (JOR / SOR) with a factor ω ∈ (0,2)
//   - Crout and Doolittle LU decomposition, followed by forward and back
//     substitution
//
// Alongside each solution you get the L/D/U split of A, the iteration map
// x ← H·x + C with its spectral radius, the per-sweep L∞ error trace, the
// L and U factors with the intermediate vector Z, a row-by-row diagonal
// dominance report and the residual ‖A·x − b‖∞.
//
// Everything is organized under these subpackages:
//
//   - matrix: Dense storage, System (A,b), validators, Add/Sub/Mul/MatVec,
//     triangular and diagonal inverses, the L/D/U split
//   - diagnostics: diagonal dominance, L∞ distance, residual, spectral radius
//   - iterative: Jacobi / Gauss-Seidel (JOR / SOR) and the iteration map H, C
//   - direct: Crout / Doolittle factorization and substitution
//   - generate: seeded random systems (diagonally dominant or uniform)
//   - solver: one entry point over all four methods, plus concurrent Compare
//   - cmd/linsolve: command-line front end
//
// Quick example (2×2, diagonally dominant):
//
//	⎡4 1⎤     ⎡1⎤           ⎡0.1⎤
//	⎣2 3⎦ x = ⎣2⎦   →   x = ⎣0.6⎦
//
// All four methods agree on it; Gauss-Seidel converges in a handful of
// sweeps because ρ(H) ≈ 0.17.
//
//	go get github.com/katalvlaran/linsys/solver
package linsys
