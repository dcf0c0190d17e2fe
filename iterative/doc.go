// SPDX-License-Identifier: MIT

// Package iterative implements the stationary iterative solvers for a dense
// square system A·x = b: Jacobi and Gauss-Seidel, each optionally relaxed
// (JOR and SOR respectively).
//
// Every sweep k computes, for each row i,
//
//	σ = Σ_{j≠i} a_ij · x_ref[j]
//	v = (b_i − σ) / a_ii
//	x_{k+1}[i] = (1−ω)·x_k[i] + ω·v
//
// where x_ref is the previous full iterate for Jacobi and the partially
// updated current iterate for Gauss-Seidel. The unrelaxed methods run the
// same formula with ω = 1, so they are reproduced bit for bit.
//
// After each sweep the new iterate and its L∞ distance to the previous one
// are appended to Result.Trace and Result.Errors; the loop stops as soon as
// that distance drops below the tolerance, or after MaxIterations sweeps.
// Running out of sweeps is not an error: Result.Converged is simply false.
//
// Alongside the solution, Solve derives the linear iteration map
// x_{k+1} = H·x_k + C for the selected variant (see ComputeIterationMap) and
// a diagonal-dominance report. A map whose splitting cannot be inverted is
// reported as absent through Result.MapErr; it never fails the solve.
//
// Errors:
//
//	– ErrInvalidConfiguration  tolerance ≤ 0, MaxIterations < 1, ω ∉ (0,2).
//	– ErrSingularPivot         a_ii == 0 met mid-sweep; see PivotError.Row.
//	– matrix.ErrNonSquare, matrix.ErrDimensionMismatch, matrix.ErrNilMatrix.
//
// Example usage:
//
//	res, err := iterative.Solve(a, b,
//	    iterative.WithMethod(iterative.GaussSeidel),
//	    iterative.WithRelaxation(1.25),
//	    iterative.WithTolerance(1e-8),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Status(), res.Solution)
//
// Complexity: O(n²) per sweep; O(n³) once for the iteration map.
package iterative
