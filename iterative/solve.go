// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"

	"github.com/katalvlaran/linsys/diagnostics"
	"github.com/katalvlaran/linsys/matrix"
)

// Solve runs the stationary method selected by opts on A·x = b, starting
// from x_0 = 0.
//
// Implementation:
//   - Stage 1: apply options and validate ranges (ErrInvalidConfiguration),
//     then validate the system shape.
//   - Stage 2: copy A and b into private buffers; the caller's data is only read.
//   - Stage 3: sweep until the L∞ step is below Tolerance or MaxIterations
//     sweeps have run, recording every iterate and step.
//   - Stage 4: attach the dominance report and the iteration map.
//
// Errors:
//   - ErrInvalidConfiguration, matrix shape errors (before any sweep).
//   - *PivotError (errors.Is ErrSingularPivot) on the first zero a_ii met;
//     the solve is aborted and no result is returned.
//
// Determinism:
//   - Fixed i→j loop order and no hidden state: identical inputs yield
//     bit-identical results.
func Solve(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("iterative.Solve: %w", err)
	}
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("iterative.Solve: %w", err)
	}
	d, err := matrix.AsDense(a)
	if err != nil {
		return nil, fmt.Errorf("iterative.Solve: %w", err)
	}

	w := &sweeper{
		a:     d.ToRows(),
		b:     append([]float64(nil), b...),
		n:     d.Rows(),
		omega: cfg.Variant().Omega,
		gs:    cfg.Method == GaussSeidel,
	}

	res := &Result{Variant: cfg.Variant()}
	if res.Split, err = matrix.Split(d); err != nil {
		return nil, fmt.Errorf("iterative.Solve: %w", err)
	}
	x := make([]float64, w.n)
	res.Trace = append(res.Trace, x)

	var next []float64
	var step float64
	for k := 1; k <= cfg.MaxIterations; k++ {
		if next, err = w.sweep(x, k); err != nil {
			return nil, fmt.Errorf("iterative.Solve: %w", err)
		}
		// w.sweep never returns a length mismatch, so the error is nil here.
		step, _ = diagnostics.LInf(next, x)

		res.Trace = append(res.Trace, next)
		res.Errors = append(res.Errors, step)
		res.Iterations = k
		cfg.OnIteration(k, next, step)

		x = next
		if step < cfg.Tolerance {
			res.Converged = true
			break
		}
	}
	res.Solution = append([]float64(nil), x...)

	if res.Dominance, err = diagnostics.DiagonalDominance(d); err != nil {
		return nil, fmt.Errorf("iterative.Solve: %w", err)
	}
	res.Map, res.MapErr = ComputeIterationMap(d, w.b, res.Variant)

	return res, nil
}

// sweeper holds the private working copy of one solve.
type sweeper struct {
	a     [][]float64
	b     []float64
	n     int
	omega float64
	gs    bool
}

// sweep produces x_{k+1} from x_k. Gauss-Seidel reads next[j] for j < i
// (already updated this sweep); Jacobi reads only prev.
func (w *sweeper) sweep(prev []float64, k int) ([]float64, error) {
	next := make([]float64, w.n)
	copy(next, prev)

	ref := prev
	if w.gs {
		ref = next
	}

	var (
		i, j       int
		sigma, raw float64
		row        []float64
	)
	for i = 0; i < w.n; i++ {
		row = w.a[i]
		if row[i] == matrix.ZeroPivot {
			return nil, &PivotError{Row: i, Iteration: k}
		}
		sigma = 0
		for j = 0; j < w.n; j++ {
			if j != i {
				sigma += row[j] * ref[j]
			}
		}
		raw = (w.b[i] - sigma) / row[i]
		next[i] = (1-w.omega)*prev[i] + w.omega*raw
	}

	return next, nil
}
