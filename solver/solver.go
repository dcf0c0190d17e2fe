// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linsys/diagnostics"
	"github.com/katalvlaran/linsys/direct"
	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/matrix"
)

// Solver dispatches systems to the configured method.
type Solver struct {
	cfg    Config
	logger *slog.Logger
}

// New validates cfg and returns a Solver.
func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Solver{cfg: cfg, logger: logger}, nil
}

// Config returns a copy of the solver configuration.
func (s *Solver) Config() Config { return s.cfg }

// Solve runs the configured method on sys.
//
// Errors:
//   - ErrNilSystem.
//   - iterative.ErrSingularPivot (see iterative.PivotError) for Jacobi / Gauss-Seidel.
//   - direct.ErrSingularMatrix for Crout / Doolittle.
//
// Non-convergence and a non-dominant matrix are reported in the Report,
// never as errors.
func (s *Solver) Solve(sys *matrix.System) (*Report, error) {
	return s.SolveWith(s.cfg.Method, sys)
}

// SolveWith runs method m on sys with the solver's parameters.
func (s *Solver) SolveWith(m Method, sys *matrix.System) (*Report, error) {
	if sys == nil || sys.A == nil {
		return nil, ErrNilSystem
	}
	log := s.logger.With("method", m.String(), "n", sys.N())
	log.Debug("solving system")

	var (
		rep *Report
		err error
	)
	switch m {
	case Jacobi, GaussSeidel:
		rep, err = s.solveIterative(m, sys)
	case Crout, Doolittle:
		rep, err = s.solveDirect(m, sys)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	if err != nil {
		log.Debug("solve failed", "error", err)
		return nil, err
	}

	if rep.Residual, err = diagnostics.ResidualNorm(sys.A, rep.Solution, sys.B); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	if !rep.Dominance.Dominant {
		log.Debug("matrix is not diagonally dominant", "weak_rows", rep.Dominance.WeakRows())
	}
	log.Debug("solve finished",
		"label", rep.Label(),
		"converged", rep.Converged(),
		"residual", rep.Residual,
	)

	return rep, nil
}

func (s *Solver) solveIterative(m Method, sys *matrix.System) (*Report, error) {
	method := iterative.Jacobi
	if m == GaussSeidel {
		method = iterative.GaussSeidel
	}
	opts := []iterative.Option{
		iterative.WithMethod(method),
		iterative.WithTolerance(s.cfg.Tolerance),
		iterative.WithMaxIterations(s.cfg.MaxIterations),
		iterative.WithOnIteration(s.cfg.OnIteration),
	}
	if s.cfg.Relaxed || s.cfg.Relaxation != DefaultRelaxation {
		opts = append(opts, iterative.WithRelaxation(s.cfg.Relaxation))
	}

	res, err := iterative.Solve(sys.A, sys.B, opts...)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	rep := &Report{
		Method:    m,
		Solution:  res.Solution,
		Dominance: res.Dominance,
		Iterative: res,
	}
	if res.Map == nil {
		s.logger.Debug("iteration map unavailable", "error", res.MapErr)
		return rep, nil
	}
	rho, err := res.Map.SpectralRadius()
	if err != nil {
		s.logger.Debug("spectral radius unavailable", "error", err)
		return rep, nil
	}
	rep.SpectralRadius, rep.HasSpectralRadius = rho, true
	s.logger.Debug("iterative solve finished",
		"variant", res.Variant.String(),
		"iterations", res.Iterations,
		"final_error", res.FinalError(),
		"spectral_radius", rho,
	)

	return rep, nil
}

func (s *Solver) solveDirect(m Method, sys *matrix.System) (*Report, error) {
	variant := direct.Crout
	if m == Doolittle {
		variant = direct.Doolittle
	}
	opts := []direct.Option{direct.WithPivotTolerance(s.cfg.PivotTolerance)}
	if s.cfg.ScaledPivot {
		opts = append(opts, direct.WithScaledPivot())
	}

	res, err := direct.Solve(sys.A, sys.B, variant, opts...)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	dom, err := diagnostics.DiagonalDominance(sys.A)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	return &Report{
		Method:    m,
		Solution:  res.Solution,
		Dominance: dom,
		Direct:    res,
	}, nil
}

// Compare runs every method in methods on sys concurrently and returns one
// Outcome per method, in the order given. An empty list means all four.
//
// Per-method failures land in Outcome.Err; the returned error is non-nil
// only for a nil system or a cancelled context.
func (s *Solver) Compare(ctx context.Context, sys *matrix.System, methods ...Method) ([]Outcome, error) {
	if sys == nil || sys.A == nil {
		return nil, ErrNilSystem
	}
	if len(methods) == 0 {
		methods = Methods
	}

	out := make([]Outcome, len(methods))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range methods {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each goroutine gets its own copy of the system
			rep, err := s.SolveWith(m, sys.Clone())
			out[i] = Outcome{Method: m, Report: rep, Err: err}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("solver: compare: %w", err)
	}

	return out, nil
}

// Spread returns the largest L∞ distance between the solutions of any two
// successful outcomes, and how many outcomes succeeded.
func Spread(outcomes []Outcome) (spread float64, ok int) {
	var sols [][]float64
	for _, o := range outcomes {
		if o.Err == nil && o.Report != nil {
			sols = append(sols, o.Report.Solution)
		}
	}
	for i := 0; i < len(sols); i++ {
		for j := i + 1; j < len(sols); j++ {
			if d, err := diagnostics.LInf(sols[i], sols[j]); err == nil && d > spread {
				spread = d
			}
		}
	}

	return spread, len(sols)
}
