// SPDX-License-Identifier: MIT
// Package: linsys/generate
//
// generate.go: random test systems for the solvers.
//
// Contract:
//   - Option constructors panic on meaningless inputs (nil RNG); generators
//     themselves return sentinel errors and never panic.
//   - Determinism is explicit: an RNG must be supplied via WithSeed or
//     WithRand, otherwise ErrNeedRandSource.
//   - All values are small integers, so generated systems are exact in
//     float64 and easy to read back from YAML or a table.

package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/linsys/matrix"
)

// Sentinel errors for generator validation.
var (
	// ErrTooSmall is returned for a system order n < 1.
	ErrTooSmall = errors.New("generate: order must be ≥ 1")

	// ErrNeedRandSource is returned when no RNG was configured.
	ErrNeedRandSource = errors.New("generate: rng is required")
)

// Value ranges (inclusive) used by the generators.
const (
	OffDiagonalMin = -5 // dominant systems: off-diagonal entries
	OffDiagonalMax = 4
	MarginMin      = 1 // dominant systems: |a_ii| − Σ|a_ij|
	MarginMax      = 5
	RHSMin         = -10 // dominant systems: right-hand side
	RHSMax         = 9
	UniformMin     = -9 // Uniform: every entry of A and b
	UniformMax     = 9
)

// Option customizes a generator before it runs.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func newConfig(n int, method string, opts []Option) (*config, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(%d): %w", method, n, ErrTooSmall)
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return cfg, nil
}

// intIn draws a uniform integer in [lo, hi].
func intIn(r *rand.Rand, lo, hi int) float64 {
	return float64(lo + r.Intn(hi-lo+1))
}

// DiagonallyDominant returns an n×n system whose matrix is strictly
// diagonally dominant by construction:
//
//	a_ij ∈ [−5, 4]                     for j ≠ i
//	|a_ii| = Σ_{j≠i}|a_ij| + m,  m ∈ [1, 5], random sign
//	b_i  ∈ [−10, 9]
//
// Both stationary methods converge on every system it produces.
func DiagonallyDominant(n int, opts ...Option) (*matrix.System, error) {
	cfg, err := newConfig(n, "DiagonallyDominant", opts)
	if err != nil {
		return nil, err
	}

	a := make([][]float64, n)
	b := make([]float64, n)
	var i, j int
	var rowSum, diag float64
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		rowSum = 0
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			a[i][j] = intIn(cfg.rng, OffDiagonalMin, OffDiagonalMax)
			rowSum += math.Abs(a[i][j])
		}
		diag = rowSum + intIn(cfg.rng, MarginMin, MarginMax)
		if cfg.rng.Intn(2) == 0 {
			diag = -diag
		}
		a[i][i] = diag
		b[i] = intIn(cfg.rng, RHSMin, RHSMax)
	}

	return matrix.NewSystem(a, b)
}

// Uniform returns an n×n system with every entry of A and b drawn from
// [−9, 9]. The matrix may be singular; it exercises the direct solvers'
// pivot checks as much as their happy path.
func Uniform(n int, opts ...Option) (*matrix.System, error) {
	cfg, err := newConfig(n, "Uniform", opts)
	if err != nil {
		return nil, err
	}

	a := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			a[i][j] = intIn(cfg.rng, UniformMin, UniformMax)
		}
		b[i] = intIn(cfg.rng, UniformMin, UniformMax)
	}

	return matrix.NewSystem(a, b)
}
