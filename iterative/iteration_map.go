// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"

	"github.com/katalvlaran/linsys/diagnostics"
	"github.com/katalvlaran/linsys/matrix"
)

// Variant tags one of the four stationary methods:
// {Jacobi, GaussSeidel} × {unrelaxed, relaxed}.
// Omega is 1 for the unrelaxed variants.
type Variant struct {
	Method  Method
	Relaxed bool
	Omega   float64
}

// String returns "Jacobi", "JOR", "Gauss-Seidel" or "SOR".
func (v Variant) String() string {
	switch {
	case v.Method == Jacobi && v.Relaxed:
		return "JOR"
	case v.Method == GaussSeidel && v.Relaxed:
		return "SOR"
	default:
		return v.Method.String()
	}
}

// formulas returns the display formulas for H and C.
func (v Variant) formulas() (h, c string) {
	switch {
	case v.Method == Jacobi && v.Relaxed:
		return "(1-ω)I + ω(-D⁻¹(L+U))", "ωD⁻¹b"
	case v.Method == Jacobi:
		return "-D⁻¹(L+U)", "D⁻¹b"
	case v.Relaxed:
		return "(D+ωL)⁻¹[(1-ω)D - ωU]", "ω(D+ωL)⁻¹b"
	default:
		return "-(D+L)⁻¹U", "(D+L)⁻¹b"
	}
}

// IterationMap is the affine update x_{k+1} = H·x_k + C of a variant.
type IterationMap struct {
	Variant  Variant
	H        *matrix.Dense
	C        []float64
	HFormula string
	CFormula string
}

// Apply returns H·x + C.
func (m *IterationMap) Apply(x []float64) ([]float64, error) {
	hx, err := matrix.MatVec(m.H, x)
	if err != nil {
		return nil, fmt.Errorf("IterationMap.Apply: %w", err)
	}
	for i := range hx {
		hx[i] += m.C[i]
	}

	return hx, nil
}

// SpectralRadius returns ρ(H). The variant converges from every start
// vector iff the value is below 1.
func (m *IterationMap) SpectralRadius() (float64, error) {
	return diagnostics.SpectralRadius(m.H)
}

// ComputeIterationMap derives (H, C) for variant v from A = L + D + U.
//
// Implementation:
//
//	Gauss-Seidel family (M = D + ωL, lower-triangular):
//	  H = M⁻¹[(1−ω)D − ωU],  C = ω·M⁻¹b
//	Jacobi family (M = D, diagonal):
//	  H = (1−ω)I + ω(−D⁻¹(L+U)),  C = ω·D⁻¹b
//
// With ω = 1 these reduce to H = −(D+L)⁻¹U, C = (D+L)⁻¹b and
// H = −D⁻¹(L+U), C = D⁻¹b. There is one code path per family, and the
// unrelaxed variants are the relaxed ones evaluated at ω = 1.
//
// Errors:
//   - ErrInvalidConfiguration if v.Relaxed and ω ∉ (0,2).
//   - matrix.ErrSingular (wrapped) if M has a zero diagonal entry; callers
//     treat this as "map absent", not as a failed solve.
//   - matrix shape errors for malformed (A, b).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func ComputeIterationMap(a matrix.Matrix, b []float64, v Variant) (*IterationMap, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("ComputeIterationMap: %w", err)
	}
	omega := DefaultRelaxation
	if v.Relaxed {
		if !(v.Omega > 0 && v.Omega < 2) {
			return nil, fmt.Errorf("ComputeIterationMap: %w: relaxation must lie in (0,2), got %g",
				ErrInvalidConfiguration, v.Omega)
		}
		omega = v.Omega
	}
	v.Omega = omega

	sp, err := matrix.Split(a)
	if err != nil {
		return nil, fmt.Errorf("ComputeIterationMap: %w", err)
	}

	var (
		h *matrix.Dense
		c []float64
	)
	switch v.Method {
	case Jacobi:
		h, c, err = jacobiMap(sp, b, omega)
	case GaussSeidel:
		h, c, err = gaussSeidelMap(sp, b, omega)
	default:
		err = fmt.Errorf("%w: unknown method %d", ErrInvalidConfiguration, int(v.Method))
	}
	if err != nil {
		return nil, fmt.Errorf("ComputeIterationMap(%s): %w", v, err)
	}

	hf, cf := v.formulas()

	return &IterationMap{Variant: v, H: h, C: c, HFormula: hf, CFormula: cf}, nil
}

// gaussSeidelMap: H = (D+ωL)⁻¹[(1−ω)D − ωU], C = ω(D+ωL)⁻¹b.
func gaussSeidelMap(sp matrix.Splitting, b []float64, omega float64) (*matrix.Dense, []float64, error) {
	wl, err := matrix.Scale(sp.L, omega)
	if err != nil {
		return nil, nil, err
	}
	m, err := matrix.Add(sp.D, wl)
	if err != nil {
		return nil, nil, err
	}
	inv, err := matrix.InvertLowerTriangular(m)
	if err != nil {
		return nil, nil, err
	}

	dPart, err := matrix.Scale(sp.D, 1-omega)
	if err != nil {
		return nil, nil, err
	}
	uPart, err := matrix.Scale(sp.U, omega)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := matrix.Sub(dPart, uPart)
	if err != nil {
		return nil, nil, err
	}
	h, err := matrix.Mul(inv, rhs)
	if err != nil {
		return nil, nil, err
	}

	c, err := matrix.MatVec(inv, b)
	if err != nil {
		return nil, nil, err
	}
	scaleVec(c, omega)

	return h, c, nil
}

// jacobiMap: H = (1−ω)I + ω(−D⁻¹(L+U)), C = ωD⁻¹b.
func jacobiMap(sp matrix.Splitting, b []float64, omega float64) (*matrix.Dense, []float64, error) {
	dinv, err := matrix.InvertDiagonal(sp.D)
	if err != nil {
		return nil, nil, err
	}
	lu, err := matrix.Add(sp.L, sp.U)
	if err != nil {
		return nil, nil, err
	}
	prod, err := matrix.Mul(dinv, lu)
	if err != nil {
		return nil, nil, err
	}
	hJacobi, err := matrix.Scale(prod, -1)
	if err != nil {
		return nil, nil, err
	}

	id, err := matrix.NewIdentity(hJacobi.Rows())
	if err != nil {
		return nil, nil, err
	}
	keep, err := matrix.Scale(id, 1-omega)
	if err != nil {
		return nil, nil, err
	}
	step, err := matrix.Scale(hJacobi, omega)
	if err != nil {
		return nil, nil, err
	}
	h, err := matrix.Add(keep, step)
	if err != nil {
		return nil, nil, err
	}

	c, err := matrix.MatVec(dinv, b)
	if err != nil {
		return nil, nil, err
	}
	scaleVec(c, omega)

	return h, c, nil
}

// scaleVec multiplies x by alpha in place.
func scaleVec(x []float64, alpha float64) {
	for i := range x {
		x[i] *= alpha
	}
}
