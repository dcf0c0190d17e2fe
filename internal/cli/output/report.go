// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
)

// Number marshals to null when the value is NaN or ±Inf.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func numbers(v []float64) []Number {
	out := make([]Number, len(v))
	for i, x := range v {
		out[i] = Number(x)
	}
	return out
}

func numberRows(m *matrix.Dense) [][]Number {
	if m == nil {
		return nil
	}
	rows := m.ToRows()
	out := make([][]Number, len(rows))
	for i, row := range rows {
		out[i] = numbers(row)
	}
	return out
}

// SplitJSON is the json shape of A = L + D + U.
type SplitJSON struct {
	L [][]Number `json:"l"`
	D [][]Number `json:"d"`
	U [][]Number `json:"u"`
}

// ReportJSON is the json shape of a single solve. Split, Trace and Errors
// are set for iterative methods; L, U and Z for direct ones.
type ReportJSON struct {
	Method         string     `json:"method"`
	Label          string     `json:"label"`
	Status         string     `json:"status"`
	Converged      bool       `json:"converged"`
	Solution       []Number   `json:"solution"`
	Residual       Number     `json:"residual"`
	Dominant       bool       `json:"diagonally_dominant"`
	WeakRows       []int      `json:"weak_rows,omitempty"`
	Iterations     int        `json:"iterations,omitempty"`
	FinalError     *Number    `json:"final_error,omitempty"`
	Split          *SplitJSON `json:"split,omitempty"`
	Trace          [][]Number `json:"trace,omitempty"`
	Errors         []Number   `json:"errors,omitempty"`
	SpectralRadius *Number    `json:"spectral_radius,omitempty"`
	Converges      *bool      `json:"spectral_radius_below_one,omitempty"`
	H              [][]Number `json:"h,omitempty"`
	C              []Number   `json:"c,omitempty"`
	L              [][]Number `json:"l,omitempty"`
	U              [][]Number `json:"u,omitempty"`
	Z              []Number   `json:"z,omitempty"`
}

// NewReportJSON flattens rep for json output.
func NewReportJSON(rep *solver.Report) ReportJSON {
	out := ReportJSON{
		Method:    rep.Method.String(),
		Label:     rep.Label(),
		Status:    rep.Status(),
		Converged: rep.Converged(),
		Solution:  numbers(rep.Solution),
		Residual:  Number(rep.Residual),
		Dominant:  rep.Dominance.Dominant,
		WeakRows:  rep.Dominance.WeakRows(),
	}
	if res := rep.Iterative; res != nil {
		out.Iterations = res.Iterations
		fe := Number(res.FinalError())
		out.FinalError = &fe
		out.Split = &SplitJSON{
			L: numberRows(res.Split.L),
			D: numberRows(res.Split.D),
			U: numberRows(res.Split.U),
		}
		out.Trace = make([][]Number, len(res.Trace))
		for k, x := range res.Trace {
			out.Trace[k] = numbers(x)
		}
		out.Errors = numbers(res.Errors)
		if res.Map != nil {
			out.H = numberRows(res.Map.H)
			out.C = numbers(res.Map.C)
		}
	}
	if rep.HasSpectralRadius {
		rho := Number(rep.SpectralRadius)
		conv := rep.Converges()
		out.SpectralRadius = &rho
		out.Converges = &conv
	}
	if res := rep.Direct; res != nil {
		out.L = numberRows(res.L)
		out.U = numberRows(res.U)
		out.Z = numbers(res.Z)
	}
	return out
}

// Report renders one solve of sys.
func (r *Renderer) Report(sys *matrix.System, rep *solver.Report) error {
	if r.format == FormatJSON {
		return r.JSON(NewReportJSON(rep))
	}

	r.Header(fmt.Sprintf("%s method", rep.Label()))
	r.Matrix("A", sys.A)
	r.Vector("b", sys.B)

	if res := rep.Iterative; res != nil {
		r.iterativeDetails(rep, res)
	}
	if res := rep.Direct; res != nil {
		r.Matrix("L", res.L)
		r.Matrix("U", res.U)
		r.Vector("Z", res.Z)
	}

	r.Vector("x", rep.Solution)
	r.Header("Summary")
	if rep.Converged() {
		r.Success(rep.Status())
	} else {
		r.Warning(rep.Status())
	}
	r.Field("Residual ‖Ax−b‖∞", r.Num(rep.Residual))
	if !rep.Dominance.Dominant {
		r.Warning(fmt.Sprintf("matrix is not diagonally dominant (rows %s)", joinRows(rep.Dominance.WeakRows())))
	}
	return nil
}

func (r *Renderer) iterativeDetails(rep *solver.Report, res *iterative.Result) {
	r.Matrix("L (strictly lower)", res.Split.L)
	r.Matrix("D (diagonal)", res.Split.D)
	r.Matrix("U (strictly upper)", res.Split.U)

	if m := res.Map; m != nil {
		r.Matrix("H = "+m.HFormula, m.H)
		r.Vector("C = "+m.CFormula, m.C)
	} else {
		r.Muted(fmt.Sprintf("iteration map unavailable: %v", res.MapErr))
	}
	if rep.HasSpectralRadius {
		r.Field("Spectral radius ρ(H)", r.Num(rep.SpectralRadius))
		if rep.Converges() {
			r.Success("ρ(H) < 1: the iteration converges from any start")
		} else {
			r.Warning("ρ(H) ≥ 1: the iteration is not guaranteed to converge")
		}
	}

	r.Header("Iterations")
	r.Trace(res)
}

// Trace prints one row per iterate: k, the components of x_k and the
// L∞ step from the previous iterate.
func (r *Renderer) Trace(res *iterative.Result) {
	if len(res.Trace) == 0 {
		r.Muted("(no iterations)")
		return
	}
	n := len(res.Trace[0])
	header := make([]string, 0, n+2)
	header = append(header, "k")
	for i := 1; i <= n; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	header = append(header, "error")

	rows := make([][]string, 0, len(res.Trace))
	for k, x := range res.Trace {
		row := make([]string, 0, n+2)
		row = append(row, strconv.Itoa(k))
		for _, v := range x {
			row = append(row, r.Num(v))
		}
		if k == 0 {
			row = append(row, "")
		} else {
			row = append(row, r.Num(res.Errors[k-1]))
		}
		rows = append(rows, row)
	}
	r.Table(header, rows)
}

// OutcomeJSON is the json shape of one entry in a comparison.
type OutcomeJSON struct {
	Method string      `json:"method"`
	Error  string      `json:"error,omitempty"`
	Report *ReportJSON `json:"report,omitempty"`
}

// ComparisonJSON is the json shape of a comparison run.
type ComparisonJSON struct {
	Outcomes  []OutcomeJSON `json:"outcomes"`
	Succeeded int           `json:"succeeded"`
	Spread    Number        `json:"max_deviation"`
}

// Comparison renders the outcomes of solver.Compare.
func (r *Renderer) Comparison(outcomes []solver.Outcome) error {
	spread, ok := solver.Spread(outcomes)
	if r.format == FormatJSON {
		out := ComparisonJSON{Succeeded: ok, Spread: Number(spread)}
		for _, o := range outcomes {
			entry := OutcomeJSON{Method: o.Method.String()}
			if o.Err != nil {
				entry.Error = o.Err.Error()
			} else {
				rj := NewReportJSON(o.Report)
				entry.Report = &rj
			}
			out.Outcomes = append(out.Outcomes, entry)
		}
		return r.JSON(out)
	}

	r.Header("Comparison")
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			rows = append(rows, []string{o.Method.String(), "failed: " + o.Err.Error(), "", ""})
			continue
		}
		rep := o.Report
		xs := make([]string, len(rep.Solution))
		for i, v := range rep.Solution {
			xs[i] = r.Num(v)
		}
		rows = append(rows, []string{rep.Label(), rep.Status(), "[" + strings.Join(xs, ", ") + "]", r.Num(rep.Residual)})
	}
	r.Table([]string{"method", "status", "x", "residual"}, rows)

	if ok > 1 {
		r.Field("Max deviation between solutions", r.Num(spread))
	}
	if ok < len(outcomes) {
		r.Warning(fmt.Sprintf("%d of %d methods failed", len(outcomes)-ok, len(outcomes)))
	}
	return nil
}

func joinRows(rows []int) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = strconv.Itoa(row + 1)
	}
	return strings.Join(parts, ", ")
}
