// SPDX-License-Identifier: MIT

// Package output renders matrices, vectors and solver reports for the CLI in
// table, markdown or json form.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/linsys/matrix"
)

// Output formats understood by the renderer.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Renderer writes formatted output to a pair of streams.
type Renderer struct {
	out       io.Writer
	errOut    io.Writer
	format    string
	precision int
	styles    *Styles
}

// NewRenderer creates a renderer. Unknown formats fall back to table.
func NewRenderer(out, errOut io.Writer, format string, precision int) *Renderer {
	switch format {
	case FormatTable, FormatMarkdown, FormatJSON:
	default:
		format = FormatTable
	}
	if precision < 0 {
		precision = 0
	}
	return &Renderer{
		out:       out,
		errOut:    errOut,
		format:    format,
		precision: precision,
		styles:    DefaultStyles(),
	}
}

// Format returns the effective output format.
func (r *Renderer) Format() string { return r.format }

// Writer returns the main output stream.
func (r *Renderer) Writer() io.Writer { return r.out }

// Num formats v with the configured precision.
func (r *Renderer) Num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', r.precision, 64)
}

// Header prints a section title.
func (r *Renderer) Header(title string) {
	if r.format == FormatMarkdown {
		_, _ = fmt.Fprintf(r.out, "\n### %s\n\n", title)
		return
	}
	_, _ = fmt.Fprintf(r.out, "\n%s\n", r.styles.Title.Render(title))
}

// Field prints a "label: value" line.
func (r *Renderer) Field(label, value string) {
	if r.format == FormatMarkdown {
		_, _ = fmt.Fprintf(r.out, "- **%s:** %s\n", label, value)
		return
	}
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.styles.Label.Render(label+":"), value)
}

// Success prints a positive status line.
func (r *Renderer) Success(msg string) {
	if r.format == FormatMarkdown {
		_, _ = fmt.Fprintf(r.out, "**%s**\n", msg)
		return
	}
	_, _ = fmt.Fprintln(r.out, r.styles.Success.Render("✓ "+msg))
}

// Warning prints a warning line.
func (r *Renderer) Warning(msg string) {
	if r.format == FormatMarkdown {
		_, _ = fmt.Fprintf(r.out, "> **Warning:** %s\n", msg)
		return
	}
	_, _ = fmt.Fprintln(r.out, r.styles.Warning.Render("! "+msg))
}

// Error prints an error line on the error stream.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("✗ "+msg))
}

// Muted prints secondary information.
func (r *Renderer) Muted(msg string) {
	if r.format == FormatMarkdown {
		_, _ = fmt.Fprintf(r.out, "_%s_\n", msg)
		return
	}
	_, _ = fmt.Fprintln(r.out, r.styles.Muted.Render(msg))
}

// Matrix prints m as a table titled name.
func (r *Renderer) Matrix(name string, m *matrix.Dense) {
	r.Header(name)
	if m == nil {
		r.Muted("(none)")
		return
	}
	t := r.newTable()
	for _, row := range m.ToRows() {
		t.AppendRow(r.row(row...))
	}
	r.render(t)
}

// Vector prints v as a one-column table titled name.
func (r *Renderer) Vector(name string, v []float64) {
	r.Header(name)
	t := r.newTable()
	t.AppendHeader(table.Row{"i", name})
	for i, x := range v {
		t.AppendRow(table.Row{i + 1, r.Num(x)})
	}
	r.render(t)
}

// Table prints a generic table with the given header.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := r.newTable()
	h := make(table.Row, len(header))
	for i, c := range header {
		h[i] = c
	}
	t.AppendHeader(h)
	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, c := range row {
			tr[i] = c
		}
		t.AppendRow(tr)
	}
	r.render(t)
}

// JSON encodes v with indentation.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	return t
}

func (r *Renderer) render(t table.Writer) {
	if r.format == FormatMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

func (r *Renderer) row(vals ...float64) table.Row {
	row := make(table.Row, len(vals))
	for i, v := range vals {
		row[i] = r.Num(v)
	}
	return row
}
