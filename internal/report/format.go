// Package report renders calculation results as text tables.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/goclt/internal/mat3"
)

// DefaultSignificantFigures is used when a non-positive count is given.
const DefaultSignificantFigures = 3

// Format renders v in scientific notation with sig significant figures, or
// "0" when v is zero.
func Format(v float64, sig int) string {
	if v == 0 {
		return "0"
	}
	if sig <= 0 {
		sig = DefaultSignificantFigures
	}
	return fmt.Sprintf("%.*e", sig-1, v)
}

// Table describes the labels of a 3×3 matrix or 3-vector.
type Table struct {
	Title   string
	Rows    []string
	Columns []string
	Unit    string
}

// Rule is the section underline used by every report.
const Rule = "───────────────────────────────────────────────────────────────"

// Printer writes tables with a fixed number of significant figures.
type Printer struct {
	W   io.Writer
	Sig int
}

// Section writes a section heading.
func (p Printer) Section(title string) {
	fmt.Fprintf(p.W, "%s:\n", strings.ToUpper(title))
	fmt.Fprintln(p.W, Rule)
}

// Matrix writes m as a labelled table.
func (p Printer) Matrix(t Table, m mat3.Mat3) {
	w := tabwriter.NewWriter(p.W, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t\n", t.Title, label(t.Columns, 0), label(t.Columns, 1), label(t.Columns, 2))
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t", label(t.Rows, i),
			Format(m[i][0], p.Sig), Format(m[i][1], p.Sig), Format(m[i][2], p.Sig))
		if t.Unit != "" {
			fmt.Fprintf(w, " %s", t.Unit)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(p.W)
}

// Vector writes v as a labelled row.
func (p Printer) Vector(t Table, v mat3.Vec3) {
	w := tabwriter.NewWriter(p.W, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  %s\t%s\t%s\t\n", label(t.Columns, 0), label(t.Columns, 1), label(t.Columns, 2))
	fmt.Fprintf(w, "  %s\t%s\t%s\t", Format(v[0], p.Sig), Format(v[1], p.Sig), Format(v[2], p.Sig))
	if t.Unit != "" {
		fmt.Fprintf(w, " %s", t.Unit)
	}
	fmt.Fprintln(w)
	w.Flush()
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}
