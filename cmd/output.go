package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goclt/internal/clt"
	"github.com/alexiusacademia/goclt/internal/mat3"
	"github.com/alexiusacademia/goclt/internal/report"
)

const heavyRule = "═══════════════════════════════════════════════════════════════"

func banner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w)
}

func printer(cmd *cobra.Command, sig int) report.Printer {
	if sig <= 0 {
		sig = cfg.Output.SignificantFigures
	}
	return report.Printer{W: cmd.OutOrStdout(), Sig: sig}
}

var (
	stressRows   = []string{"σ₁", "σ₂", "σ₆"}
	strainCols   = []string{"ε₁", "ε₂", "ε₆"}
	strainRows   = []string{"ε₁", "ε₂", "ε₆"}
	stressCols   = []string{"σ₁", "σ₂", "σ₆"}
	forceCols    = []string{"N₁", "N₂", "N₆"}
	momentCols   = []string{"M₁", "M₂", "M₆"}
	curveCols    = []string{"κ₁", "κ₂", "κ₆"}
	onStrainCols = []string{"εx", "εy", "εs"}
	onStressCols = []string{"σx", "σy", "σs"}
)

// writeStiffness prints a stiffness matrix and its compliance.
func writeStiffness(p report.Printer, name string, stiff, comp mat3.Mat3, stiffUnit, compUnit string) {
	p.Matrix(report.Table{Title: name, Rows: stressRows, Columns: strainCols, Unit: stiffUnit}, stiff)
	p.Matrix(report.Table{Title: complianceName(name), Rows: strainRows, Columns: stressCols, Unit: compUnit}, comp)
}

func complianceName(stiffness string) string {
	switch stiffness {
	case "Q":
		return "S"
	case "Qbar":
		return "Sbar"
	case "A":
		return "a"
	case "D":
		return "d"
	}
	return stiffness + "⁻¹"
}

func writePlyStiffness(p report.Printer, on clt.Stiffness, off clt.OffAxisStiffness) {
	p.Section("On-axis stiffness")
	writeStiffness(p, "Q", on.Q, on.S, "GPa", "1/GPa")
	p.Section(fmt.Sprintf("Off-axis stiffness at θ = %g°", off.Theta))
	writeStiffness(p, "Qbar", off.Qbar, off.Sbar, "GPa", "1/GPa")
}
