package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goclt/internal/clt"
	"github.com/alexiusacademia/goclt/internal/material"
	"github.com/alexiusacademia/goclt/internal/report"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Browse the unidirectional ply material catalog",
	Long: `Browse the catalog of unidirectional ply materials.

The catalog holds five built-in composites. More can be added under
"materials" in the config file:

materials:
  - name: IM7/8552
    elastic:  {ex: 165, ey: 9, es: 5.6, nu: 0.34}     # GPa
    strength: {xt: 2560, yt: 73, xc: 1590, yc: 185, sc: 90}  # MPa

Subcommands:
  list  - List every material with its elastic constants
  show  - Show one material with its on-axis stiffness`,
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog materials",
	Args:  cobra.NoArgs,
	RunE:  runMaterialList,
}

var materialShowSig int

var materialShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a material's properties and on-axis stiffness",
	Example: `  goclt material show T300/5208
  goclt material show "Scotchply 1002" --sig 5`,
	Args: cobra.ExactArgs(1),
	RunE: runMaterialShow,
}

func init() {
	rootCmd.AddCommand(materialCmd)
	materialCmd.AddCommand(materialListCmd)
	materialCmd.AddCommand(materialShowCmd)

	materialShowCmd.Flags().IntVar(&materialShowSig, "sig", 0, "Significant figures (default from config)")
}

func runMaterialList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	banner(out, "UNIDIRECTIONAL PLY MATERIALS")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tEx (GPa)\tEy (GPa)\tEs (GPa)\tν\n")
	fmt.Fprintf(w, "  ────\t────────\t────────\t────────\t─\n")
	for _, name := range catalog.Names() {
		m, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		e := m.Elastic
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\n", m.Name, e.Ex, e.Ey, e.Es, e.Nu)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func runMaterialShow(cmd *cobra.Command, args []string) error {
	m, err := catalog.Lookup(args[0])
	if err != nil {
		return err
	}
	st, err := clt.OnAxis(m.Elastic)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	banner(out, fmt.Sprintf("MATERIAL: %s", m.Name))

	fmt.Fprintln(out, "ELASTIC CONSTANTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ex:\t%.2f GPa\n", m.Elastic.Ex)
	fmt.Fprintf(w, "  Ey:\t%.2f GPa\n", m.Elastic.Ey)
	fmt.Fprintf(w, "  Es:\t%.2f GPa\n", m.Elastic.Es)
	fmt.Fprintf(w, "  νx:\t%.3f\n", m.Elastic.Nu)
	w.Flush()
	fmt.Fprintln(out)

	writeStrength(out, m.Strength)

	p := printer(cmd, materialShowSig)
	p.Section("On-axis stiffness")
	writeStiffness(p, "Q", st.Q, st.S, "GPa", "1/GPa")

	u := clt.NewInvariants(st.Q)
	p.Section("Stiffness invariants")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, v := range []float64{u.U1, u.U2, u.U3, u.U4, u.U5} {
		fmt.Fprintf(w, "  U%d:\t%s GPa\n", i+1, report.Format(v, p.Sig))
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func writeStrength(out io.Writer, s material.Strength) {
	fmt.Fprintln(out, "STRENGTH:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  X (tension):\t%.1f MPa\n", s.Xt)
	fmt.Fprintf(w, "  Y (tension):\t%.1f MPa\n", s.Yt)
	fmt.Fprintf(w, "  X' (compression):\t%.1f MPa\n", s.Xc)
	fmt.Fprintf(w, "  Y' (compression):\t%.1f MPa\n", s.Yc)
	fmt.Fprintf(w, "  S (shear):\t%.1f MPa\n", s.Sc)
	w.Flush()
	fmt.Fprintln(out)
}
