package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goclt/internal/clt"
	"github.com/alexiusacademia/goclt/internal/diagram"
	"github.com/alexiusacademia/goclt/internal/layup"
	"github.com/alexiusacademia/goclt/internal/mat3"
	"github.com/alexiusacademia/goclt/internal/report"
)

var (
	analyzeFile        string
	analyzeN           [3]float64
	analyzeM           [3]float64
	analyzePly         int
	analyzePosition    string
	analyzeSig         int
	analyzeShowDiagram bool
	analyzeExportFile  string
	analyzeSectionFile string
)

var laminateAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a laminate under in-plane loads and moments",
	Long: `Assemble the extensional (A) and bending (D) stiffness of a layup,
solve for mid-plane strain and curvature under the applied loads, and
recover strain and stress in a selected ply.

Every ply is assembled with the material of the last ply in the stack.
Ply stress uses the selected ply's own material.

Examples:
  goclt laminate analyze -f cross.json --n1 1000
  goclt laminate analyze -f cross.json --n1 1000 --m1 0.5 --ply 2 --position middle
  goclt laminate analyze -f sandwich.json --m1 10 --ply 4 --diagram -o profile.png`,
	Args: cobra.NoArgs,
	RunE: runLaminateAnalyze,
}

func init() {
	laminateCmd.AddCommand(laminateAnalyzeCmd)

	laminateAnalyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to layup JSON file [required]")
	laminateAnalyzeCmd.MarkFlagRequired("file")

	// Loads
	laminateAnalyzeCmd.Flags().Float64Var(&analyzeN[0], "n1", 0, "In-plane load N₁ (N/m)")
	laminateAnalyzeCmd.Flags().Float64Var(&analyzeN[1], "n2", 0, "In-plane load N₂ (N/m)")
	laminateAnalyzeCmd.Flags().Float64Var(&analyzeN[2], "n6", 0, "In-plane shear load N₆ (N/m)")
	laminateAnalyzeCmd.Flags().Float64Var(&analyzeM[0], "m1", 0, "Moment M₁ (N·m/m)")
	laminateAnalyzeCmd.Flags().Float64Var(&analyzeM[1], "m2", 0, "Moment M₂ (N·m/m)")
	laminateAnalyzeCmd.Flags().Float64Var(&analyzeM[2], "m6", 0, "Twisting moment M₆ (N·m/m)")

	// Ply selection
	laminateAnalyzeCmd.Flags().IntVar(&analyzePly, "ply", 0, "Ply number for strain/stress recovery (0 = none)")
	laminateAnalyzeCmd.Flags().StringVar(&analyzePosition, "position", "", "Position in the ply: outer, middle, inner (default from config)")

	// Output options
	laminateAnalyzeCmd.Flags().IntVar(&analyzeSig, "sig", 0, "Significant figures (default from config)")
	laminateAnalyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII stack and strain diagrams")
	laminateAnalyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export strain profile plot (png, svg, pdf)")
	laminateAnalyzeCmd.Flags().StringVar(&analyzeSectionFile, "section-output", "", "Export laminate section drawing (png, svg, pdf)")
}

func runLaminateAnalyze(cmd *cobra.Command, args []string) error {
	stack, err := layup.LoadFromFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("load layup: %w", err)
	}

	position := analyzePosition
	if position == "" {
		position = cfg.Output.Position
	}
	pos, err := clt.ParsePosition(position)
	if err != nil {
		return err
	}

	req := clt.Request{
		Load:     clt.LoadState{N: mat3.Vec3(analyzeN), M: mat3.Vec3(analyzeM)},
		Ply:      analyzePly,
		Position: pos,
	}

	engine := clt.NewEngine(catalog, appLog)
	res, err := engine.Calculate(stack, req)
	if err != nil && !clt.IsPartial(err) {
		return err
	}

	out := cmd.OutOrStdout()
	p := printer(cmd, analyzeSig)

	banner(out, "CLASSICAL LAMINATION THEORY ANALYSIS")
	writeLayup(cmd, stack)

	writeLaminate(out, p, res, stack.Len())
	writeResponse(out, p, req.Load, res.Response)

	if res.Ply != nil {
		writePlyResult(out, p, res.Ply)
	} else {
		fmt.Fprintln(out, "PLY RESULTS:")
		fmt.Fprintln(out, report.Rule)
		fmt.Fprintln(out, "  No ply selected. Use --ply N for ply strain and stress.")
		fmt.Fprintln(out)
	}

	profile := strainPoints(clt.StrainProfile(stack, res.Response))

	if analyzeShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIIStackDiagram(diagram.FromStack(stack, analyzePly)))
		fmt.Fprintln(out, diagram.DrawStrainDiagram(profile, 0))
		fmt.Fprintln(out, diagram.DrawStrainGraph(profile))
	}

	if analyzeExportFile != "" {
		written, err := diagram.ExportStrainProfile(profile, analyzeExportFile)
		if err != nil {
			return fmt.Errorf("export strain profile: %w", err)
		}
		fmt.Fprintf(out, "  Strain profile exported to: %s\n", written)
	}
	if analyzeSectionFile != "" {
		written, err := diagram.ExportStackSection(diagram.FromStack(stack, analyzePly), analyzeSectionFile)
		if err != nil {
			return fmt.Errorf("export section: %w", err)
		}
		fmt.Fprintf(out, "  Section drawing exported to: %s\n", written)
	}

	return nil
}

func writeLaminate(out io.Writer, p report.Printer, res *clt.Result, plies int) {
	ext, bend := res.Extensional, res.Bending

	p.Section("Laminate")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stiffness material (last ply):\t%s\n", ext.Representative)
	fmt.Fprintf(w, "  Ply thickness H:\t%.4f mm\n", ext.Thickness)
	fmt.Fprintf(w, "  Laminate height h:\t%.4f mm\n", bend.Height)
	fmt.Fprintf(w, "  Core fraction:\t%.4f\n", bend.CoreFraction)
	w.Flush()
	fmt.Fprintln(out)

	if bend.Symmetry == clt.StackAssumedSymmetric {
		if plies%2 == 1 {
			fmt.Fprintln(out, "  ⚠ The stack has an odd ply count. D counts the middle ply")
			fmt.Fprintln(out, "    on both sides of the mid-plane.")
		} else {
			fmt.Fprintln(out, "  ⚠ The stack is not symmetric. D is built from the upper half")
			fmt.Fprintln(out, "    of the stack mirrored about the mid-plane.")
		}
		fmt.Fprintln(out)
	}

	p.Section("Extensional stiffness")
	writeStiffness(p, "A", ext.A, ext.Compliance(), "GPa·m", "1/(GPa·m)")
	p.Section("Bending stiffness")
	writeStiffness(p, "D", bend.D, bend.Compliance(), "N·m", "1/(N·m)")
}

func writeResponse(out io.Writer, p report.Printer, load clt.LoadState, resp clt.Response) {
	p.Section("Applied loads")
	p.Vector(report.Table{Columns: forceCols, Unit: "N/m"}, load.N)
	p.Vector(report.Table{Columns: momentCols, Unit: "N·m/m"}, load.M)
	fmt.Fprintln(out)

	p.Section("Mid-plane strain")
	p.Vector(report.Table{Columns: strainCols}, resp.MidplaneStrain)
	fmt.Fprintln(out)

	p.Section("Curvature")
	p.Vector(report.Table{Columns: curveCols, Unit: "1/m"}, resp.Curvature)
	fmt.Fprintln(out)
}

func writePlyResult(out io.Writer, p report.Printer, r *clt.PlyResult) {
	p.Section(fmt.Sprintf("Ply %d", r.Ply.Index))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", r.Material.Name)
	fmt.Fprintf(w, "  Thickness:\t%.4f mm\n", r.Ply.Thickness)
	fmt.Fprintf(w, "  Orientation:\t%g°\n", r.Ply.Orientation)
	fmt.Fprintf(w, "  Position:\t%s\n", strings.ToLower(r.Position.String()))
	fmt.Fprintf(w, "  z (outer face):\t%.4f mm\n", r.Z)
	fmt.Fprintf(w, "  z (evaluated):\t%.4f mm\n", r.ZOfInterest)
	w.Flush()
	fmt.Fprintln(out)

	writeStrength(out, r.Material.Strength)
	writePlyStiffness(p, r.OnAxis, r.OffAxis)

	p.Section("Off-axis strain")
	p.Vector(report.Table{Columns: strainCols}, r.OffAxisStrain)
	fmt.Fprintln(out)
	p.Section("On-axis strain")
	p.Vector(report.Table{Columns: onStrainCols}, r.OnAxisStrain)
	fmt.Fprintln(out)
	p.Section("On-axis stress")
	p.Vector(report.Table{Columns: onStressCols, Unit: "MPa"}, r.OnAxisStress)
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox(fmt.Sprintf("PLY %d %s STRESS", r.Ply.Index, strings.ToUpper(r.Position.String())), []string{
		fmt.Sprintf("σx = %s MPa", report.Format(r.OnAxisStress[0], p.Sig)),
		fmt.Sprintf("σy = %s MPa", report.Format(r.OnAxisStress[1], p.Sig)),
		fmt.Sprintf("σs = %s MPa", report.Format(r.OnAxisStress[2], p.Sig)),
	}))
	fmt.Fprintln(out)
}

func strainPoints(pts []clt.ProfilePoint) []diagram.StrainPoint {
	out := make([]diagram.StrainPoint, len(pts))
	for i, p := range pts {
		out[i] = diagram.StrainPoint{Ply: p.Ply, Z: p.Z, Strain: p.Strain}
	}
	return out
}
