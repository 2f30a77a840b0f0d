package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goclt/internal/clt"
)

var (
	plyMaterial string
	plyAngle    float64
	plySig      int
)

var plyCmd = &cobra.Command{
	Use:   "ply",
	Short: "Calculate on-axis and off-axis stiffness of a single ply",
	Long: `Calculate the reduced stiffness Q and compliance S of a ply along
its fibre axes, and Qbar and Sbar rotated to the laminate axes.

Examples:
  goclt ply -m T300/5208 --angle 45
  goclt ply --material AS/H3501 --angle -30 --sig 5`,
	Args: cobra.NoArgs,
	RunE: runPly,
}

func init() {
	rootCmd.AddCommand(plyCmd)

	plyCmd.Flags().StringVarP(&plyMaterial, "material", "m", "", "Material name [required]")
	plyCmd.Flags().Float64VarP(&plyAngle, "angle", "a", 0, "Fibre orientation θ in degrees")
	plyCmd.Flags().IntVar(&plySig, "sig", 0, "Significant figures (default from config)")
	plyCmd.MarkFlagRequired("material")
}

func runPly(cmd *cobra.Command, args []string) error {
	m, err := catalog.Lookup(plyMaterial)
	if err != nil {
		return err
	}
	on, err := clt.OnAxis(m.Elastic)
	if err != nil {
		return err
	}
	off, err := clt.Rotate(on, plyAngle)
	if err != nil {
		return err
	}
	appLog.Debug("ply stiffness", "material", m.Name, "theta", plyAngle)

	out := cmd.OutOrStdout()
	banner(out, "PLY STIFFNESS")
	fmt.Fprintf(out, "  Material: %s\n", m.Name)
	fmt.Fprintf(out, "  Orientation: %g°\n", plyAngle)
	fmt.Fprintln(out)

	writePlyStiffness(printer(cmd, plySig), on, off)
	return nil
}
