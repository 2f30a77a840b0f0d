package cmd

import (
	"github.com/spf13/cobra"
)

var laminateCmd = &cobra.Command{
	Use:   "laminate",
	Short: "Laminate stiffness and load response",
	Long: `Calculate the stiffness of a laminate defined in a layup JSON file
and its response to in-plane loads and moments.

Subcommands:
  analyze  - A, D, mid-plane strain, curvature and ply strain/stress

Units:
  N₁, N₂, N₆  in-plane loads (N/m)
  M₁, M₂, M₆  moments (N·m/m)
  thickness   mm
  stiffness   GPa, stress MPa`,
}

func init() {
	rootCmd.AddCommand(laminateCmd)
}
