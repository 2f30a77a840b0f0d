package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goclt/internal/diagram"
	"github.com/alexiusacademia/goclt/internal/layup"
)

var layupFile string

var layupCmd = &cobra.Command{
	Use:   "layup",
	Short: "Create and edit layups stored in JSON files",
	Long: `Create and edit a layup (ply stack) stored in a JSON file.

Ply 1 is the bottom of the stack. Bending stiffness is integrated over
the upper half of the stack (plies N/2+1..N) and mirrored, so the
stack is expected to be symmetric; 'mirror' builds the lower half from
the plies entered so far.

Subcommands:
  add     - Add a ply (creates the file if needed)
  set     - Set name, description and sandwich core
  move    - Move a ply up or down
  delete  - Delete a ply
  clear   - Delete every ply
  mirror  - Prepend a mirrored copy to make the stack symmetric
  show    - Show the stack with ply z-coordinates

Example JSON file structure:
{
  "name": "Cross-ply",
  "has_core": false,
  "core_thickness": 0,
  "plies": [
    {"material": "T300/5208", "thickness": 0.125, "orientation": 0},
    {"material": "T300/5208", "thickness": 0.125, "orientation": 90},
    {"material": "T300/5208", "thickness": 0.125, "orientation": 90},
    {"material": "T300/5208", "thickness": 0.125, "orientation": 0}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(layupCmd)

	layupCmd.PersistentFlags().StringVarP(&layupFile, "file", "f", "", "Path to layup JSON file [required]")
	layupCmd.MarkPersistentFlagRequired("file")
}

// loadLayup reads the layup file. A missing file yields an empty stack when
// allowMissing is set.
func loadLayup(allowMissing bool) (*layup.Stack, error) {
	s, err := layup.LoadFromFile(layupFile)
	if err != nil {
		if allowMissing && errors.Is(err, fs.ErrNotExist) {
			appLog.Info("creating new layup file", "file", layupFile)
			return &layup.Stack{}, nil
		}
		return nil, fmt.Errorf("load layup: %w", err)
	}
	return s, nil
}

func saveLayup(cmd *cobra.Command, s *layup.Stack, action string) error {
	if err := s.SaveToFile(layupFile); err != nil {
		return fmt.Errorf("save layup: %w", err)
	}
	appLog.Debug("layup saved", "file", layupFile, "action", action, "plies", s.Len())
	fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s (%d plies)\n", action, layupFile, s.Len())
	return nil
}

var layupShowDiagram bool

var layupShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the plies of a layup",
	Args:  cobra.NoArgs,
	RunE:  runLayupShow,
}

func init() {
	layupCmd.AddCommand(layupShowCmd)
	layupShowCmd.Flags().BoolVar(&layupShowDiagram, "diagram", false, "Show ASCII stack diagram")
}

func runLayupShow(cmd *cobra.Command, args []string) error {
	s, err := loadLayup(false)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	banner(out, "LAYUP")
	writeLayup(cmd, s)
	if layupShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIIStackDiagram(diagram.FromStack(s, 0)))
	}
	return nil
}

func writeLayup(cmd *cobra.Command, s *layup.Stack) {
	out := cmd.OutOrStdout()
	if s.Name != "" {
		fmt.Fprintf(out, "  Layup: %s\n", s.Name)
	}
	if s.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", s.Description)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "PLIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if s.Len() == 0 {
		fmt.Fprintln(out, "  (no plies)")
		fmt.Fprintln(out)
		return
	}

	z := s.ZCoordinates()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ply\tMaterial\tt (mm)\tθ (°)\tz outer (mm)\tID\n")
	fmt.Fprintf(w, "  ───\t────────\t──────\t─────\t────────────\t──\n")
	for i, p := range s.Plies() {
		zs := "n/a"
		if i < len(z) {
			zs = fmt.Sprintf("%.4f", z[i])
		}
		fmt.Fprintf(w, "  %d\t%s\t%.4f\t%.1f\t%s\t%s\n", p.Index, p.Material, p.Thickness, p.Orientation, zs, shortID(p.ID))
	}
	w.Flush()
	fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ply thickness H:\t%.4f mm\n", s.TotalThickness())
	if core, ok := s.CoreThickness(); ok {
		fmt.Fprintf(w, "  Core offset:\t%.4f mm each side\n", core)
	}
	symmetric := "✓"
	if !s.IsSymmetric() {
		symmetric = "⚠ no (bending uses the upper half mirrored)"
	}
	fmt.Fprintf(w, "  Symmetric:\t%s\n", symmetric)
	w.Flush()
	fmt.Fprintln(out)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// layupExists is used by 'set' to decide whether it is creating the file.
func layupExists() bool {
	_, err := os.Stat(layupFile)
	return err == nil
}
