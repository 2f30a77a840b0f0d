package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goclt/internal/layup"
)

var (
	layupAddMaterial  string
	layupAddThickness float64
	layupAddAngle     float64
	layupAddAt        int
	layupAddCount     int
)

var layupAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a ply to the layup",
	Long: `Add a ply to the layup. The ply is appended to the top of the stack
unless --at gives the position it should take.

Examples:
  goclt layup add -f cross.json -m T300/5208 -t 0.125 -a 0
  goclt layup add -f cross.json -m T300/5208 -t 0.125 -a 90 --count 2
  goclt layup add -f cross.json -m AS/H3501 -t 0.25 -a 45 --at 1`,
	Args: cobra.NoArgs,
	RunE: runLayupAdd,
}

var layupSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the layup name, description and core",
	Long: `Set layup attributes. A sandwich core is described by its offset from
the mid-plane to the first ply on each side (mm).

Examples:
  goclt layup set -f sandwich.json --name "Sandwich" --core 5
  goclt layup set -f sandwich.json --no-core`,
	Args: cobra.NoArgs,
	RunE: runLayupSet,
}

var layupMoveCmd = &cobra.Command{
	Use:   "move PLY",
	Short: "Move a ply one position up or down",
	Example: `  goclt layup move 3 --up -f cross.json
  goclt layup move 1 --down -f cross.json`,
	Args: cobra.ExactArgs(1),
	RunE: runLayupMove,
}

var layupDeleteCmd = &cobra.Command{
	Use:   "delete PLY",
	Short: "Delete a ply",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayupDelete,
}

var layupClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every ply (the core setting is kept)",
	Args:  cobra.NoArgs,
	RunE:  runLayupClear,
}

var layupMirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Prepend a reversed copy of the plies to make the stack symmetric",
	Args:  cobra.NoArgs,
	RunE:  runLayupMirror,
}

var (
	layupSetName        string
	layupSetDescription string
	layupSetCore        float64
	layupSetNoCore      bool

	layupMoveUp   bool
	layupMoveDown bool
)

func init() {
	layupCmd.AddCommand(layupAddCmd, layupSetCmd, layupMoveCmd, layupDeleteCmd, layupClearCmd, layupMirrorCmd)

	layupAddCmd.Flags().StringVarP(&layupAddMaterial, "material", "m", "", "Material name [required]")
	layupAddCmd.Flags().Float64VarP(&layupAddThickness, "thickness", "t", 0, "Ply thickness (mm) [required]")
	layupAddCmd.Flags().Float64VarP(&layupAddAngle, "angle", "a", 0, "Fibre orientation θ (degrees)")
	layupAddCmd.Flags().IntVar(&layupAddAt, "at", 0, "Insert as this ply number instead of appending")
	layupAddCmd.Flags().IntVar(&layupAddCount, "count", 1, "Number of identical plies to add")
	layupAddCmd.MarkFlagRequired("material")
	layupAddCmd.MarkFlagRequired("thickness")

	layupSetCmd.Flags().StringVar(&layupSetName, "name", "", "Layup name")
	layupSetCmd.Flags().StringVar(&layupSetDescription, "description", "", "Layup description")
	layupSetCmd.Flags().Float64Var(&layupSetCore, "core", 0, "Core offset from the mid-plane (mm)")
	layupSetCmd.Flags().BoolVar(&layupSetNoCore, "no-core", false, "Remove the core")
	layupSetCmd.MarkFlagsMutuallyExclusive("core", "no-core")

	layupMoveCmd.Flags().BoolVar(&layupMoveUp, "up", false, "Move toward ply 1")
	layupMoveCmd.Flags().BoolVar(&layupMoveDown, "down", false, "Move toward ply N")
	layupMoveCmd.MarkFlagsMutuallyExclusive("up", "down")
	layupMoveCmd.MarkFlagsOneRequired("up", "down")
}

func runLayupAdd(cmd *cobra.Command, args []string) error {
	if _, err := catalog.Lookup(layupAddMaterial); err != nil {
		return err
	}
	if layupAddThickness <= 0 {
		return fmt.Errorf("ply thickness must be positive, got %g", layupAddThickness)
	}
	if layupAddCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", layupAddCount)
	}

	s, err := loadLayup(true)
	if err != nil {
		return err
	}
	for i := 0; i < layupAddCount; i++ {
		p := layup.NewPly(layupAddMaterial, layupAddThickness, layupAddAngle)
		if layupAddAt > 0 {
			if err := s.Insert(layupAddAt+i, p); err != nil {
				return err
			}
		} else {
			s.Add(p)
		}
	}
	return saveLayup(cmd, s, "Added")
}

func runLayupSet(cmd *cobra.Command, args []string) error {
	s, err := loadLayup(true)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("name") {
		s.Name = layupSetName
	}
	if flags.Changed("description") {
		s.Description = layupSetDescription
	}
	if flags.Changed("core") {
		if layupSetCore < 0 {
			return fmt.Errorf("core thickness must be greater than or equal to zero, got %g", layupSetCore)
		}
		s.HasCore, s.Core = true, layupSetCore
	}
	if layupSetNoCore {
		s.HasCore, s.Core = false, 0
	}
	action := "Updated"
	if !layupExists() {
		action = "Created"
	}
	return saveLayup(cmd, s, action)
}

func parsePlyArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("ply must be a number, got %q", arg)
	}
	return n, nil
}

func runLayupMove(cmd *cobra.Command, args []string) error {
	n, err := parsePlyArg(args[0])
	if err != nil {
		return err
	}
	s, err := loadLayup(false)
	if err != nil {
		return err
	}
	if layupMoveUp {
		err = s.MoveUp(n)
	} else {
		err = s.MoveDown(n)
	}
	if err != nil {
		return err
	}
	return saveLayup(cmd, s, "Moved")
}

func runLayupDelete(cmd *cobra.Command, args []string) error {
	n, err := parsePlyArg(args[0])
	if err != nil {
		return err
	}
	s, err := loadLayup(false)
	if err != nil {
		return err
	}
	if err := s.Delete(n); err != nil {
		return err
	}
	return saveLayup(cmd, s, "Deleted")
}

func runLayupClear(cmd *cobra.Command, args []string) error {
	s, err := loadLayup(false)
	if err != nil {
		return err
	}
	s.Clear()
	return saveLayup(cmd, s, "Cleared")
}

func runLayupMirror(cmd *cobra.Command, args []string) error {
	s, err := loadLayup(false)
	if err != nil {
		return err
	}
	if s.Len() == 0 {
		return fmt.Errorf("nothing to mirror: %s has no plies", layupFile)
	}
	s.Mirror()
	return saveLayup(cmd, s, "Mirrored")
}
