package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goclt/internal/clt"
	"github.com/alexiusacademia/goclt/internal/layup"
	"github.com/alexiusacademia/goclt/internal/material"
)

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeStack(t *testing.T, s *layup.Stack) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layup.json")
	require.NoError(t, s.SaveToFile(path))
	return path
}

func crossPly() *layup.Stack {
	s := &layup.Stack{Name: "Cross-ply"}
	s.Add(layup.NewPly("T300/5208", 0.125, 0))
	s.Add(layup.NewPly("T300/5208", 0.125, 90))
	s.Mirror()
	return s
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "goclt v")
}

func TestMaterialList(t *testing.T) {
	out, err := run(t, "material", "list")
	require.NoError(t, err)
	for _, name := range []string{"T300/5208", "B4/5505", "AS/H3501", "Scotchply 1002", "Kevlar49/epoxy"} {
		assert.Contains(t, out, name)
	}
}

func TestMaterialShow(t *testing.T) {
	out, err := run(t, "material", "show", "T300/5208")
	require.NoError(t, err)
	assert.Contains(t, out, "1.82e+02")
	assert.Contains(t, out, "1500.0 MPa")
	assert.Contains(t, out, "U5:")

	_, err = run(t, "material", "show", "Unobtainium")
	assert.ErrorIs(t, err, material.ErrNotFound)
}

func TestPly(t *testing.T) {
	out, err := run(t, "ply", "-m", "T300/5208", "--angle", "90", "--sig", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "AT Θ = 90°")
	assert.Contains(t, out, "1.818e+02")
	assert.Contains(t, out, "Qbar")
	assert.Contains(t, out, "Sbar")

	_, err = run(t, "ply")
	assert.Error(t, err, "material is required")
}

func TestLayupEditing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new", "cross.json")

	_, err := run(t, "layup", "add", "-f", path, "-m", "T300/5208", "-t", "0.125", "-a", "0")
	require.NoError(t, err)
	_, err = run(t, "layup", "add", "-f", path, "-m", "T300/5208", "-t", "0.125", "-a", "90", "--count", "2")
	require.NoError(t, err)
	_, err = run(t, "layup", "delete", "3", "-f", path)
	require.NoError(t, err)
	_, err = run(t, "layup", "mirror", "-f", path)
	require.NoError(t, err)

	s, err := layup.LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())
	var angles []float64
	for _, p := range s.Layers {
		angles = append(angles, p.Orientation)
	}
	assert.Equal(t, []float64{90, 0, 0, 90}, angles)
	assert.True(t, s.IsSymmetric())

	_, err = run(t, "layup", "move", "1", "--down", "-f", path)
	require.NoError(t, err)
	s, err = layup.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Layers[0].Orientation)
	assert.Equal(t, 90.0, s.Layers[1].Orientation)

	_, err = run(t, "layup", "set", "-f", path, "--name", "Sandwich", "--core", "2.5")
	require.NoError(t, err)

	out, err := run(t, "layup", "show", "-f", path, "--diagram")
	require.NoError(t, err)
	assert.Contains(t, out, "Layup: Sandwich")
	assert.Contains(t, out, "Core offset:")
	assert.Contains(t, out, "⚠ no")
	assert.Contains(t, out, "-2.7500")
	assert.Contains(t, out, "core 2.500 mm")

	_, err = run(t, "layup", "clear", "-f", path)
	require.NoError(t, err)
	s, err = layup.LoadFromFile(path)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	assert.True(t, s.HasCore)
}

func TestLayupErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "l.json")

	_, err := run(t, "layup", "add", "-f", path, "-m", "Unobtainium", "-t", "1")
	assert.ErrorIs(t, err, material.ErrNotFound)

	_, err = run(t, "layup", "show", "-f", path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "layup", "add", "-f", path, "-m", "T300/5208", "-t", "1")
	require.NoError(t, err)
	_, err = run(t, "layup", "delete", "5", "-f", path)
	assert.Error(t, err)
	_, err = run(t, "layup", "move", "x", "--up", "-f", path)
	assert.ErrorContains(t, err, "ply must be a number")
}

func TestLaminateAnalyze(t *testing.T) {
	path := writeStack(t, crossPly())

	out, err := run(t, "laminate", "analyze", "-f", path, "--n1", "1000", "--m1", "0.5", "--ply", "2", "--position", "middle")
	require.NoError(t, err)
	assert.Contains(t, out, "EXTENSIONAL STIFFNESS")
	assert.Contains(t, out, "BENDING STIFFNESS")
	assert.Contains(t, out, "MID-PLANE STRAIN")
	assert.Contains(t, out, "PLY 2")
	assert.Contains(t, out, "ON-AXIS STRESS")
	assert.Contains(t, out, "1.00e+03")
	assert.NotContains(t, out, "not symmetric")
	assert.NotContains(t, out, "No ply selected")
}

func TestLaminateAnalyze_NoPlySelected(t *testing.T) {
	path := writeStack(t, crossPly())

	out, err := run(t, "laminate", "analyze", "-f", path, "--n1", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "No ply selected")
	assert.Contains(t, out, "EXTENSIONAL STIFFNESS")
}

func TestLaminateAnalyze_AsymmetricWarning(t *testing.T) {
	s := &layup.Stack{}
	s.Add(layup.NewPly("T300/5208", 0.125, 0))
	s.Add(layup.NewPly("T300/5208", 0.125, 90))

	out, err := run(t, "laminate", "analyze", "-f", writeStack(t, s), "--ply", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "not symmetric")
}

func TestLaminateAnalyze_OddStackWarning(t *testing.T) {
	s := &layup.Stack{}
	s.Add(layup.NewPly("T300/5208", 0.125, 0))
	s.Add(layup.NewPly("T300/5208", 0.125, 90))
	s.Add(layup.NewPly("T300/5208", 0.125, 0))

	out, err := run(t, "laminate", "analyze", "-f", writeStack(t, s), "--ply", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "odd ply count")
	assert.NotContains(t, out, "not symmetric")
}

func TestLaminateAnalyze_Errors(t *testing.T) {
	_, err := run(t, "laminate", "analyze", "-f", writeStack(t, &layup.Stack{}))
	assert.ErrorIs(t, err, clt.ErrEmptyLayup)

	_, err = run(t, "laminate", "analyze", "-f", writeStack(t, crossPly()), "--ply", "7")
	assert.ErrorIs(t, err, clt.ErrPlyOutOfRange)

	_, err = run(t, "laminate", "analyze", "-f", writeStack(t, crossPly()), "--position", "top")
	assert.Error(t, err)
}

func TestLaminateAnalyze_Exports(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.png")
	section := filepath.Join(dir, "section.svg")

	out, err := run(t, "laminate", "analyze", "-f", writeStack(t, crossPly()),
		"--m1", "1", "--ply", "1", "--diagram", "-o", profile, "--section-output", section)
	require.NoError(t, err)
	assert.Contains(t, out, "◄ selected")
	assert.Contains(t, out, "STRAIN DISTRIBUTION")

	assert.FileExists(t, profile)
	assert.FileExists(t, section)
	assert.Contains(t, out, "Strain profile exported to: "+profile)
}

func TestLaminateAnalyze_ExportUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.dat")
	section := filepath.Join(dir, "section")

	out, err := run(t, "laminate", "analyze", "-f", writeStack(t, crossPly()),
		"--n1", "1000", "-o", profile, "--section-output", section)
	require.NoError(t, err)

	assert.Contains(t, out, "Strain profile exported to: "+profile+".png")
	assert.Contains(t, out, "Section drawing exported to: "+section+".png")
	assert.FileExists(t, profile+".png")
	assert.FileExists(t, section+".png")
	assert.NoFileExists(t, profile)
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "goclt.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output:
  significant_figures: 5
materials:
  - name: Glass/epoxy
    elastic: {ex: 40, ey: 9, es: 4, nu: 0.3}
`), 0o644))

	out, err := run(t, "--config", cfgPath, "material", "show", "Glass/epoxy")
	require.NoError(t, err)
	assert.Contains(t, out, "4.0827e+01")
}
