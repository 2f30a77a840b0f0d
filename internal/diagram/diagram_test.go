package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goclt/internal/layup"
)

func crossPly() *layup.Stack {
	s := &layup.Stack{Name: "cross-ply"}
	s.Add(layup.NewPly("T300/5208", 0.125, 0))
	s.Add(layup.NewPly("T300/5208", 0.25, 90))
	s.Mirror()
	return s
}

func TestFromStack(t *testing.T) {
	s := crossPly()
	s.HasCore = true
	s.Core = 1

	data := FromStack(s, 2)
	require.Len(t, data.Plies, 4)
	assert.Equal(t, "cross-ply", data.Name)
	assert.Equal(t, 1.0, data.Core)
	assert.Equal(t, 2, data.Selected)

	// Mirror gives 90/0/0/90 with the 0.25 mm plies outside
	assert.Equal(t, 90.0, data.Plies[0].Orientation)
	assert.Equal(t, -1.375, data.Plies[0].Outer)
	assert.Equal(t, -1.125, data.Plies[0].Inner())
	assert.Equal(t, -1.125, data.Plies[1].Outer)
	assert.Equal(t, -1.0, data.Plies[1].Inner())
	assert.Equal(t, 1.125, data.Plies[2].Outer)
	assert.Equal(t, 1.0, data.Plies[2].Inner())
	assert.Equal(t, 1.375, data.Plies[3].Outer)
	assert.Equal(t, 1.125, data.Plies[3].Inner())
	for _, b := range data.Plies {
		assert.True(t, b.HasZ)
	}
}

func TestFromStack_OddStack(t *testing.T) {
	s := crossPly()
	s.Add(layup.NewPly("T300/5208", 0.1, 45))

	data := FromStack(s, 0)
	require.Len(t, data.Plies, 5)
	assert.False(t, data.Plies[4].HasZ)
	assert.True(t, data.Plies[3].HasZ)
}

func TestDrawASCIIStackDiagram(t *testing.T) {
	out := DrawASCIIStackDiagram(FromStack(crossPly(), 3))

	lines := strings.Split(out, "\n")
	var plyRows []string
	for _, l := range lines {
		if strings.Contains(l, "°") && strings.HasPrefix(strings.TrimSpace(l), "│") {
			plyRows = append(plyRows, l)
		}
	}
	require.Len(t, plyRows, 4)

	// top of the stack first
	assert.Contains(t, plyRows[0], "   4 ")
	assert.Contains(t, plyRows[3], "   1 ")
	assert.Contains(t, plyRows[0], "│││")
	assert.Contains(t, plyRows[1], "───")

	assert.Equal(t, 1, strings.Count(out, "◄ selected"))
	assert.Contains(t, plyRows[1], "◄ selected")
	assert.Equal(t, 1, strings.Count(out, "mid-plane"))
	assert.NotContains(t, out, "no z-coordinate")
}

func TestDrawASCIIStackDiagram_CoreAndOdd(t *testing.T) {
	s := crossPly()
	s.HasCore = true
	s.Core = 2
	s.Add(layup.NewPly("T300/5208", 0.1, -45))

	out := DrawASCIIStackDiagram(FromStack(s, 0))
	assert.Contains(t, out, "core 2.000 mm")
	assert.Contains(t, out, "╲╲╲")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "Ply 5 has no z-coordinate")
	assert.NotContains(t, out, "◄ selected")
}

func TestDrawASCIIStackDiagram_Empty(t *testing.T) {
	assert.Contains(t, DrawASCIIStackDiagram(StackDiagramData{}), "(empty stack)")
}

func TestHatch(t *testing.T) {
	assert.Equal(t, "─", hatch(0))
	assert.Equal(t, "─", hatch(180))
	assert.Equal(t, "│", hatch(90))
	assert.Equal(t, "│", hatch(-90))
	assert.Equal(t, "╱", hatch(45))
	assert.Equal(t, "╲", hatch(-45))
	assert.Equal(t, "╲", hatch(135))
}

func profile() []StrainPoint {
	return []StrainPoint{
		{Ply: 1, Z: -1, Strain: [3]float64{-2e-4, 1e-5, 0}},
		{Ply: 1, Z: 0, Strain: [3]float64{0, 0, 0}},
		{Ply: 2, Z: 0, Strain: [3]float64{0, 0, 0}},
		{Ply: 2, Z: 1, Strain: [3]float64{2e-4, -1e-5, 0}},
	}
}

func TestDrawStrainDiagram(t *testing.T) {
	out := DrawStrainDiagram(profile(), 0)
	assert.Contains(t, out, "ε₁")
	assert.Contains(t, out, "2.000e-04")
	assert.Contains(t, out, "-2.000e-04")

	bars := strings.Count(out, "█")
	assert.Equal(t, 40, bars, "two full-width bars")

	assert.Contains(t, DrawStrainDiagram(nil, 2), "no plies")
}

func TestDrawStrainGraph(t *testing.T) {
	out := DrawStrainGraph(profile())
	assert.Contains(t, out, "µε")
	assert.Contains(t, out, "z = -1.000 to 1.000 mm")
	// Labels above 100 are printed without decimals.
	assert.Regexp(t, `(?m)^\s+200\s+┤`, out)
	assert.Regexp(t, `(?m)^\s+-200\s+┤`, out)
	assert.NotContains(t, out, "200.0")

	assert.Contains(t, DrawStrainGraph(profile()[:1]), "not enough points")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("LAMINATE", []string{"σ₁ = 1.00e+02 MPa", "ok"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
}

func TestExportStrainProfile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out", "profile.png")
	written, err := ExportStrainProfile(profile(), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	for _, name := range []string{"profile", "profile.dat"} {
		base := filepath.Join(dir, name)
		written, err = ExportStrainProfile(profile(), base)
		require.NoError(t, err)
		assert.Equal(t, base+".png", written)
		assert.FileExists(t, written)
		assert.NoFileExists(t, base)
	}

	_, err = ExportStrainProfile(nil, path)
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestExportStackSection(t *testing.T) {
	s := crossPly()
	s.HasCore = true
	s.Core = 0.5

	dir := t.TempDir()
	path := filepath.Join(dir, "section.svg")
	written, err := ExportStackSection(FromStack(s, 1), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)
	assert.FileExists(t, path)

	written, err = ExportStackSection(FromStack(s, 1), filepath.Join(dir, "section"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "section.png"), written)
	assert.FileExists(t, written)

	single := &layup.Stack{}
	single.Add(layup.NewPly("T300/5208", 1, 0))
	_, err = ExportStackSection(FromStack(single, 0), path)
	assert.ErrorIs(t, err, ErrNoProfile)
}
