package layup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackOf(thicknesses ...float64) *Stack {
	s := &Stack{}
	for i, t := range thicknesses {
		s.Add(NewPly("T300/5208", t, float64(15*i)))
	}
	return s
}

func indices(s *Stack) []int {
	var out []int
	for _, p := range s.Layers {
		out = append(out, p.Index)
	}
	return out
}

func TestZCoordinates_NoCore(t *testing.T) {
	s := stackOf(1, 2, 2, 1)
	assert.Equal(t, []float64{-3, -2, 2, 3}, s.ZCoordinates())
}

func TestZCoordinates_WithCore(t *testing.T) {
	s := stackOf(0.5, 0.25, 0.25, 0.5)
	s.HasCore = true
	s.Core = 5
	assert.Equal(t, []float64{-5.75, -5.25, 5.25, 5.75}, s.ZCoordinates())
}

func TestZCoordinates_CoreIgnoredWithoutFlag(t *testing.T) {
	s := stackOf(1, 1)
	s.Core = 5
	assert.Equal(t, []float64{-1, 1}, s.ZCoordinates())
}

func TestZCoordinates_OddAndTiny(t *testing.T) {
	assert.Empty(t, stackOf(1).ZCoordinates())
	assert.Empty(t, (&Stack{}).ZCoordinates())
	assert.Equal(t, []float64{-1, 1}, stackOf(1, 1, 1).ZCoordinates())
}

func TestTotalThickness_ExcludesCore(t *testing.T) {
	s := stackOf(0.125, 0.25, 0.125)
	s.HasCore = true
	s.Core = 10
	assert.InDelta(t, 0.5, s.TotalThickness(), 1e-15)
}

func TestEdits_KeepContiguousIndices(t *testing.T) {
	s := stackOf(1, 2, 3)
	ids := []string{s.Layers[0].ID, s.Layers[1].ID, s.Layers[2].ID}

	require.NoError(t, s.MoveUp(3))
	assert.Equal(t, []int{1, 2, 3}, indices(s))
	assert.Equal(t, ids[2], s.Layers[1].ID)

	require.NoError(t, s.MoveDown(1))
	assert.Equal(t, ids[0], s.Layers[1].ID)

	require.NoError(t, s.MoveUp(1), "moving the first ply up is a no-op")
	require.NoError(t, s.MoveDown(3), "moving the last ply down is a no-op")

	require.NoError(t, s.Insert(1, NewPly("AS/H3501", 0.5, 90)))
	assert.Equal(t, "AS/H3501", s.Layers[0].Material)
	assert.Equal(t, []int{1, 2, 3, 4}, indices(s))

	require.NoError(t, s.Insert(5, NewPly("B4/5505", 0.5, 0)))
	assert.Equal(t, "B4/5505", s.Layers[4].Material)

	require.NoError(t, s.Delete(2))
	assert.Equal(t, []int{1, 2, 3, 4}, indices(s))

	assert.Error(t, s.Delete(0))
	assert.Error(t, s.Delete(5))
	assert.Error(t, s.Insert(7, NewPly("B4/5505", 1, 0)))
	assert.Error(t, s.MoveUp(9))

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestMirror(t *testing.T) {
	s := stackOf(1, 2)
	s.Layers[1].Orientation = 45
	assert.False(t, s.IsSymmetric())

	original := s.Plies()
	s.Mirror()

	require.Equal(t, 4, s.Len())
	assert.True(t, s.IsSymmetric())
	assert.Equal(t, []int{1, 2, 3, 4}, indices(s))

	// the original plies are the second half, unchanged
	assert.Equal(t, original[0].ID, s.Layers[2].ID)
	assert.Equal(t, original[1].ID, s.Layers[3].ID)
	assert.NotEqual(t, s.Layers[0].ID, s.Layers[3].ID)
	assert.Equal(t, 45.0, s.Layers[0].Orientation)
}

func TestPlies_ReturnsCopy(t *testing.T) {
	s := stackOf(1, 1)
	p := s.Plies()
	p[0].Thickness = 99
	assert.Equal(t, 1.0, s.Layers[0].Thickness)

	snap := s.Snapshot()
	snap.Layers[1].Thickness = 99
	assert.Equal(t, 1.0, s.Layers[1].Thickness)
}

func TestValidate(t *testing.T) {
	s := stackOf(1)
	require.NoError(t, s.Validate())

	s.Layers[0].Thickness = 0
	var verr *ValidationError
	assert.ErrorAs(t, s.Validate(), &verr)

	s = stackOf(1)
	s.HasCore = true
	s.Core = -1
	assert.ErrorAs(t, s.Validate(), &verr)

	s = stackOf(1)
	s.Layers[0].Material = ""
	assert.ErrorAs(t, s.Validate(), &verr)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "layup.json")

	s := stackOf(0.125, 0.125)
	s.Name = "cross-ply"
	s.HasCore = true
	s.Core = 2
	require.NoError(t, s.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.Name, loaded.Name)
	assert.Equal(t, s.Layers, loaded.Layers)
	core, ok := loaded.CoreThickness()
	assert.True(t, ok)
	assert.Equal(t, 2.0, core)
}

func TestLoadFromFile_AssignsIDsAndIndices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layup.json")
	body := `{"plies": [
		{"ply": 7, "material": "T300/5208", "thickness": 0.125, "orientation": 0},
		{"material": "T300/5208", "thickness": 0.125, "orientation": 90}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, indices(s))
	assert.NotEmpty(t, s.Layers[0].ID)
	assert.NotEqual(t, s.Layers[0].ID, s.Layers[1].ID)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"plies": [{"material": "T300/5208", "thickness": -1}]}`), 0644))
	_, err = LoadFromFile(bad)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
