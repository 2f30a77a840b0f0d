package layup

// TotalThickness returns the sum of ply thicknesses (mm). The core is not included.
func (s *Stack) TotalThickness() float64 {
	var h float64
	for _, p := range s.Layers {
		h += p.Thickness
	}
	return h
}

// ZCoordinates returns, for each ply position, the signed z (mm) of the ply
// face farthest from the mid-plane.
//
// Only the first half of the stack is swept: coordinates are accumulated
// outward from the core on the negative side and the positive side is the
// mirror image of that half. The result therefore has 2·⌊N/2⌋ entries, so a
// stack with an odd ply count has no coordinate for its last ply.
func (s *Stack) ZCoordinates() []float64 {
	half := len(s.Layers) / 2
	z := make([]float64, 2*half)

	core, _ := s.CoreThickness()
	cumulative := -core
	for i := half - 1; i >= 0; i-- {
		cumulative -= s.Layers[i].Thickness
		z[i] = cumulative
	}
	for j := 0; j < half; j++ {
		z[half+j] = -z[half-1-j]
	}
	return z
}

// IsSymmetric reports whether ply i and ply N+1-i have the same material,
// thickness and orientation for every i.
func (s *Stack) IsSymmetric() bool {
	n := len(s.Layers)
	for i := 0; i < n/2; i++ {
		a, b := s.Layers[i], s.Layers[n-1-i]
		if a.Material != b.Material || a.Thickness != b.Thickness || a.Orientation != b.Orientation {
			return false
		}
	}
	return true
}
