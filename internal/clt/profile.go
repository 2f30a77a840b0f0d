package clt

import "github.com/alexiusacademia/goclt/internal/mat3"

// ProfilePoint is the laminate-axis strain at one face of a ply.
type ProfilePoint struct {
	Ply    int     // 1-based index
	Z      float64 // mm
	Strain mat3.Vec3
}

// StrainProfile samples the strain at the outer and inner face of every ply
// that has a through-thickness coordinate, ordered by z.
func StrainProfile(stack Layup, resp Response) []ProfilePoint {
	plies := stack.Plies()
	z := zCoordinates(stack, plies)
	half := len(z) / 2

	points := make([]ProfilePoint, 0, 2*len(z))
	for i := range z {
		t := plies[i].Thickness
		outer, inner := z[i], ZOfInterest(z[i], t, Inner)

		// negative half runs outer→inner with increasing z, positive half inner→outer
		first, second := outer, inner
		if i >= half {
			first, second = inner, outer
		}
		points = append(points,
			ProfilePoint{Ply: i + 1, Z: first, Strain: resp.StrainAt(first)},
			ProfilePoint{Ply: i + 1, Z: second, Strain: resp.StrainAt(second)},
		)
	}
	return points
}
