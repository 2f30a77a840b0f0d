package clt

import "github.com/alexiusacademia/goclt/internal/mat3"

// LoadState is the applied in-plane load N = (N₁, N₂, N₆) in N/m and moment
// M = (M₁, M₂, M₆) in N.
type LoadState struct {
	N mat3.Vec3
	M mat3.Vec3
}

// Response is the laminate deformation: mid-plane strain ε₀ (dimensionless)
// and curvature κ (1/m).
type Response struct {
	MidplaneStrain mat3.Vec3
	Curvature      mat3.Vec3
}

// MidplaneStrain returns ε₀ = a·N. a is in 1/(GPa·m), hence the 10⁻⁹.
func MidplaneStrain(a mat3.Mat3, n mat3.Vec3) mat3.Vec3 {
	return a.MulVec(n).Scale(1e-9)
}

// Curvature returns κ = d·M.
func Curvature(d mat3.Mat3, m mat3.Vec3) mat3.Vec3 {
	return d.MulVec(m)
}

// Solve computes the laminate response to a load state.
func Solve(ext Extensional, bend Bending, load LoadState) Response {
	return Response{
		MidplaneStrain: MidplaneStrain(ext.Compliance(), load.N),
		Curvature:      Curvature(bend.Compliance(), load.M),
	}
}

// StrainAt returns the laminate-axis strain at z mm from the mid-plane.
func (r Response) StrainAt(z float64) mat3.Vec3 {
	return r.MidplaneStrain.Add(r.Curvature.Scale(z / 1000))
}
