package clt

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goclt/internal/mat3"
)

// Invariants are the rotation-independent combinations U₁..U₅ of Q.
type Invariants struct {
	U1, U2, U3, U4, U5 float64
}

// NewInvariants computes U₁..U₅ from an on-axis Q.
func NewInvariants(q mat3.Mat3) Invariants {
	qxx, qyy, qxy, qss := q[0][0], q[1][1], q[0][1], q[2][2]

	return Invariants{
		U1: (3*qxx + 3*qyy + 2*qxy + 4*qss) / 8,
		U2: (qxx - qyy) / 2,
		U3: (qxx + qyy - 2*qxy - 4*qss) / 8,
		U4: (qxx + qyy + 6*qxy - 4*qss) / 8,
		U5: (qxx + qyy - 2*qxy + 4*qss) / 8,
	}
}

// trigWeights stand in for (cos2θ, cos4θ, sin2θ, sin4θ). For a laminate they
// are thickness- or z³-weighted sums of those terms over the plies.
type trigWeights struct {
	C2, C4, S2, S4 float64
}

func angleWeights(thetaDeg float64) trigWeights {
	theta := thetaDeg * math.Pi / 180
	return trigWeights{
		C2: math.Cos(2 * theta),
		C4: math.Cos(4 * theta),
		S2: math.Sin(2 * theta),
		S4: math.Sin(4 * theta),
	}
}

func (w trigWeights) add(o trigWeights, scale float64) trigWeights {
	return trigWeights{
		C2: w.C2 + o.C2*scale,
		C4: w.C4 + o.C4*scale,
		S2: w.S2 + o.S2*scale,
		S4: w.S4 + o.S4*scale,
	}
}

func (w trigWeights) scale(s float64) trigWeights {
	return trigWeights{C2: w.C2 * s, C4: w.C4 * s, S2: w.S2 * s, S4: w.S4 * s}
}

// combine evaluates the invariant form of the rotated stiffness. h weights
// the isotropic terms U₁, U₄ and U₅.
func (u Invariants) combine(h float64, w trigWeights) mat3.Mat3 {
	return mat3.Symmetric(
		u.U1*h+u.U2*w.C2+u.U3*w.C4, // 11
		u.U1*h-u.U2*w.C2+u.U3*w.C4, // 22
		u.U5*h-u.U3*w.C4,           // 66
		u.U4*h-u.U3*w.C4,           // 12
		u.U2*w.S2/2+u.U3*w.S4,      // 16
		u.U2*w.S2/2-u.U3*w.S4,      // 26
	)
}

// OffAxis returns Qbar for a ply at thetaDeg degrees from the laminate x-axis.
func (u Invariants) OffAxis(thetaDeg float64) mat3.Mat3 {
	return u.combine(1, angleWeights(thetaDeg))
}

// OffAxisStiffness is a ply's stiffness and compliance in laminate axes.
type OffAxisStiffness struct {
	Theta float64 // degrees
	Qbar  mat3.Mat3
	Sbar  mat3.Mat3
}

// Rotate transforms on-axis stiffness to laminate axes at thetaDeg degrees.
func Rotate(st Stiffness, thetaDeg float64) (OffAxisStiffness, error) {
	qbar := NewInvariants(st.Q).OffAxis(thetaDeg)
	sbar, err := qbar.Inverse()
	if err != nil {
		return OffAxisStiffness{}, fmt.Errorf("%w: Qbar at %g° is singular", ErrDegenerateMaterial, thetaDeg)
	}
	return OffAxisStiffness{Theta: thetaDeg, Qbar: qbar, Sbar: sbar}, nil
}
