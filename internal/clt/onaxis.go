package clt

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goclt/internal/mat3"
	"github.com/alexiusacademia/goclt/internal/material"
)

// poissonTol is the smallest 1-ν·ν_y accepted before Q is considered undefined.
const poissonTol = 1e-12

// Stiffness is the on-axis reduced stiffness Q (GPa) and compliance S (1/GPa).
type Stiffness struct {
	Q mat3.Mat3
	S mat3.Mat3
}

// reducedStiffness builds Q from the engineering constants without checks.
func reducedStiffness(e material.Elastic) mat3.Mat3 {
	nuY := (e.Ey / e.Ex) * e.Nu
	m := 1 / (1 - e.Nu*nuY)

	return mat3.Mat3{
		{m * e.Ex, m * nuY * e.Ex, 0},
		{m * nuY * e.Ex, m * e.Ey, 0},
		{0, 0, e.Es},
	}
}

// OnAxis computes Q and S for a material along its own fiber axes.
func OnAxis(e material.Elastic) (Stiffness, error) {
	if e.Ex <= 0 || e.Ey <= 0 || e.Es <= 0 {
		return Stiffness{}, fmt.Errorf("%w: moduli must be positive (Ex=%g, Ey=%g, Es=%g)",
			ErrDegenerateMaterial, e.Ex, e.Ey, e.Es)
	}

	nuY := (e.Ey / e.Ex) * e.Nu
	if math.Abs(1-e.Nu*nuY) < poissonTol {
		return Stiffness{}, fmt.Errorf("%w: 1-ν·ν_y is zero (ν=%g)", ErrDegenerateMaterial, e.Nu)
	}

	q := reducedStiffness(e)
	s, err := q.Inverse()
	if err != nil {
		return Stiffness{}, fmt.Errorf("%w: %v", ErrDegenerateMaterial, err)
	}

	return Stiffness{Q: q, S: s}, nil
}
