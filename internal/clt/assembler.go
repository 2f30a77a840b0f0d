package clt

import (
	"fmt"

	"github.com/alexiusacademia/goclt/internal/layup"
	"github.com/alexiusacademia/goclt/internal/mat3"
	"github.com/alexiusacademia/goclt/internal/material"
)

// Layup is the read-only view of a ply stack the engine consumes.
type Layup interface {
	Plies() []layup.Ply
	CoreThickness() (float64, bool)
}

// Catalog resolves material names.
type Catalog interface {
	Lookup(name string) (material.Material, error)
}

// Symmetry records how the bending calculation treated the stack.
type Symmetry int

const (
	// StackAssumedSymmetric: the stack does not mirror about its centre, or
	// has an odd ply count so that the middle ply is counted on both sides,
	// but D was still built from the outer half only.
	StackAssumedSymmetric Symmetry = iota + 1

	// StackVerifiedSymmetric: N is even and ply i and ply N+1-i match for
	// every i.
	StackVerifiedSymmetric
)

func (s Symmetry) String() string {
	switch s {
	case StackAssumedSymmetric:
		return "StackAssumedSymmetric"
	case StackVerifiedSymmetric:
		return "StackVerifiedSymmetric"
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}

// Extensional holds the in-plane stiffness A (GPa·m) and its inverse a.
type Extensional struct {
	A mat3.Mat3
	a mat3.Mat3

	// Thickness is the total ply height H (mm).
	Thickness float64

	// Representative is the single material whose Q was used for every ply.
	Representative string
}

// Compliance returns a = A⁻¹.
func (e Extensional) Compliance() mat3.Mat3 { return e.a }

// Bending holds the flexural stiffness D (N·m) and its inverse d.
type Bending struct {
	D mat3.Mat3
	d mat3.Mat3

	// Height is the full laminate height 2·H_half (mm), core included.
	Height float64

	// CoreFraction is 2·core/Height.
	CoreFraction float64

	Representative string
	Symmetry       Symmetry
}

// Compliance returns d = D⁻¹.
func (b Bending) Compliance() mat3.Mat3 { return b.d }

// representative resolves the material of the last ply and returns its
// invariants. Every ply in the laminate is assembled with this one material;
// plies of other materials only contribute their orientation and thickness.
func representative(plies []layup.Ply, cat Catalog) (string, Invariants, error) {
	name := plies[len(plies)-1].Material
	m, err := cat.Lookup(name)
	if err != nil {
		return "", Invariants{}, err
	}
	st, err := OnAxis(m.Elastic)
	if err != nil {
		return "", Invariants{}, fmt.Errorf("%s: %w", name, err)
	}
	return name, NewInvariants(st.Q), nil
}

// AssembleExtensional builds A and a for the whole stack. Q comes from the
// material of the last ply in stack order, not from each ply's own material.
func AssembleExtensional(stack Layup, cat Catalog) (Extensional, error) {
	plies := stack.Plies()
	if len(plies) == 0 {
		return Extensional{}, ErrEmptyLayup
	}

	name, u, err := representative(plies, cat)
	if err != nil {
		return Extensional{}, err
	}

	var v trigWeights
	var height float64
	for _, p := range plies {
		height += p.Thickness
		v = v.add(angleWeights(p.Orientation), p.Thickness)
	}
	if height <= 0 {
		return Extensional{}, fmt.Errorf("%w: total thickness is %g", ErrSingularLaminate, height)
	}

	// mm → m with Q in GPa
	a := u.combine(1, v.scale(1/height)).Scale(height * 1e-3)
	inv, err := a.Inverse()
	if err != nil {
		return Extensional{}, fmt.Errorf("%w: A is not invertible", ErrSingularLaminate)
	}

	return Extensional{
		A:              a,
		a:              inv,
		Thickness:      height,
		Representative: name,
	}, nil
}

// AssembleBending builds D and d from the outer half of the stack (positions
// N/2 to N-1) and doubles it, so the stack must be symmetric about its
// mid-plane. This is not enforced; Bending.Symmetry records whether it holds.
func AssembleBending(stack Layup, cat Catalog) (Bending, error) {
	plies := stack.Plies()
	if len(plies) == 0 {
		return Bending{}, ErrEmptyLayup
	}
	if len(plies) < 2 {
		return Bending{}, fmt.Errorf("%w: bending needs at least 2 plies, have %d", ErrInsufficientLayers, len(plies))
	}

	name, u, err := representative(plies, cat)
	if err != nil {
		return Bending{}, err
	}

	core, _ := stack.CoreThickness()

	var v trigWeights
	halfHeight := core
	zPrev, zCur := core, core
	for _, p := range plies[len(plies)/2:] {
		halfHeight += p.Thickness
		zPrev = zCur
		zCur += p.Thickness
		cubes := zCur*zCur*zCur - zPrev*zPrev*zPrev
		v = v.add(angleWeights(p.Orientation), 2*cubes/3)
	}

	height := 2 * halfHeight
	if height <= 0 {
		return Bending{}, fmt.Errorf("%w: laminate height is %g", ErrSingularLaminate, height)
	}
	coreFraction := 2 * core / height
	hStar := height * height * height / 12 * (1 - coreFraction*coreFraction*coreFraction)

	d := u.combine(hStar, v)
	inv, err := d.Inverse()
	if err != nil {
		return Bending{}, fmt.Errorf("%w: D is not invertible", ErrSingularLaminate)
	}

	sym := StackAssumedSymmetric
	if len(plies)%2 == 0 && isSymmetric(plies) {
		sym = StackVerifiedSymmetric
	}

	return Bending{
		D:              d,
		d:              inv,
		Height:         height,
		CoreFraction:   coreFraction,
		Representative: name,
		Symmetry:       sym,
	}, nil
}

func isSymmetric(plies []layup.Ply) bool {
	s := layup.Stack{Layers: plies}
	return s.IsSymmetric()
}
