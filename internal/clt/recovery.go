package clt

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/goclt/internal/layup"
	"github.com/alexiusacademia/goclt/internal/mat3"
	"github.com/alexiusacademia/goclt/internal/material"
)

// Position selects the through-thickness point of a ply.
type Position int

const (
	Outer  Position = iota // face farthest from the mid-plane
	Middle                 // ply mid-plane
	Inner                  // face nearest the mid-plane
)

func (p Position) String() string {
	switch p {
	case Outer:
		return "Outer"
	case Middle:
		return "Middle"
	case Inner:
		return "Inner"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// ParsePosition accepts outer, middle or inner in any case.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outer":
		return Outer, nil
	case "middle":
		return Middle, nil
	case "inner":
		return Inner, nil
	}
	return 0, fmt.Errorf("unknown position %q (want outer, middle or inner)", s)
}

// Offset returns the distance from the outer face for a ply of thickness t.
func (p Position) Offset(t float64) float64 {
	switch p {
	case Middle:
		return t / 2
	case Inner:
		return t
	}
	return 0
}

// ZOfInterest moves the outer-face coordinate z toward the mid-plane by the
// position's offset.
func ZOfInterest(z, thickness float64, pos Position) float64 {
	offset := pos.Offset(thickness)
	if z <= 0 {
		return z + offset
	}
	return z - offset
}

// ToOnAxisStrain rotates a laminate-axis strain into the fiber axes of a ply
// at thetaDeg degrees. Shear is engineering shear strain.
func ToOnAxisStrain(e mat3.Vec3, thetaDeg float64) mat3.Vec3 {
	p := (e[0] + e[1]) / 2
	q := (e[0] - e[1]) / 2
	r := e[2] / 2

	theta := thetaDeg * math.Pi / 180
	c2, s2 := math.Cos(2*theta), math.Sin(2*theta)

	return mat3.Vec3{
		p + q*c2 + r*s2,
		p - q*c2 - r*s2,
		-2*q*s2 + 2*r*c2,
	}
}

// OnAxisStress returns σ (MPa) for on-axis strain with Q in GPa.
func OnAxisStress(q mat3.Mat3, strain mat3.Vec3) mat3.Vec3 {
	return q.Scale(1e9).MulVec(strain).Scale(1e-6)
}

// PlyResult is the recovered state of one ply.
type PlyResult struct {
	Ply      layup.Ply
	Material material.Material
	Position Position

	// Z is the ply's outer-face coordinate, ZOfInterest the evaluated point (mm).
	Z           float64
	ZOfInterest float64

	OnAxis  Stiffness
	OffAxis OffAxisStiffness

	OffAxisStrain mat3.Vec3
	OnAxisStrain  mat3.Vec3
	OnAxisStress  mat3.Vec3 // MPa
}

// RecoverPly computes strain and stress at a position in the ply with the
// given 1-based index. The stress uses the ply's own material.
func RecoverPly(stack Layup, cat Catalog, index int, pos Position, resp Response) (PlyResult, error) {
	if index == 0 {
		return PlyResult{}, ErrNoLayersSelected
	}

	plies := stack.Plies()
	if index < 0 || index > len(plies) {
		return PlyResult{}, fmt.Errorf("%w: ply %d (stack has %d)", ErrPlyOutOfRange, index, len(plies))
	}
	ply := plies[index-1]

	z := zCoordinates(stack, plies)
	if len(z) == 0 {
		return PlyResult{}, fmt.Errorf("%w: strain recovery needs at least 2 plies", ErrInsufficientLayers)
	}
	if index > len(z) {
		return PlyResult{}, fmt.Errorf("%w: ply %d is the unpaired middle ply of an odd stack", ErrInsufficientLayers, index)
	}

	m, err := cat.Lookup(ply.Material)
	if err != nil {
		return PlyResult{}, err
	}
	onAxis, err := OnAxis(m.Elastic)
	if err != nil {
		return PlyResult{}, fmt.Errorf("%s: %w", ply.Material, err)
	}
	offAxis, err := Rotate(onAxis, ply.Orientation)
	if err != nil {
		return PlyResult{}, fmt.Errorf("%s: %w", ply.Material, err)
	}

	zi := ZOfInterest(z[index-1], ply.Thickness, pos)
	offStrain := resp.StrainAt(zi)
	onStrain := ToOnAxisStrain(offStrain, ply.Orientation)

	return PlyResult{
		Ply:           ply,
		Material:      m,
		Position:      pos,
		Z:             z[index-1],
		ZOfInterest:   zi,
		OnAxis:        onAxis,
		OffAxis:       offAxis,
		OffAxisStrain: offStrain,
		OnAxisStrain:  onStrain,
		OnAxisStress:  OnAxisStress(onAxis.Q, onStrain),
	}, nil
}

func zCoordinates(stack Layup, plies []layup.Ply) []float64 {
	core, hasCore := stack.CoreThickness()
	s := layup.Stack{Layers: plies, HasCore: hasCore, Core: core}
	return s.ZCoordinates()
}
