// Package mat3 provides fixed-size 3×3 matrix and 3-vector value types for
// the lamination calculations. Values are plain arrays, so they are copied on
// assignment and never allocate.
package mat3

import (
	"errors"
	"math"
)

// SingularTol is the reciprocal of the largest accepted condition number.
// A matrix is singular when |det| ≤ SingularTol·‖m‖∞·‖adj(m)‖∞, which is
// κ∞(m) ≥ 1/SingularTol. The bound is independent of scale and of how
// unevenly the entries are sized, so strongly anisotropic stiffness stays
// invertible as long as it is well conditioned.
const SingularTol = 1e-12

// ErrSingular is returned when a matrix has no usable inverse.
var ErrSingular = errors.New("mat3: matrix is singular")

// Mat3 is a row-major 3×3 matrix.
type Mat3 [3][3]float64

// Vec3 is a 3-component vector, ordered (1, 2, 6) in contracted notation.
type Vec3 [3]float64

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Symmetric builds a symmetric matrix from its six independent entries.
func Symmetric(m11, m22, m66, m12, m16, m26 float64) Mat3 {
	return Mat3{
		{m11, m12, m16},
		{m12, m22, m26},
		{m16, m26, m66},
	}
}

// Det returns the determinant.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// MaxAbs returns the largest absolute entry.
func (m Mat3) MaxAbs() float64 {
	var mx float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			mx = math.Max(mx, math.Abs(m[i][j]))
		}
	}
	return mx
}

// NormInf returns the maximum absolute row sum.
func (m Mat3) NormInf() float64 {
	var n float64
	for i := 0; i < 3; i++ {
		n = math.Max(n, math.Abs(m[i][0])+math.Abs(m[i][1])+math.Abs(m[i][2]))
	}
	return n
}

// Adjugate returns the transposed cofactor matrix, so m·adj(m) = det(m)·I.
func (m Mat3) Adjugate() Mat3 {
	return Mat3{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
}

// IsSingular reports whether the condition number of m exceeds
// 1/SingularTol. A zero matrix, or one containing NaN or Inf, is singular.
func (m Mat3) IsSingular() bool {
	scale := m.MaxAbs()
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return true
	}
	det := m.Det()
	if math.IsNaN(det) {
		return true
	}
	return math.Abs(det) <= SingularTol*m.NormInf()*m.Adjugate().NormInf()
}

// Inverse returns adj(m)/det(m), or ErrSingular.
func (m Mat3) Inverse() (Mat3, error) {
	if m.IsSingular() {
		return Mat3{}, ErrSingular
	}
	return m.Adjugate().Scale(1 / m.Det()), nil
}

// Mul returns the product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var p Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				p[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return p
}

// MulVec returns the product m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	var r Vec3
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return r
}

// Scale multiplies every entry by s.
func (m Mat3) Scale(s float64) Mat3 {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] *= s
		}
	}
	return m
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// IsSymmetric reports whether m equals its transpose within tol, relative to
// the largest entry.
func (m Mat3) IsSymmetric(tol float64) bool {
	return m.ApproxEqual(m.Transpose(), tol)
}

// ApproxEqual compares entries within tol, relative to the larger of the two
// matrices' largest entries (absolute when both are below 1).
func (m Mat3) ApproxEqual(n Mat3, tol float64) bool {
	scale := math.Max(1, math.Max(m.MaxAbs(), n.MaxAbs()))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-n[i][j]) > tol*scale {
				return false
			}
		}
	}
	return true
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
