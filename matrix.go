package gclip

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Skew creates a skew matrix: x' = x + sx*y, y' = sy*x + y.
func Skew(sx, sy float64) Matrix {
	return Matrix{
		A: 1, B: sx, C: 0,
		D: sy, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// TransformRect returns the bounding box of the transformed rectangle.
// For axis-aligned matrices the result is exact. An infinite edge stays
// infinite on every axis it reaches and vanishes on an axis its
// coefficient zeroes out.
func (m Matrix) TransformRect(r Rect) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	ax0, ax1 := span(m.A, r.Left, r.Right)
	bx0, bx1 := span(m.B, r.Top, r.Bottom)
	dy0, dy1 := span(m.D, r.Left, r.Right)
	ey0, ey1 := span(m.E, r.Top, r.Bottom)
	return Rect{
		Left: ax0 + bx0 + m.C, Top: dy0 + ey0 + m.F,
		Right: ax1 + bx1 + m.C, Bottom: dy1 + ey1 + m.F,
	}
}

// span returns the range of k*v for v in [lo, hi], with 0*Inf taken as 0.
func span(k, lo, hi float64) (float64, float64) {
	switch {
	case k == 0:
		return 0, 0
	case k < 0:
		return k * hi, k * lo
	}
	return k * lo, k * hi
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	inv, ok := m.inverse()
	if !ok {
		return Identity()
	}
	return inv
}

// inverse returns the inverse matrix and whether m is invertible.
func (m Matrix) inverse() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Matrix{}, false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsAxisAligned returns true if the matrix maps axis-aligned rectangles to
// axis-aligned rectangles (scale, translation, quarter turns, flips).
func (m Matrix) IsAxisAligned() bool {
	return (m.B == 0 && m.D == 0) || (m.A == 0 && m.E == 0)
}

// preservesOrder reports whether x and y keep their orientation, so that
// half-open edges stay on the same side after transformation.
func (m Matrix) preservesOrder() bool {
	return m.B == 0 && m.D == 0 && m.A > 0 && m.E > 0
}
