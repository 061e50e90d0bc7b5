package abcd

import "math"

// Matrix is a 2×2 ray-transfer matrix
//
//	| A  B |
//	| C  D |
//
// acting on paraxial rays and, via the Möbius transform
// q' = (A·q + B)/(C·q + D), on complex beam parameters.
// The zero value is the zero matrix; use Identity for the unit element.
type Matrix struct {
	A, B float64
	C, D float64
}

// Identity returns the 2×2 unit matrix, the neutral element of Mul and
// the transfer matrix of a zero-length gap (or a flat mirror).
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1}
}

// Mul returns the matrix product m·n (m applied after n).
// In a propagation train, the later element is the left factor.
//
// Complexity: O(1).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Det returns the determinant A·D − B·C.
// Element matrices of lossless paraxial optics have Det == 1; a positive
// determinant is what keeps transformed beam parameters physical.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Inv returns the matrix inverse. For the unimodular matrices of
// lossless elements (Det == 1) this is [[D, −B], [−C, A]]. The
// determinant must be nonzero; a singular matrix yields non-finite
// entries, which downstream beam transforms reject.
//
// Complexity: O(1).
func (m Matrix) Inv() Matrix {
	d := m.Det()
	return Matrix{A: m.D / d, B: -m.B / d, C: -m.C / d, D: m.A / d}
}

// IsIdentity reports whether m equals the unit matrix within tol on
// every entry. A negative tol is treated as zero (exact comparison).
func (m Matrix) IsIdentity(tol float64) bool {
	if tol < 0 {
		tol = 0
	}
	return math.Abs(m.A-1) <= tol &&
		math.Abs(m.B) <= tol &&
		math.Abs(m.C) <= tol &&
		math.Abs(m.D-1) <= tol
}
