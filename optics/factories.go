package optics

import (
	"math"

	"github.com/katalvlaran/beamline/abcd"
)

// finite reports whether every argument is a usable real number.
func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Lens returns a thin lens with focal length f at position z:
//
//	| 1     0 |
//	| -1/f  1 |
//
// Errors: ErrBadParameter if f == 0 or any input is not finite.
func Lens(f, z float64, label string) (Component, error) {
	if !finite(f, z) || f == 0 {
		return Component{}, ErrBadParameter
	}
	return Component{
		M:      abcd.Matrix{A: 1, B: 0, C: -1 / f, D: 1},
		Z:      z,
		Kind:   KindLens,
		Label:  label,
		Params: map[string]float64{ParamFocalLength: f},
	}, nil
}

// CurvedMirror returns a spherical mirror with radius of curvature R at
// position z (normal incidence):
//
//	| 1     0 |
//	| -2/R  1 |
//
// Errors: ErrBadParameter if R == 0 or any input is not finite.
func CurvedMirror(R, z float64, label string) (Component, error) {
	if !finite(R, z) || R == 0 {
		return Component{}, ErrBadParameter
	}
	return Component{
		M:      abcd.Matrix{A: 1, B: 0, C: -2 / R, D: 1},
		Z:      z,
		Kind:   KindCurvedMirror,
		Label:  label,
		Params: map[string]float64{ParamRadius: R},
	}, nil
}

// FlatMirror returns a plane mirror at position z. Its matrix is the
// identity; in the physical model it marks the end of a path, and a
// sequence accepts at most one.
//
// Errors: ErrBadParameter if z is not finite.
func FlatMirror(z float64, label string) (Component, error) {
	if !finite(z) {
		return Component{}, ErrBadParameter
	}
	return Component{
		M:     abcd.Identity(),
		Z:     z,
		Kind:  KindFlatMirror,
		Label: label,
	}, nil
}

// Dielectric returns a thick dielectric slab of thickness t and
// refractive index n with entry surface radius R1 and exit surface
// radius R2, at position z. The matrix composes refraction at the exit
// surface, the internal gap, and refraction at the entry surface:
//
//	M = | 1          0 | · | 1  t | · | 1             0 |
//	    | (n-1)/R2   n |   | 0  1 |   | (1-n)/(n·R1) 1/n |
//
// Flat surfaces are expressed with R = ±Inf, which zeroes the curvature
// terms. In the thin limit (t → 0) the matrix reduces to a lens obeying
// the lensmaker equation 1/f = (n−1)·(1/R1 − 1/R2).
//
// Errors: ErrBadParameter if R1 == 0, R2 == 0, t < 0, n ≤ 0, or t, n, z
// are not finite.
func Dielectric(R1, R2, t, n, z float64, label string) (Component, error) {
	if !finite(t, n, z) || math.IsNaN(R1) || math.IsNaN(R2) ||
		R1 == 0 || R2 == 0 || t < 0 || n <= 0 {
		return Component{}, ErrBadParameter
	}

	invR1, invR2 := 0.0, 0.0
	if !math.IsInf(R1, 0) {
		invR1 = 1 / R1
	}
	if !math.IsInf(R2, 0) {
		invR2 = 1 / R2
	}

	entry := abcd.Matrix{A: 1, B: 0, C: (1 - n) * invR1 / n, D: 1 / n}
	gap := abcd.Matrix{A: 1, B: t, C: 0, D: 1}
	exit := abcd.Matrix{A: 1, B: 0, C: (n - 1) * invR2, D: n}

	return Component{
		M:     exit.Mul(gap).Mul(entry),
		Z:     z,
		Kind:  KindDielectric,
		Label: label,
		Params: map[string]float64{
			ParamEntryRadius: R1,
			ParamExitRadius:  R2,
			ParamThickness:   t,
			ParamIndex:       n,
		},
	}, nil
}

// Propagator returns a free-space gap of length dz at position z:
//
//	| 1  dz |
//	| 0   1 |
//
// dz may be negative (backward traversal).
//
// Errors: ErrBadParameter if any input is not finite.
func Propagator(dz, z float64, label string) (Component, error) {
	if !finite(dz, z) {
		return Component{}, ErrBadParameter
	}
	return Component{
		M:      abcd.Matrix{A: 1, B: dz, C: 0, D: 1},
		Z:      z,
		Kind:   KindPropagator,
		Label:  label,
		Params: map[string]float64{ParamDistance: dz},
	}, nil
}
