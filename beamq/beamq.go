package beamq

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/beamline/abcd"
)

// BeamParameter is an immutable Gaussian beam description: the complex
// beam parameter q together with the wavelength. All physical beam
// properties are pure functions of these two fields and are recomputed
// on every access.
//
// Invariants (enforced by every constructor):
//   - imag(q) > 0 (the Rayleigh range is strictly positive)
//   - wavelength > 0
type BeamParameter struct {
	q          complex128
	wavelength float64
}

// New constructs a BeamParameter directly from a complex q value and a
// wavelength (both in meters).
//
// Errors: ErrInvalidQ if imag(q) ≤ 0 or q is not finite;
// ErrInvalidWavelength if wavelength ≤ 0 or not finite.
func New(q complex128, wavelength float64) (BeamParameter, error) {
	if math.IsNaN(wavelength) || math.IsInf(wavelength, 0) || wavelength <= 0 {
		return BeamParameter{}, ErrInvalidWavelength
	}
	if cmplx.IsNaN(q) || cmplx.IsInf(q) || imag(q) <= 0 {
		return BeamParameter{}, ErrInvalidQ
	}
	return BeamParameter{q: q, wavelength: wavelength}, nil
}

// FromWaistAndPosition constructs a beam with waist size w0 located at
// axial position z (the beam is described at z = 0, so real(q) = z is
// the offset from the waist):
//
//	zR = π·w0²/λ,  q = z + i·zR
//
// Errors: ErrInvalidGeometry if w0 ≤ 0; ErrInvalidWavelength if λ ≤ 0.
func FromWaistAndPosition(w0, z, wavelength float64) (BeamParameter, error) {
	if math.IsNaN(wavelength) || math.IsInf(wavelength, 0) || wavelength <= 0 {
		return BeamParameter{}, ErrInvalidWavelength
	}
	if math.IsNaN(w0) || math.IsInf(w0, 0) || w0 <= 0 {
		return BeamParameter{}, ErrInvalidGeometry
	}
	zR := math.Pi * w0 * w0 / wavelength
	return New(complex(z, zR), wavelength)
}

// FromWaistAndRadius constructs a beam with waist size w0 and radius of
// curvature R at the described location:
//
//	q = 1 / (1/R − i/zR),  zR = π·w0²/λ
//
// This pins 1/q = 1/R − i·λ/(π·w0²), so w0 reads back as BeamWidth at
// the described location (and R as the curvature there); the waist
// proper lies downstream and is smaller for finite R. R may be ±Inf for
// a collimated beam, in which case the location is the waist and the
// two coincide.
//
// Errors: ErrInvalidGeometry if w0 ≤ 0 or R == 0;
// ErrInvalidWavelength if λ ≤ 0.
func FromWaistAndRadius(w0, R, wavelength float64) (BeamParameter, error) {
	if math.IsNaN(wavelength) || math.IsInf(wavelength, 0) || wavelength <= 0 {
		return BeamParameter{}, ErrInvalidWavelength
	}
	if math.IsNaN(w0) || math.IsInf(w0, 0) || w0 <= 0 || math.IsNaN(R) || R == 0 {
		return BeamParameter{}, ErrInvalidGeometry
	}
	zR := math.Pi * w0 * w0 / wavelength

	// 1/R is exactly 0 for R=±Inf, collapsing to q = i·zR.
	invR := 0.0
	if !math.IsInf(R, 0) {
		invR = 1 / R
	}
	q := 1 / complex(invR, -1/zR)
	return New(q, wavelength)
}

// FromWidthAndRadius constructs a beam from its width w (1/e field
// radius) and radius of curvature R at the described location:
//
//	z  = R / (1 + (R·λ/(π·w²))²)
//	zR = sqrt(z·(R − z)),  q = z + i·zR
//
// R may be ±Inf for a collimated beam, in which case the location is the
// waist and w is the waist size.
//
// Errors: ErrInvalidGeometry if w ≤ 0, R == 0, or z·(R−z) ≤ 0;
// ErrInvalidWavelength if λ ≤ 0.
func FromWidthAndRadius(w, R, wavelength float64) (BeamParameter, error) {
	if math.IsNaN(wavelength) || math.IsInf(wavelength, 0) || wavelength <= 0 {
		return BeamParameter{}, ErrInvalidWavelength
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 || math.IsNaN(R) || R == 0 {
		return BeamParameter{}, ErrInvalidGeometry
	}
	if math.IsInf(R, 0) {
		// Phase front is flat: this location is the waist.
		return FromWaistAndPosition(w, 0, wavelength)
	}
	s := R * wavelength / (math.Pi * w * w)
	z := R / (1 + s*s)
	zRsq := z * (R - z)
	if zRsq <= 0 {
		return BeamParameter{}, ErrInvalidGeometry
	}
	return New(complex(z, math.Sqrt(zRsq)), wavelength)
}

// Q returns the complex beam parameter.
func (b BeamParameter) Q() complex128 { return b.q }

// Wavelength returns the wavelength in meters.
func (b BeamParameter) Wavelength() float64 { return b.wavelength }

// WaistOffset returns the axial distance from the beam waist to the
// described location; it equals real(q). Negative before the waist.
func (b BeamParameter) WaistOffset() float64 { return real(b.q) }

// RayleighRange returns the Rayleigh range zR = imag(q): the axial
// distance from the waist over which the width grows by √2.
func (b BeamParameter) RayleighRange() float64 { return imag(b.q) }

// WaistSize returns the beam width at the waist:
//
//	w0 = sqrt(zR·λ/π)
func (b BeamParameter) WaistSize() float64 {
	return math.Sqrt(imag(b.q) * b.wavelength / math.Pi)
}

// DivergenceAngle returns the far-field half-angle between the
// propagation axis and the diverging beam edge:
//
//	θ = λ/(π·w0) = sqrt(λ/(π·zR))
func (b BeamParameter) DivergenceAngle() float64 {
	return math.Sqrt(b.wavelength / (math.Pi * imag(b.q)))
}

// BeamWidth returns the 1/e field amplitude radius at the described
// location:
//
//	w = w0·sqrt(1 + (z/zR)²) = sqrt(λ·|q|²/(π·zR))
func (b BeamParameter) BeamWidth() float64 {
	re, im := real(b.q), imag(b.q)
	return math.Sqrt(b.wavelength * (re*re + im*im) / (math.Pi * im))
}

// RadiusOfCurvature returns the radius of curvature of the constant
// phase front:
//
//	R = |q|²/real(q)
//
// At the waist (real(q) == 0) the phase front is flat and R is +Inf.
// R is negative before the waist (converging beam).
func (b BeamParameter) RadiusOfCurvature() float64 {
	re, im := real(b.q), imag(b.q)
	if re == 0 {
		return math.Inf(1)
	}
	return (re*re + im*im) / re
}

// Transform applies the ray-transfer matrix m to the beam through the
// Möbius map
//
//	q' = (A·q + B)/(C·q + D)
//
// and returns a new beam with the same wavelength. Matrices with
// positive determinant (all matrices built by package optics have
// determinant 1) map physical beams to physical beams.
//
// Errors: ErrInvalidQ if C·q + D == 0 or the result leaves the upper
// half-plane (a degenerate caller-supplied matrix).
func (b BeamParameter) Transform(m abcd.Matrix) (BeamParameter, error) {
	den := complex(m.C, 0)*b.q + complex(m.D, 0)
	if den == 0 {
		return BeamParameter{}, ErrInvalidQ
	}
	qp := (complex(m.A, 0)*b.q + complex(m.B, 0)) / den
	return New(qp, b.wavelength)
}

// String returns a short human-readable summary of the beam.
func (b BeamParameter) String() string {
	return fmt.Sprintf("beamq(w0=%.4g m at z=%+.4g m, λ=%.4g m)",
		b.WaistSize(), b.WaistOffset(), b.wavelength)
}
