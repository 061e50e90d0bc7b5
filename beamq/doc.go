// Package beamq represents Gaussian laser beams by their complex beam
// parameter q and derives all physical beam properties from it.
//
// The beam parameter encodes a beam completely at one axial location:
//
//	q = z + i·zR
//
// where the real part is the axial offset from the beam waist and the
// imaginary part is the Rayleigh range zR = π·w0²/λ. A physical beam
// always has imag(q) > 0 and wavelength λ > 0; constructors enforce both.
//
// ✨ Key features:
//   - immutable value type: every operation returns a new BeamParameter
//   - named constructors from physical specs (waist+position, waist+radius,
//     width+radius), the closed forms of standard Gaussian optics
//   - derived properties (waist size, width, divergence, curvature,
//     Rayleigh range) recomputed on access — never cached, never stale
//   - Transform applies a 2×2 ray-transfer matrix through the Möbius map
//     q' = (A·q + B)/(C·q + D)
//   - Overlap computes the fractional power coupling between two beams
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/beamline/beamq"
//
//	seed, err := beamq.FromWaistAndPosition(1e-3, 0, 1064e-9)
//	if err != nil { ... }
//	out, err := seed.Transform(m)   // m from package abcd/optics
//	frac, err := out.Overlap(target)
//
// The overlap metric assumes axially symmetric beams in the fundamental
// transverse mode; astigmatic or multi-mode beams are not supported.
package beamq
