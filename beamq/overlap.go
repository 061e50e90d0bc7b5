package beamq

// Overlap returns the fractional power coupling between two Gaussian
// beams described at the same axial location:
//
//	η = | 2π/λ · w01·w02 / |q2* − q1| |²
//	  = 4·zR1·zR2 / ((z2−z1)² + (zR1+zR2)²)
//
// where w01, w02 are the waist sizes and q2* is the complex conjugate of
// the other beam's parameter. The two forms are identical because
// (2π/λ)²·w01²·w02² = 4·zR1·zR2; the second is used as it makes
// Overlap(b, b) == 1 exact. The result is always in [0, 1]: 1 for
// perfectly matched modes, approaching 0 for disjoint ones.
//
// The formula assumes axially symmetric beams in the fundamental
// transverse mode of equal wavelength.
//
// Errors: ErrWavelengthMismatch if the wavelengths differ.
//
// Complexity: O(1).
func (b BeamParameter) Overlap(other BeamParameter) (float64, error) {
	if b.wavelength != other.wavelength {
		return 0, ErrWavelengthMismatch
	}
	dz := real(other.q) - real(b.q)
	sumZR := imag(other.q) + imag(b.q)

	// |conj(q2) − q1|² with q = z + i·zR.
	den := dz*dz + sumZR*sumZR
	return 4 * imag(b.q) * imag(other.q) / den, nil
}
