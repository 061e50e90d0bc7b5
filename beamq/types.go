// Package beamq sentinel errors.
package beamq

import "errors"

var (
	// ErrInvalidQ indicates a beam parameter whose imaginary part is not
	// strictly positive, or a transform that would produce one.
	ErrInvalidQ = errors.New("beamq: imaginary part of q must be positive")

	// ErrInvalidWavelength indicates a wavelength ≤ 0.
	ErrInvalidWavelength = errors.New("beamq: wavelength must be positive")

	// ErrInvalidGeometry indicates physical spec inputs (waist, width,
	// radius of curvature) that do not describe any Gaussian beam.
	ErrInvalidGeometry = errors.New("beamq: geometry does not describe a physical beam")

	// ErrWavelengthMismatch indicates an overlap between beams of
	// different wavelengths, which is physically meaningless.
	ErrWavelengthMismatch = errors.New("beamq: overlap requires equal wavelengths")
)
