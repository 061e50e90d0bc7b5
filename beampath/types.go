// Package beampath sentinel errors.
package beampath

import "errors"

var (
	// ErrNoTarget indicates an overlap evaluation on a path constructed
	// without a target beam.
	ErrNoTarget = errors.New("beampath: path has no target beam")

	// ErrBadPosition indicates a non-finite axial position.
	ErrBadPosition = errors.New("beampath: axial position must be finite")

	// ErrBadProfile indicates a width profile request with fewer than
	// two sample points.
	ErrBadProfile = errors.New("beampath: width profile needs at least two points")
)
