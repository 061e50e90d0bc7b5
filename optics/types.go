// Package optics core types, options, and sentinel errors.
package optics

import "errors"

// Sentinel errors for component construction and sequence operations.
var (
	// ErrBadParameter indicates an element parameter outside its physical
	// domain (zero focal length, zero surface curvature, negative
	// thickness, non-positive refractive index, non-finite input).
	ErrBadParameter = errors.New("optics: element parameter out of physical domain")

	// ErrLengthMismatch indicates parallel batch lists of incompatible
	// lengths (lists must share one length, or have length 1 to be
	// broadcast).
	ErrLengthMismatch = errors.New("optics: parallel batch lists must have equal length or length 1")

	// ErrEmptyLabel indicates a component with an empty label, which
	// cannot be addressed inside a sequence.
	ErrEmptyLabel = errors.New("optics: component label must be non-empty")

	// ErrDuplicateLabel indicates an Add with a label already present.
	ErrDuplicateLabel = errors.New("optics: component label already present in sequence")

	// ErrComponentNotFound indicates an operation addressing an absent label.
	ErrComponentNotFound = errors.New("optics: no component with the given label")

	// ErrSecondFlatMirror indicates an operation that would leave the
	// sequence with more than one flat mirror.
	ErrSecondFlatMirror = errors.New("optics: sequence already contains a flat mirror")
)

// Kind tags the physical element type a Component represents.
type Kind int

const (
	// KindOther marks a component built directly from a caller-supplied matrix.
	KindOther Kind = iota
	// KindLens is a thin lens.
	KindLens
	// KindCurvedMirror is a spherical mirror used in normal incidence.
	KindCurvedMirror
	// KindFlatMirror is a plane mirror (identity matrix, end-of-path marker).
	KindFlatMirror
	// KindDielectric is a thick slab with two refracting surfaces.
	KindDielectric
	// KindPropagator is a free-space gap.
	KindPropagator
	// KindComposite is the synthetic result of Combine.
	KindComposite
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLens:
		return "lens"
	case KindCurvedMirror:
		return "curved-mirror"
	case KindFlatMirror:
		return "flat-mirror"
	case KindDielectric:
		return "dielectric"
	case KindPropagator:
		return "propagator"
	case KindComposite:
		return "composite"
	default:
		return "other"
	}
}

// Parameter keys used in Component.Params by the factories.
const (
	// ParamFocalLength is the focal length of a lens, in meters.
	ParamFocalLength = "focal_length"
	// ParamRadius is the radius of curvature of a curved mirror.
	ParamRadius = "radius_of_curvature"
	// ParamEntryRadius is the entry surface radius of a dielectric.
	ParamEntryRadius = "entry_radius"
	// ParamExitRadius is the exit surface radius of a dielectric.
	ParamExitRadius = "exit_radius"
	// ParamThickness is the axial thickness of a dielectric.
	ParamThickness = "thickness"
	// ParamIndex is the refractive index of a dielectric.
	ParamIndex = "refractive_index"
	// ParamDistance is the length of a free-space propagator.
	ParamDistance = "distance"
)
