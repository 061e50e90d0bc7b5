package optics

import (
	"fmt"

	"github.com/katalvlaran/beamline/abcd"
)

// Component is one optical element: a ray-transfer matrix plus the
// metadata needed to place and address it inside a sequence.
//
// Components are treated as values. Propagation only reads M and Z;
// position changes go through the owning Sequence (Move/MoveTo), and
// element substitution goes through Replace. Params is filled by the
// factory that built the component and must be treated as read-only
// afterwards; use Clone when an independently mutable copy is needed.
type Component struct {
	// M is the 2×2 ray-transfer matrix of the element.
	M abcd.Matrix
	// Z is the axial position of the element along the path, in meters.
	// Not meaningful on Composite components.
	Z float64
	// Kind tags the physical element type.
	Kind Kind
	// Label uniquely identifies the component within a sequence.
	Label string
	// Params holds the physical quantities the element was built from,
	// keyed by the Param* constants.
	Params map[string]float64
}

// Clone returns a deep copy of the component, including its parameter map.
func (c Component) Clone() Component {
	out := c
	if c.Params != nil {
		out.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			out.Params[k] = v
		}
	}
	return out
}

// String returns a short summary like "lens1[lens @ 1.5]".
func (c Component) String() string {
	return fmt.Sprintf("%s[%s @ %.4g]", c.Label, c.Kind, c.Z)
}
