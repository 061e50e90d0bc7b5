package optics

import "github.com/katalvlaran/beamline/abcd"

// Combine folds an ordered component train into a single synthetic
// component whose matrix is the product of the members' matrices in
// traversal order: the component encountered later left-multiplies the
// accumulated product of the earlier ones,
//
//	M = M(n)·…·M(2)·M(1)
//
// An empty train combines to the identity. The result has kind
// KindComposite, an empty label, and Z = 0 — position is not meaningful
// on a composite and must not be used to insert it by position.
//
// Complexity: O(n).
func Combine(components []Component) Component {
	m := abcd.Identity()
	for _, c := range components {
		m = c.M.Mul(m)
	}
	return Component{M: m, Kind: KindComposite}
}
