// Package optics models individual paraxial optical elements and ordered
// trains of them.
//
// An element is a Component: a 2×2 ray-transfer matrix plus metadata (an
// axial position z, a unique label, a kind tag and the physical
// parameters it was built from). Factories derive the matrix from the
// standard closed forms:
//
//	Lens(f)          | 1      0 |      CurvedMirror(R) | 1      0 |
//	                 | -1/f   1 |                      | -2/R   1 |
//
//	Propagator(dz)   | 1     dz |      FlatMirror      | 1      0 |
//	                 | 0      1 |                      | 0      1 |
//
//	Dielectric(R1,R2,t,n) = exit(R2,n) · gap(t) · entry(R1,n)
//
// Batch factories build several components from parallel parameter /
// position / label lists; a length-1 list is broadcast across the batch.
//
// A Sequence is a mutable collection of components keyed by unique
// label. Its ordered view is always freshly sorted by ascending z —
// array indices are never stable identifiers, labels are. Two
// components at the same z keep their insertion order (a documented
// policy, not an accident of the sort). A sequence holds at most one
// flat mirror, the end-of-path marker of the physical model.
//
// Combine folds an ordered train into a single composite component by
// left-multiplying matrices in traversal order: the element met later
// in the direction of propagation is the left factor.
//
// Mutators validate before touching any state and report failures via
// the package sentinel errors; there are no partial mutations.
package optics
