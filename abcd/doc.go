// Package abcd provides 2×2 ray-transfer (ABCD) matrices for paraxial,
// axially symmetric optics.
//
// An ABCD matrix describes how an optical element acts on a paraxial ray
// (and, through the Möbius transform, on a complex Gaussian beam
// parameter):
//
//	| A  B |
//	| C  D |
//
// Matrices are small immutable values; every operation returns a new
// Matrix. Composition follows the optical convention: the element met
// later in the direction of propagation left-multiplies the product of
// the earlier ones, so a train e1 → e2 → e3 composes as M3·M2·M1.
//
// All element matrices produced by package optics have determinant 1,
// which guarantees that transformed beam parameters stay in the upper
// complex half-plane.
package abcd
