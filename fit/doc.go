// Package fit searches for component placements that maximize the
// mode-overlap of a beam path against its target beam.
//
// 🚀 What does it solve?
//
//	Given a path with a target beam and a set of movable components
//	(named by label), Placement looks for the axial positions that
//	couple the propagated seed into the target as well as possible:
//
//	    maximize  overlap(Propagate(targetZ), target)
//	    over      z positions of the chosen components
//
// ✨ How it searches:
//   - NelderMead (default) — derivative-free simplex descent via
//     gonum/optimize, multi-started from the current placement plus
//     randomized restarts inside the bounds.
//   - RandomSearch — uniform sampling inside the bounds; a cheap,
//     robust baseline and a sanity check for the simplex result.
//
// Determinism: the same Options.Seed always produces the same restart
// points and samples; there are no time-based random sources. Every
// candidate is evaluated on its own clone of the path, so the input
// path is never mutated and evaluations are safe to parallelize by the
// caller.
package fit
