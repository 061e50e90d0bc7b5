// Package beampath ties beams and components together into a beam path:
// a seed beam at a known position, an optional target beam to match
// into, and an ordered train of optical components.
//
// 🚀 What is a beam path?
//
//	seed @ seedZ ──[c1]──[c2]── … ──[cn]── target @ targetZ
//
//	Propagate(z) walks the seed beam to any axial position z by
//	interleaving free-space gaps with the component matrices between
//	seedZ and z, folding them into one composite transfer matrix, and
//	applying it to the seed beam. OverlapWithTarget propagates to the
//	target position and scores the mode match.
//
// ✨ Key behaviors:
//   - Propagate(seedZ) returns the seed beam unchanged, whatever the
//     component train holds (the empty composite is the identity).
//   - Propagation works backward too: for z < seedZ the inverse of the
//     forward composite from z up to the seed is applied, so walking
//     forward and then back recovers the original beam.
//   - A component sitting exactly at seedZ is behind the seed and is
//     not applied; the far endpoint is inclusive.
//   - Clone gives a fully independent deep copy; Branch re-bases a
//     clone's seed at a propagated beam without touching the original.
//     Parallel placement searches evaluate each candidate on its own
//     clone — no shared mutable state.
//
// Component mutators (AddComponent, DeleteComponent, MoveComponent,
// MoveComponentTo, ReplaceComponent) delegate to the owned sequence and
// never touch the seed or target beams. They are the only state
// transitions; everything else is a pure function of current state.
// No internal locking is provided.
package beampath
