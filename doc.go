// Package beamline models Gaussian laser beam propagation through trains
// of paraxial optical elements using the complex beam-parameter (ABCD)
// formalism, and scores how well a propagated beam matches a target mode.
//
// 🚀 What is beamline?
//
//	A small, deterministic library that brings together:
//		• Beam parameters: the complex q, with waist, width, divergence and
//		  curvature derived on demand
//		• Components: lenses, mirrors, dielectric slabs and free-space
//		  propagators as 2×2 ray-transfer matrices
//		• Sequences: label-keyed, position-ordered component trains with
//		  add / delete / move / replace and matrix composition
//		• Paths: seed → target propagation and mode-overlap evaluation
//		• Fitting: component-placement search that maximizes mode overlap
//
// ✨ Why choose beamline?
//
//   - Value semantics – beams and matrices are immutable; no stale derived state
//   - Strict sentinels – every failure is a named error, matched with errors.Is
//   - Deterministic – seeded search, no time-based randomness anywhere
//   - Layered – optimizers touch the engine only through Clone / Move / Overlap
//
// Everything is organized under five subpackages:
//
//	abcd/     — 2×2 ray-transfer (ABCD) matrices
//	beamq/    — complex beam parameter and derived beam properties
//	optics/   — components, factories, ordered sequences, composition
//	beampath/ — seed/target paths: propagate, overlap, width profiles
//	fit/      — placement optimization layered on top of beampath
//
// Quick ASCII example:
//
//	seed ──▶──[lens f=0.5 @1m]──▶── target @2m
//
//	a seed waist at z=0 focused by a thin lens toward a target mode.
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/beamline
package beamline
