package beampath

import (
	"math"

	"github.com/katalvlaran/beamline/abcd"
	"github.com/katalvlaran/beamline/beamq"
	"github.com/katalvlaran/beamline/optics"
)

// Path owns a seed beam, an optional target beam, and the component
// train between them. All read operations are pure functions of the
// current state; the component mutators are the only state transitions.
type Path struct {
	seed  beamq.BeamParameter
	seedZ float64

	target    beamq.BeamParameter
	targetZ   float64
	hasTarget bool

	components *optics.Sequence
}

// New constructs a path with a seed beam at seedZ, a target beam at
// targetZ, and a component sequence. A nil sequence starts the path
// empty. The sequence is owned by the path afterwards.
//
// Errors: beamq.ErrWavelengthMismatch if seed and target wavelengths
// differ; ErrBadPosition for non-finite positions.
func New(seed beamq.BeamParameter, seedZ float64, target beamq.BeamParameter, targetZ float64, components *optics.Sequence) (*Path, error) {
	if seed.Wavelength() != target.Wavelength() {
		return nil, beamq.ErrWavelengthMismatch
	}
	p := NewSeeded(seed, seedZ, components)
	if p == nil {
		return nil, ErrBadPosition
	}
	if math.IsNaN(targetZ) || math.IsInf(targetZ, 0) {
		return nil, ErrBadPosition
	}
	p.target = target
	p.targetZ = targetZ
	p.hasTarget = true
	return p, nil
}

// NewSeeded constructs a path with a seed beam but no target; overlap
// evaluation is unavailable until SetTarget. A nil sequence starts the
// path empty. Returns nil if seedZ is not finite.
func NewSeeded(seed beamq.BeamParameter, seedZ float64, components *optics.Sequence) *Path {
	if math.IsNaN(seedZ) || math.IsInf(seedZ, 0) {
		return nil
	}
	if components == nil {
		components, _ = optics.NewSequence()
	}
	return &Path{seed: seed, seedZ: seedZ, components: components}
}

// SetTarget installs (or replaces) the target beam at position z.
//
// Errors: beamq.ErrWavelengthMismatch if the target wavelength differs
// from the seed's; ErrBadPosition for a non-finite z.
func (p *Path) SetTarget(target beamq.BeamParameter, z float64) error {
	if target.Wavelength() != p.seed.Wavelength() {
		return beamq.ErrWavelengthMismatch
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return ErrBadPosition
	}
	p.target = target
	p.targetZ = z
	p.hasTarget = true
	return nil
}

// Seed returns the seed beam.
func (p *Path) Seed() beamq.BeamParameter { return p.seed }

// SeedZ returns the seed beam's axial position.
func (p *Path) SeedZ() float64 { return p.seedZ }

// Target returns the target beam and whether one is set.
func (p *Path) Target() (beamq.BeamParameter, bool) { return p.target, p.hasTarget }

// TargetZ returns the target position (zero when no target is set).
func (p *Path) TargetZ() float64 { return p.targetZ }

// Components returns the owned component sequence. Mutating it is
// equivalent to using the path's delegate mutators.
func (p *Path) Components() *optics.Sequence { return p.components }

// forwardTrain builds the gap/component train walking forward from lo
// to hi (lo <= hi): free-space gaps interleaved with the component
// matrices, in ascending order. A component sitting exactly at the seed
// position is behind the seed and skipped whatever the traversal
// direction. Gap matrices are built directly; sequence positions are
// guaranteed finite, so no validation applies.
func (p *Path) forwardTrain(lo, hi float64) []optics.Component {
	span := p.components.Between(lo, hi)
	train := make([]optics.Component, 0, 2*len(span)+1)

	prev := lo
	for _, c := range span {
		if c.Z == p.seedZ {
			continue
		}
		if dz := c.Z - prev; dz != 0 {
			train = append(train, optics.Component{
				M: abcd.Matrix{A: 1, B: dz, D: 1}, Z: prev, Kind: optics.KindPropagator,
			})
		}
		train = append(train, c)
		prev = c.Z
	}
	if dz := hi - prev; dz != 0 {
		train = append(train, optics.Component{
			M: abcd.Matrix{A: 1, B: dz, D: 1}, Z: prev, Kind: optics.KindPropagator,
		})
	}
	return train
}

// Propagate walks the seed beam to axial position z and returns the
// beam parameter there. The component sub-train between seedZ and z is
// combined with the free-space gaps into one composite matrix which is
// applied to the seed via the Möbius transform. For z < seedZ the
// composite is the inverse of the forward train from z up to the seed —
// elements are not symmetric under reversal (a lens is not its own
// inverse), so walking forward and then back recovers the original
// beam. The endpoint policy mirrors: a component exactly at seedZ is
// never applied, one exactly at z is. Propagate(seedZ) returns the seed
// beam unchanged.
//
// Errors: ErrBadPosition for non-finite z; beamq.ErrInvalidQ only for
// degenerate caller-built component matrices.
//
// Complexity: O(n log n) in the number of components in the window.
func (p *Path) Propagate(z float64) (beamq.BeamParameter, error) {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return beamq.BeamParameter{}, ErrBadPosition
	}
	if z == p.seedZ {
		return p.seed, nil
	}
	if z > p.seedZ {
		return p.seed.Transform(optics.Combine(p.forwardTrain(p.seedZ, z)).M)
	}
	return p.seed.Transform(optics.Combine(p.forwardTrain(z, p.seedZ)).M.Inv())
}

// OverlapWithTarget propagates the seed to the target position and
// returns the mode-overlap fraction against the target beam.
//
// Errors: ErrNoTarget on a target-less path; those of Propagate;
// beamq.ErrWavelengthMismatch cannot occur here because construction
// and SetTarget enforce equal wavelengths.
func (p *Path) OverlapWithTarget() (float64, error) {
	if !p.hasTarget {
		return 0, ErrNoTarget
	}
	b, err := p.Propagate(p.targetZ)
	if err != nil {
		return 0, err
	}
	return b.Overlap(p.target)
}

// Clone returns a deep copy of the path. The copy owns its own
// component sequence (and parameter maps); subsequent mutation of
// either path leaves the other untouched.
func (p *Path) Clone() *Path {
	out := *p
	out.components = p.components.Clone()
	return &out
}

// Branch propagates to z and returns a clone whose seed is the
// propagated beam at z — re-basing the origin without altering the
// downstream physics. The receiver is not modified.
//
// Errors: those of Propagate.
func (p *Path) Branch(z float64) (*Path, error) {
	b, err := p.Propagate(z)
	if err != nil {
		return nil, err
	}
	out := p.Clone()
	out.seed = b
	out.seedZ = z
	return out, nil
}

// AddComponent delegates to the owned sequence; seed and target beams
// are untouched. Errors: those of optics.Sequence.Add.
func (p *Path) AddComponent(c optics.Component) error { return p.components.Add(c) }

// DeleteComponent delegates to the owned sequence.
// Errors: optics.ErrComponentNotFound.
func (p *Path) DeleteComponent(label string) error { return p.components.Delete(label) }

// MoveComponent displaces a component by dz relative to its position.
// Errors: optics.ErrComponentNotFound.
func (p *Path) MoveComponent(label string, dz float64) error { return p.components.Move(label, dz) }

// MoveComponentTo positions a component absolutely.
// Errors: optics.ErrComponentNotFound.
func (p *Path) MoveComponentTo(label string, z float64) error { return p.components.MoveTo(label, z) }

// ReplaceComponent substitutes a slot, preserving its z and label.
// Errors: those of optics.Sequence.Replace.
func (p *Path) ReplaceComponent(label string, c optics.Component) error {
	return p.components.Replace(label, c)
}
