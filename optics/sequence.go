package optics

import (
	"math"
	"sort"
)

// entry pairs a component with its insertion stamp. The stamp breaks
// ties between components at equal z: stable insertion order is the
// documented policy, their relative order has no physical meaning.
type entry struct {
	comp  Component
	stamp uint64
}

// Sequence is a mutable, label-keyed collection of components. The
// ordered view is derived on every read by sorting on (z, insertion
// stamp), so it can never go stale after Move/MoveTo. Labels are the
// only stable identifiers; positional indices shift as z values change.
//
// A sequence holds at most one flat mirror.
//
// Sequence is not safe for concurrent mutation; callers running
// parallel searches must work on independent Clones.
type Sequence struct {
	items map[string]entry
	next  uint64
}

// NewSequence returns a sequence holding the given components, added in
// argument order (which fixes the tie-break order at equal z).
//
// Errors: those of Add; on failure no sequence is returned.
func NewSequence(components ...Component) (*Sequence, error) {
	s := &Sequence{items: make(map[string]entry, len(components))}
	for _, c := range components {
		if err := s.Add(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of components.
func (s *Sequence) Len() int { return len(s.items) }

// hasFlatMirror reports whether a flat mirror other than exceptLabel is
// present.
func (s *Sequence) hasFlatMirror(exceptLabel string) bool {
	for label, e := range s.items {
		if e.comp.Kind == KindFlatMirror && label != exceptLabel {
			return true
		}
	}
	return false
}

// Add inserts a component keyed by its label. Validation precedes any
// state change: on error the sequence is untouched.
//
// Errors: ErrEmptyLabel, ErrDuplicateLabel, ErrSecondFlatMirror;
// ErrBadParameter for a non-finite position (every position a sequence
// holds is finite, so propagation never has to re-validate).
//
// Complexity: O(1) amortized (O(n) for the flat-mirror scan).
func (s *Sequence) Add(c Component) error {
	if c.Label == "" {
		return ErrEmptyLabel
	}
	if math.IsNaN(c.Z) || math.IsInf(c.Z, 0) {
		return ErrBadParameter
	}
	if _, ok := s.items[c.Label]; ok {
		return ErrDuplicateLabel
	}
	if c.Kind == KindFlatMirror && s.hasFlatMirror("") {
		return ErrSecondFlatMirror
	}
	s.items[c.Label] = entry{comp: c, stamp: s.next}
	s.next++
	return nil
}

// Delete removes the component with the given label.
//
// Errors: ErrComponentNotFound.
func (s *Sequence) Delete(label string) error {
	if _, ok := s.items[label]; !ok {
		return ErrComponentNotFound
	}
	delete(s.items, label)
	return nil
}

// Get returns the component with the given label.
//
// Errors: ErrComponentNotFound.
func (s *Sequence) Get(label string) (Component, error) {
	e, ok := s.items[label]
	if !ok {
		return Component{}, ErrComponentNotFound
	}
	return e.comp, nil
}

// Move displaces the labeled component by dz relative to its current
// position. The ordered view reflects the change on its next read.
//
// Errors: ErrComponentNotFound; ErrBadParameter if the resulting
// position would not be finite.
func (s *Sequence) Move(label string, dz float64) error {
	e, ok := s.items[label]
	if !ok {
		return ErrComponentNotFound
	}
	z := e.comp.Z + dz
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return ErrBadParameter
	}
	e.comp.Z = z
	s.items[label] = e
	return nil
}

// MoveTo sets the labeled component's position to z absolutely,
// regardless of any earlier relative displacements.
//
// Errors: ErrComponentNotFound; ErrBadParameter for a non-finite z.
func (s *Sequence) MoveTo(label string, z float64) error {
	e, ok := s.items[label]
	if !ok {
		return ErrComponentNotFound
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return ErrBadParameter
	}
	e.comp.Z = z
	s.items[label] = e
	return nil
}

// Replace substitutes the labeled slot with c. The replacement inherits
// the removed component's z and label; everything else (matrix, kind,
// parameters) comes from c, and the previous component is discarded.
// This is a slot substitution, not a property patch. The insertion
// stamp is inherited too, so the tie-break order at equal z is stable
// across replacement.
//
// Errors: ErrComponentNotFound; ErrSecondFlatMirror if c would
// introduce a second flat mirror.
func (s *Sequence) Replace(label string, c Component) error {
	e, ok := s.items[label]
	if !ok {
		return ErrComponentNotFound
	}
	if c.Kind == KindFlatMirror && s.hasFlatMirror(label) {
		return ErrSecondFlatMirror
	}
	c.Z = e.comp.Z
	c.Label = label
	s.items[label] = entry{comp: c, stamp: e.stamp}
	return nil
}

// Ordered returns the components sorted ascending by z, with insertion
// order breaking ties at equal z. The slice is freshly built on every
// call and safe to reorder; the components' Params maps are shared and
// must be treated as read-only.
//
// Complexity: O(n log n).
func (s *Sequence) Ordered() []Component {
	es := make([]entry, 0, len(s.items))
	for _, e := range s.items {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool {
		if es[i].comp.Z != es[j].comp.Z {
			return es[i].comp.Z < es[j].comp.Z
		}
		return es[i].stamp < es[j].stamp
	})
	out := make([]Component, len(es))
	for i, e := range es {
		out[i] = e.comp
	}
	return out
}

// Labels returns the component labels in position order.
func (s *Sequence) Labels() []string {
	ordered := s.Ordered()
	out := make([]string, len(ordered))
	for i, c := range ordered {
		out[i] = c.Label
	}
	return out
}

// Between returns the components whose z lies within [zLow, zHigh],
// inclusive on both ends, ordered in the direction of traversal: when
// zLow > zHigh the window is read as [zHigh, zLow] and the result is in
// descending position order. Ties at equal z
// keep insertion order in forward traversal and reverse it in backward
// traversal, mirroring the direction.
//
// Complexity: O(n log n).
func (s *Sequence) Between(zLow, zHigh float64) []Component {
	lo, hi := zLow, zHigh
	reverse := false
	if lo > hi {
		lo, hi = hi, lo
		reverse = true
	}

	ordered := s.Ordered()
	out := make([]Component, 0, len(ordered))
	for _, c := range ordered {
		if c.Z >= lo && c.Z <= hi {
			out = append(out, c)
		}
	}
	if reverse {
		for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
			out[l], out[r] = out[r], out[l]
		}
	}
	return out
}

// Combine folds the whole sequence, in position order, into one
// composite component. See the package-level Combine for the
// composition rule.
func (s *Sequence) Combine() Component {
	return Combine(s.Ordered())
}

// Clone returns a deep copy of the sequence: components, parameter maps
// and insertion stamps are all independent of the original.
func (s *Sequence) Clone() *Sequence {
	out := &Sequence{
		items: make(map[string]entry, len(s.items)),
		next:  s.next,
	}
	for label, e := range s.items {
		out.items[label] = entry{comp: e.comp.Clone(), stamp: e.stamp}
	}
	return out
}
