package optics

// Batch factories build several components from parallel lists of
// parameters, positions and labels. All lists must share one common
// length; a length-1 list is broadcast across the batch. Broadcasting a
// label over more than one component is permitted here — the resulting
// duplicate is caught by Sequence.Add.

// broadcastLen returns the common batch length, or ErrLengthMismatch if
// the list lengths are incompatible.
func broadcastLen(lengths ...int) (int, error) {
	n := 0
	for _, l := range lengths {
		if l > n {
			n = l
		}
	}
	for _, l := range lengths {
		if l != n && l != 1 {
			return 0, ErrLengthMismatch
		}
	}
	return n, nil
}

// pick returns the i-th element of xs, or its only element when xs is
// being broadcast.
func pick[T any](xs []T, i int) T {
	if len(xs) == 1 {
		return xs[0]
	}
	return xs[i]
}

// LensBatch builds thin lenses from parallel focal-length, position and
// label lists.
//
// Errors: ErrLengthMismatch on incompatible lengths; ErrBadParameter
// from the element factory (no components are returned in that case).
func LensBatch(fs, zs []float64, labels []string) ([]Component, error) {
	n, err := broadcastLen(len(fs), len(zs), len(labels))
	if err != nil {
		return nil, err
	}
	out := make([]Component, 0, n)
	for i := 0; i < n; i++ {
		c, err := Lens(pick(fs, i), pick(zs, i), pick(labels, i))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CurvedMirrorBatch builds curved mirrors from parallel radius, position
// and label lists.
func CurvedMirrorBatch(rs, zs []float64, labels []string) ([]Component, error) {
	n, err := broadcastLen(len(rs), len(zs), len(labels))
	if err != nil {
		return nil, err
	}
	out := make([]Component, 0, n)
	for i := 0; i < n; i++ {
		c, err := CurvedMirror(pick(rs, i), pick(zs, i), pick(labels, i))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// PropagatorBatch builds free-space gaps from parallel distance,
// position and label lists.
func PropagatorBatch(dzs, zs []float64, labels []string) ([]Component, error) {
	n, err := broadcastLen(len(dzs), len(zs), len(labels))
	if err != nil {
		return nil, err
	}
	out := make([]Component, 0, n)
	for i := 0; i < n; i++ {
		c, err := Propagator(pick(dzs, i), pick(zs, i), pick(labels, i))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// DielectricBatch builds thick dielectric slabs from parallel surface
// radius, thickness, index, position and label lists.
func DielectricBatch(r1s, r2s, ts, ns, zs []float64, labels []string) ([]Component, error) {
	n, err := broadcastLen(len(r1s), len(r2s), len(ts), len(ns), len(zs), len(labels))
	if err != nil {
		return nil, err
	}
	out := make([]Component, 0, n)
	for i := 0; i < n; i++ {
		c, err := Dielectric(pick(r1s, i), pick(r2s, i), pick(ts, i), pick(ns, i), pick(zs, i), pick(labels, i))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// FlatMirrorBatch builds plane mirrors from parallel position and label
// lists. Note that a single Sequence will still accept at most one of
// them.
func FlatMirrorBatch(zs []float64, labels []string) ([]Component, error) {
	n, err := broadcastLen(len(zs), len(labels))
	if err != nil {
		return nil, err
	}
	out := make([]Component, 0, n)
	for i := 0; i < n; i++ {
		c, err := FlatMirror(pick(zs, i), pick(labels, i))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
