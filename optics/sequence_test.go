package optics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/beamline/optics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustLens is a test helper building a lens or failing the test.
func mustLens(t *testing.T, f, z float64, label string) optics.Component {
	t.Helper()
	c, err := optics.Lens(f, z, label)
	require.NoError(t, err)
	return c
}

// TestSequence_AddAndOrdered verifies that the ordered view sorts by
// position, not by insertion order.
func TestSequence_AddAndOrdered(t *testing.T) {
	s, err := optics.NewSequence(
		mustLens(t, 0.5, 2.0, "far"),
		mustLens(t, 0.5, 1.0, "near"),
		mustLens(t, 0.5, 3.0, "farther"),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"near", "far", "farther"}, s.Labels())
}

// TestSequence_AddValidation covers label uniqueness, empty labels, and
// the atomicity guarantee (failed add leaves the sequence unchanged).
func TestSequence_AddValidation(t *testing.T) {
	s, err := optics.NewSequence(mustLens(t, 0.5, 1.0, "lens1"))
	require.NoError(t, err)

	err = s.Add(mustLens(t, 0.25, 2.0, "lens1"))
	assert.ErrorIs(t, err, optics.ErrDuplicateLabel)
	assert.Equal(t, 1, s.Len(), "failed add must not mutate")

	err = s.Add(mustLens(t, 0.25, 2.0, ""))
	assert.ErrorIs(t, err, optics.ErrEmptyLabel)
	assert.Equal(t, 1, s.Len())
}

// TestSequence_RejectsNonFinitePositions pins the finite-position
// guarantee: Add, Move and MoveTo refuse NaN/Inf positions, so every
// position a sequence holds stays usable for propagation arithmetic.
func TestSequence_RejectsNonFinitePositions(t *testing.T) {
	s, err := optics.NewSequence(mustLens(t, 0.5, 1.0, "lens1"))
	require.NoError(t, err)

	bad := mustLens(t, 0.25, 2.0, "lens2")
	bad.Z = math.NaN()
	assert.ErrorIs(t, s.Add(bad), optics.ErrBadParameter)
	bad.Z = math.Inf(1)
	assert.ErrorIs(t, s.Add(bad), optics.ErrBadParameter)
	assert.Equal(t, 1, s.Len(), "failed add must not mutate")

	assert.ErrorIs(t, s.MoveTo("lens1", math.Inf(-1)), optics.ErrBadParameter)
	assert.ErrorIs(t, s.Move("lens1", math.NaN()), optics.ErrBadParameter)

	c, err := s.Get("lens1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Z, "failed moves must not mutate")
}

// TestSequence_SingleFlatMirror enforces the at-most-one flat mirror
// invariant across Add and Replace.
func TestSequence_SingleFlatMirror(t *testing.T) {
	end, err := optics.FlatMirror(5.0, "end")
	require.NoError(t, err)
	s, err := optics.NewSequence(mustLens(t, 0.5, 1.0, "lens1"), end)
	require.NoError(t, err)

	second, err := optics.FlatMirror(6.0, "end2")
	require.NoError(t, err)
	assert.ErrorIs(t, s.Add(second), optics.ErrSecondFlatMirror)

	// Replacing a lens with a flat mirror while one exists also fails.
	assert.ErrorIs(t, s.Replace("lens1", second), optics.ErrSecondFlatMirror)

	// Replacing the flat mirror itself with another flat mirror is fine.
	assert.NoError(t, s.Replace("end", second))
}

// TestSequence_MoveRelativeThenAbsolute replays the spec scenario:
// a relative move followed by an absolute move lands at the absolute
// target regardless of the intermediate displacement.
func TestSequence_MoveRelativeThenAbsolute(t *testing.T) {
	s, err := optics.NewSequence(mustLens(t, 0.5, 1.0, "lens1"))
	require.NoError(t, err)

	require.NoError(t, s.Move("lens1", 0.5))
	c, err := s.Get("lens1")
	require.NoError(t, err)
	assert.Equal(t, 1.5, c.Z, "relative move adds the displacement")

	require.NoError(t, s.MoveTo("lens1", 2.5))
	c, err = s.Get("lens1")
	require.NoError(t, err)
	assert.Equal(t, 2.5, c.Z, "absolute move sets z directly")

	assert.ErrorIs(t, s.Move("ghost", 1.0), optics.ErrComponentNotFound)
	assert.ErrorIs(t, s.MoveTo("ghost", 1.0), optics.ErrComponentNotFound)
}

// TestSequence_MoveReordersView verifies the ordered view is never
// stale after repositioning.
func TestSequence_MoveReordersView(t *testing.T) {
	s, err := optics.NewSequence(
		mustLens(t, 0.5, 1.0, "a"),
		mustLens(t, 0.5, 2.0, "b"),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, s.Labels())

	require.NoError(t, s.MoveTo("a", 3.0))
	assert.Equal(t, []string{"b", "a"}, s.Labels(), "resort happens on next read")
}

// TestSequence_EqualZKeepsInsertionOrder pins the documented tie-break
// policy: equal positions order by insertion, stable across moves.
func TestSequence_EqualZKeepsInsertionOrder(t *testing.T) {
	s, err := optics.NewSequence(
		mustLens(t, 0.5, 1.0, "first"),
		mustLens(t, 0.25, 1.0, "second"),
		mustLens(t, 0.125, 1.0, "third"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third"}, s.Labels())

	// Moving away and back keeps the stamp, hence the order.
	require.NoError(t, s.MoveTo("second", 9.0))
	require.NoError(t, s.MoveTo("second", 1.0))
	assert.Equal(t, []string{"first", "second", "third"}, s.Labels())
}

// TestSequence_Replace verifies slot substitution semantics: z and label
// inherited, matrix/kind/params taken from the replacement, ordering
// unchanged.
func TestSequence_Replace(t *testing.T) {
	s, err := optics.NewSequence(
		mustLens(t, 0.5, 1.0, "lens1"),
		mustLens(t, 0.5, 2.0, "lens2"),
	)
	require.NoError(t, err)

	newLens := mustLens(t, 0.125, 7.7, "ignored")
	require.NoError(t, s.Replace("lens1", newLens))

	got, err := s.Get("lens1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Z, "replacement inherits the slot position")
	assert.Equal(t, "lens1", got.Label, "replacement inherits the slot label")
	assert.Equal(t, 0.125, got.Params[optics.ParamFocalLength], "parameters come from the new element")
	assert.Equal(t, []string{"lens1", "lens2"}, s.Labels(), "ordering unchanged")

	assert.ErrorIs(t, s.Replace("ghost", newLens), optics.ErrComponentNotFound)
}

// TestSequence_DeleteAndGet covers removal and the not-found sentinel.
func TestSequence_DeleteAndGet(t *testing.T) {
	s, err := optics.NewSequence(mustLens(t, 0.5, 1.0, "lens1"))
	require.NoError(t, err)

	require.NoError(t, s.Delete("lens1"))
	assert.Equal(t, 0, s.Len())
	assert.ErrorIs(t, s.Delete("lens1"), optics.ErrComponentNotFound)

	_, err = s.Get("lens1")
	assert.ErrorIs(t, err, optics.ErrComponentNotFound)
}

// TestSequence_Between covers the inclusive window and the reversed
// traversal for backward propagation.
func TestSequence_Between(t *testing.T) {
	s, err := optics.NewSequence(
		mustLens(t, 0.5, 1.0, "a"),
		mustLens(t, 0.5, 2.0, "b"),
		mustLens(t, 0.5, 3.0, "c"),
	)
	require.NoError(t, err)

	forward := s.Between(1.0, 2.5)
	require.Len(t, forward, 2)
	assert.Equal(t, "a", forward[0].Label, "inclusive lower bound")
	assert.Equal(t, "b", forward[1].Label)

	backward := s.Between(3.5, 1.5)
	require.Len(t, backward, 2)
	assert.Equal(t, "c", backward[0].Label, "descending order when zLow > zHigh")
	assert.Equal(t, "b", backward[1].Label)

	assert.Empty(t, s.Between(4.0, 9.0), "empty window")
}

// TestSequence_CloneIsIndependent verifies the deep-copy contract used
// by path duplication and parallel candidate evaluation.
func TestSequence_CloneIsIndependent(t *testing.T) {
	s, err := optics.NewSequence(
		mustLens(t, 0.5, 1.0, "a"),
		mustLens(t, 0.25, 2.0, "b"),
	)
	require.NoError(t, err)

	cp := s.Clone()
	require.NoError(t, cp.MoveTo("a", 9.0))
	require.NoError(t, cp.Delete("b"))

	a, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.Z, "original position untouched")
	assert.Equal(t, 2, s.Len(), "original membership untouched")

	// Parameter maps are detached as well.
	ca, err := cp.Get("a")
	require.NoError(t, err)
	ca.Params[optics.ParamFocalLength] = 123
	a, _ = s.Get("a")
	assert.Equal(t, 0.5, a.Params[optics.ParamFocalLength])
}
