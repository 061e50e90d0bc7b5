package fit

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/beamline/beampath"
)

// Placement searches for positions of the labelled components that
// maximize the path's overlap with its target beam. The input path is
// never mutated: every candidate is scored on its own clone. Candidate
// positions are clamped to the bounds before evaluation, so the result
// always lies inside them.
//
// Errors: ErrNoComponents for an empty label set;
// optics.ErrComponentNotFound for an unknown label;
// beampath.ErrNoTarget on a target-less path; ErrBadBounds;
// ErrUnsupportedMethod; ErrNoFeasiblePlacement when no candidate
// produced a physical beam at the target.
//
// Complexity: O(MaxEvaluations · n log n) with n components in the
// sequence; memory is one path clone per evaluation.
func Placement(p *beampath.Path, labels []string, opts Options) (Result, error) {
	if len(labels) == 0 {
		return Result{}, ErrNoComponents
	}
	if _, ok := p.Target(); !ok {
		return Result{}, beampath.ErrNoTarget
	}

	x0 := make([]float64, len(labels))
	for i, label := range labels {
		c, err := p.Components().Get(label)
		if err != nil {
			return Result{}, err
		}
		x0[i] = c.Z
	}

	bounds, err := resolveBounds(opts.Bounds, p)
	if err != nil {
		return Result{}, err
	}

	defaults := DefaultOptions()
	evals := opts.MaxEvaluations
	if evals <= 0 {
		evals = defaults.MaxEvaluations
	}
	restarts := opts.Restarts
	if restarts < 1 {
		restarts = defaults.Restarts
	}

	tr := &tracker{path: p, labels: labels, bounds: bounds, bestF: math.Inf(1)}
	for i := range x0 {
		x0[i] = clamp(x0[i], bounds)
	}

	switch opts.Method {
	case NelderMead:
		if err := searchNelderMead(tr, x0, bounds, evals, restarts, opts.Seed); err != nil {
			return Result{}, err
		}
	case RandomSearch:
		searchRandom(tr, x0, bounds, evals, opts.Seed)
	default:
		return Result{}, ErrUnsupportedMethod
	}
	if tr.bestX == nil {
		return Result{}, ErrNoFeasiblePlacement
	}

	positions := make(map[string]float64, len(labels))
	for i, label := range labels {
		positions[label] = tr.bestX[i]
	}
	return Result{Positions: positions, Overlap: -tr.bestF, Evaluations: tr.evals}, nil
}

// resolveBounds applies the zero-value policy (derive the interval from
// the seed and target positions) and validates the result.
func resolveBounds(b Bounds, p *beampath.Path) (Bounds, error) {
	if b == (Bounds{}) {
		b = Bounds{Min: math.Min(p.SeedZ(), p.TargetZ()), Max: math.Max(p.SeedZ(), p.TargetZ())}
	}
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) {
		return Bounds{}, ErrBadBounds
	}
	if b.Min >= b.Max {
		return Bounds{}, ErrBadBounds
	}
	return b, nil
}

// tracker scores candidate placements and remembers the best one seen.
// It minimizes f = -overlap so both search strategies and the gonum
// minimizer share one objective.
type tracker struct {
	path   *beampath.Path
	labels []string
	bounds Bounds

	bestX []float64
	bestF float64
	evals int
}

func (t *tracker) eval(x []float64) float64 {
	t.evals++
	cl := t.path.Clone()
	for i, label := range t.labels {
		if err := cl.MoveComponentTo(label, clamp(x[i], t.bounds)); err != nil {
			return 0
		}
	}
	frac, err := cl.OverlapWithTarget()
	if err != nil {
		return 0
	}
	f := -frac
	if f < t.bestF {
		t.bestF = f
		if t.bestX == nil {
			t.bestX = make([]float64, len(x))
		}
		for i := range x {
			t.bestX[i] = clamp(x[i], t.bounds)
		}
	}
	return f
}

// searchNelderMead runs restarts simplex descents: the first from the
// current placement, the rest from seed-derived random points inside
// the bounds. The evaluation budget is split evenly across restarts.
func searchNelderMead(tr *tracker, x0 []float64, b Bounds, evals, restarts int, seed int64) error {
	if seed == 0 {
		seed = defaultSeed
	}
	per := evals / restarts
	if per < 1 {
		per = 1
	}

	start := make([]float64, len(x0))
	for r := 0; r < restarts; r++ {
		if r == 0 {
			copy(start, x0)
		} else {
			rng := rand.New(rand.NewSource(deriveSeed(seed, uint64(r))))
			for i := range start {
				start[i] = b.Min + rng.Float64()*(b.Max-b.Min)
			}
		}

		problem := optimize.Problem{Func: tr.eval}
		settings := &optimize.Settings{FuncEvaluations: per}
		// The tracker already holds the best point seen, so the
		// minimizer's own result can be discarded; its error only
		// matters if no evaluation ever succeeded.
		if _, err := optimize.Minimize(problem, start, settings, &optimize.NelderMead{}); err != nil && tr.bestX == nil {
			return err
		}
	}
	return nil
}

// searchRandom scores the current placement, then uniform samples
// inside the bounds until the budget is spent.
func searchRandom(tr *tracker, x0 []float64, b Bounds, evals int, seed int64) {
	rng := rngFromSeed(seed)
	tr.eval(x0)

	x := make([]float64, len(x0))
	for tr.evals < evals {
		for i := range x {
			x[i] = b.Min + rng.Float64()*(b.Max-b.Min)
		}
		tr.eval(x)
	}
}

func clamp(x float64, b Bounds) float64 {
	if x < b.Min {
		return b.Min
	}
	if x > b.Max {
		return b.Max
	}
	return x
}
