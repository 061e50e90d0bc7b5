package fit

import "errors"

var (
	// ErrNoComponents indicates a placement search with no component
	// labels to move.
	ErrNoComponents = errors.New("fit: no components to place")

	// ErrBadBounds indicates a search interval that is empty, inverted,
	// or not finite.
	ErrBadBounds = errors.New("fit: invalid placement bounds")

	// ErrUnsupportedMethod indicates a Method value this package does
	// not implement.
	ErrUnsupportedMethod = errors.New("fit: unsupported search method")

	// ErrNoFeasiblePlacement indicates that every candidate placement
	// failed to produce a physical beam at the target, so no best
	// position exists. This can only happen when the sequence holds a
	// hand-built component with a degenerate matrix.
	ErrNoFeasiblePlacement = errors.New("fit: no feasible placement found")
)

// Method selects the placement search strategy.
type Method int

const (
	// NelderMead runs derivative-free simplex descent with randomized
	// restarts. Best default for smooth overlap landscapes.
	NelderMead Method = iota

	// RandomSearch samples placements uniformly inside the bounds.
	// Slower to converge but immune to local structure.
	RandomSearch
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case NelderMead:
		return "nelder-mead"
	case RandomSearch:
		return "random-search"
	default:
		return "unknown"
	}
}

// Bounds is the closed axial interval a component may be placed in.
// A zero Bounds means "derive from the path": [min(seedZ, targetZ),
// max(seedZ, targetZ)].
type Bounds struct {
	Min float64
	Max float64
}

// Options configures a placement search.
//
// Fields:
//   - Method         — NelderMead or RandomSearch.
//   - MaxEvaluations — total objective-evaluation budget across all
//     restarts; values ≤ 0 fall back to the default.
//   - Restarts       — number of NelderMead starts (the first uses the
//     current placement, the rest are randomized); values < 1 fall
//     back to the default. Ignored by RandomSearch.
//   - Seed           — RNG seed; 0 selects a fixed default so that the
//     zero Options value is still deterministic.
//   - Bounds         — axial interval for every moved component; the
//     zero value derives the interval from the path.
type Options struct {
	Method         Method
	MaxEvaluations int
	Restarts       int
	Seed           int64
	Bounds         Bounds
}

// DefaultOptions returns the recommended search configuration.
func DefaultOptions() Options {
	return Options{
		Method:         NelderMead,
		MaxEvaluations: 2000,
		Restarts:       3,
		Seed:           0,
	}
}

// Result is the outcome of a placement search.
type Result struct {
	// Positions maps each searched label to its best found position.
	Positions map[string]float64

	// Overlap is the mode-overlap fraction achieved at Positions.
	Overlap float64

	// Evaluations counts objective evaluations actually spent.
	Evaluations int
}
