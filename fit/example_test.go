package fit_test

import (
	"fmt"

	"github.com/katalvlaran/beamline/beampath"
	"github.com/katalvlaran/beamline/beamq"
	"github.com/katalvlaran/beamline/fit"
	"github.com/katalvlaran/beamline/optics"
)

// ExamplePlacement recovers a lens position from a misaligned start.
// The target beam was produced with the lens at z = 1.0, but the path
// holds it at z = 0.6; the search moves it back.
func ExamplePlacement() {
	seed, _ := beamq.FromWaistAndPosition(1e-3, 0, 1064e-9)

	ideal, _ := optics.Lens(0.5, 1.0, "focus")
	idealSeq, _ := optics.NewSequence(ideal)
	target, _ := beampath.NewSeeded(seed, 0, idealSeq).Propagate(2.0)

	lens, _ := optics.Lens(0.5, 0.6, "focus")
	seq, _ := optics.NewSequence(lens)
	p, _ := beampath.New(seed, 0, target, 2.0, seq)

	res, _ := fit.Placement(p, []string{"focus"}, fit.DefaultOptions())
	fmt.Printf("lens at z = %.2f m, coupling %.3f\n", res.Positions["focus"], res.Overlap)
	// Output:
	// lens at z = 1.00 m, coupling 1.000
}
