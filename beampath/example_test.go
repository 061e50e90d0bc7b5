package beampath_test

import (
	"fmt"

	"github.com/katalvlaran/beamline/beampath"
	"github.com/katalvlaran/beamline/beamq"
	"github.com/katalvlaran/beamline/optics"
)

// ExamplePath_Propagate focuses a 1 mm waist through a f = 0.5 m lens
// one metre downstream and inspects the beam another metre later. The
// train is a 2f–2f imaging system, so the width at z = 2 equals the
// launch width exactly while the new waist sits just short of z = 1.5.
func ExamplePath_Propagate() {
	seed, _ := beamq.FromWaistAndPosition(1e-3, 0, 1064e-9)
	lens, _ := optics.Lens(0.5, 1.0, "focus")
	seq, _ := optics.NewSequence(lens)
	p := beampath.NewSeeded(seed, 0, seq)

	b, _ := p.Propagate(2.0)
	fmt.Printf("width: %.3f mm\n", b.BeamWidth()*1e3)
	fmt.Printf("waist: %.3f mm at z = %.3f m\n", b.WaistSize()*1e3, 2.0-b.WaistOffset())
	// Output:
	// width: 1.000 mm
	// waist: 0.167 mm at z = 1.514 m
}

// ExamplePath_OverlapWithTarget scores how well the focused beam couples
// into a 0.2 mm target mode whose waist sits at z = 1.5.
func ExamplePath_OverlapWithTarget() {
	seed, _ := beamq.FromWaistAndPosition(1e-3, 0, 1064e-9)
	lens, _ := optics.Lens(0.5, 1.0, "focus")
	seq, _ := optics.NewSequence(lens)

	// The target beam at z = 2.0 is half a metre past its own waist.
	target, _ := beamq.FromWaistAndPosition(2e-4, 0.5, 1064e-9)
	p, _ := beampath.New(seed, 0, target, 2.0, seq)

	frac, _ := p.OverlapWithTarget()
	fmt.Printf("coupling: %.3f\n", frac)
	// Output:
	// coupling: 0.963
}

// ExamplePath_WidthProfile locates the focus by sampling the width
// along the axis.
func ExamplePath_WidthProfile() {
	seed, _ := beamq.FromWaistAndPosition(1e-3, 0, 1064e-9)
	lens, _ := optics.Lens(0.5, 1.0, "focus")
	seq, _ := optics.NewSequence(lens)
	p := beampath.NewSeeded(seed, 0, seq)

	zs, ws, _ := p.WidthProfile(0, 2.0, 201)
	best := 0
	for i := range ws {
		if ws[i] < ws[best] {
			best = i
		}
	}
	fmt.Printf("narrowest sample at z = %.2f m\n", zs[best])
	// Output:
	// narrowest sample at z = 1.51 m
}
