package beampath

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/beamline/beamq"
)

// WidthProfile samples the beam width at n evenly spaced positions
// between from and to (inclusive) and returns the positions alongside
// the widths. This is the entry point plotting layers use to draw
// beam-width-vs-position curves; the engine itself does no drawing.
//
// Errors: ErrBadProfile for n < 2; those of Propagate.
//
// Complexity: O(n·k log k) with k components in the widest window.
func (p *Path) WidthProfile(from, to float64, n int) (zs, widths []float64, err error) {
	if n < 2 {
		return nil, nil, ErrBadProfile
	}
	zs = make([]float64, n)
	floats.Span(zs, from, to)

	widths = make([]float64, n)
	var b beamq.BeamParameter
	for i, z := range zs {
		if b, err = p.Propagate(z); err != nil {
			return nil, nil, err
		}
		widths[i] = b.BeamWidth()
	}
	return zs, widths, nil
}
