package fit_test

import (
	"testing"

	"github.com/katalvlaran/beamline/beampath"
	"github.com/katalvlaran/beamline/beamq"
	"github.com/katalvlaran/beamline/fit"
	"github.com/katalvlaran/beamline/optics"
)

func benchPath(b *testing.B) *beampath.Path {
	b.Helper()
	seed, err := beamq.FromWaistAndPosition(1e-3, 0, lambda)
	if err != nil {
		b.Fatal(err)
	}
	ideal, err := optics.Lens(0.5, 1.0, "lens1")
	if err != nil {
		b.Fatal(err)
	}
	idealSeq, err := optics.NewSequence(ideal)
	if err != nil {
		b.Fatal(err)
	}
	target, err := beampath.NewSeeded(seed, 0, idealSeq).Propagate(2.0)
	if err != nil {
		b.Fatal(err)
	}

	lens, err := optics.Lens(0.5, 0.6, "lens1")
	if err != nil {
		b.Fatal(err)
	}
	seq, err := optics.NewSequence(lens)
	if err != nil {
		b.Fatal(err)
	}
	p, err := beampath.New(seed, 0, target, 2.0, seq)
	if err != nil {
		b.Fatal(err)
	}
	return p
}

func BenchmarkPlacement_NelderMead(b *testing.B) {
	p := benchPath(b)
	opts := fit.DefaultOptions()
	opts.MaxEvaluations = 200
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fit.Placement(p, []string{"lens1"}, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPlacement_RandomSearch(b *testing.B) {
	p := benchPath(b)
	opts := fit.DefaultOptions()
	opts.Method = fit.RandomSearch
	opts.MaxEvaluations = 200
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fit.Placement(p, []string{"lens1"}, opts); err != nil {
			b.Fatal(err)
		}
	}
}
