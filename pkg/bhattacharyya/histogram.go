package bhattacharyya

import (
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
)

// outerEdges widens a zero-width range to one unit centred on the value so
// a histogram can still be built over it.
func outerEdges(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

// densityHistogram bins x into nbins equal-width bins over [lo, hi] and
// normalises the counts so the histogram integrates to 1. The last bin is
// closed on the right, so values equal to hi are counted.
func densityHistogram(x []float64, lo, hi float64, nbins int) []float64 {
	h := stats.NewLinearHist(lo, hi, nbins)
	for _, v := range x {
		h.Add(v)
	}
	low, counts, high := h.Counts()

	norm := float64(len(x)) * (hi - lo) / float64(nbins)
	dens := make([]float64, nbins)
	for i, c := range counts {
		dens[i] = float64(c) / norm
	}
	dens[0] += float64(low) / norm
	dens[nbins-1] += float64(high) / norm
	return dens
}

// overlap returns Σ sqrt(d1[i]·d2[i]).
func overlap(d1, d2 []float64) float64 {
	prod := floats.MulTo(make([]float64, len(d1)), d1, d2)
	for i, p := range prod {
		prod[i] = math.Sqrt(p)
	}
	return floats.Sum(prod)
}

func histogramCoefficient(x1, x2 []float64, lo, hi float64, nbins int, o options) float64 {
	lo, hi = outerEdges(lo, hi)
	h1 := densityHistogram(x1, lo, hi, nbins)
	h2 := densityHistogram(x2, lo, hi, nbins)

	bc := overlap(h1, h2) / float64(nbins)
	if !o.rawScale {
		bc *= hi - lo
	}
	return bc
}

func fixedHistogramCoefficient(x1, x2 []float64, lo, hi float64, o options) float64 {
	return histogramCoefficient(x1, x2, lo, hi, o.bins, o)
}

// autoHistogramCoefficient derives the bin count from the combined sample so
// both histograms share the same edges.
func autoHistogramCoefficient(x1, x2 []float64, lo, hi float64, o options) float64 {
	combined := append(slices.Clone(x1), x2...)
	nbins := autoBinCount(combined, lo, hi, o.binRule)
	return histogramCoefficient(x1, x2, lo, hi, nbins, o)
}
