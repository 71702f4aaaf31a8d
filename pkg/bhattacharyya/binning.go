package bhattacharyya

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// BinRule derives a histogram bin width from a sample. AutoHistogram applies
// it to the union of both samples. The width formulas follow the ones numpy
// uses for the same names.
type BinRule int

const (
	// Doane accounts for skewness and copes with non-normal data.
	Doane BinRule = iota
	// FreedmanDiaconis uses 2·IQR·n^(-1/3) and is robust to outliers.
	FreedmanDiaconis
	// Scott uses (24·√π/n)^(1/3)·σ and assumes near-normal data.
	Scott
	// Sturges uses range/(log2(n)+1). It under-bins large samples.
	Sturges
	// Sqrt uses range/√n.
	Sqrt
)

func (r BinRule) String() string {
	switch r {
	case Doane:
		return "doane"
	case FreedmanDiaconis:
		return "fd"
	case Scott:
		return "scott"
	case Sturges:
		return "sturges"
	case Sqrt:
		return "sqrt"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// ParseBinRule maps a rule name to a BinRule. An empty name selects Doane.
func ParseBinRule(name string) (BinRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "doane":
		return Doane, nil
	case "fd", "freedman-diaconis":
		return FreedmanDiaconis, nil
	case "scott":
		return Scott, nil
	case "sturges":
		return Sturges, nil
	case "sqrt":
		return Sqrt, nil
	default:
		return 0, fmt.Errorf("%w: unknown bin rule %q", ErrInvalidOption, name)
	}
}

func (r BinRule) valid() bool {
	return r >= Doane && r <= Sqrt
}

// width returns the bin width for x, whose values span ptp. A zero width
// means the rule has no opinion and a single bin is used.
func (r BinRule) width(x []float64, ptp float64) float64 {
	n := float64(len(x))
	switch r {
	case Doane:
		if len(x) <= 2 {
			return 0
		}
		sg1 := math.Sqrt(6 * (n - 2) / ((n + 1) * (n + 3)))
		mean, sigma := stat.PopMeanStdDev(x, nil)
		if sigma <= 0 {
			return 0
		}
		g1 := stat.MomentAbout(3, x, mean, nil) / (sigma * sigma * sigma)
		return ptp / (1 + math.Log2(n) + math.Log2(1+math.Abs(g1)/sg1))
	case FreedmanDiaconis:
		sorted := slices.Clone(x)
		slices.Sort(sorted)
		iqr := quantileLinear(sorted, 0.75) - quantileLinear(sorted, 0.25)
		return 2 * iqr * math.Pow(n, -1.0/3)
	case Scott:
		return math.Cbrt(24*math.Sqrt(math.Pi)/n) * stat.PopStdDev(x, nil)
	case Sturges:
		return ptp / (math.Log2(n) + 1)
	case Sqrt:
		return ptp / math.Sqrt(n)
	}
	return 0
}

// quantileLinear returns the p-quantile of the non-empty sorted slice,
// interpolating linearly between the values at ranks floor and ceil of
// (n-1)·p, numpy's default method.
func quantileLinear(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	i := int(h)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

// autoBinCount returns the number of equal-width bins r assigns to x over
// [lo, hi].
func autoBinCount(x []float64, lo, hi float64, r BinRule) int {
	w := r.width(x, hi-lo)
	if !(w > 0) {
		return 1
	}
	lo, hi = outerEdges(lo, hi)
	n := math.Ceil((hi - lo) / w)
	switch {
	case n < 1:
		return 1
	case n > MaxAutoBins:
		return MaxAutoBins
	}
	return int(n)
}
