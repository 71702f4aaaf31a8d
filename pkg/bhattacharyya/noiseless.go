package bhattacharyya

import (
	"maps"
	"math"
	"slices"
)

func countValues(x []float64) map[float64]int {
	counts := make(map[float64]int, len(x))
	for _, v := range x {
		counts[v]++
	}
	return counts
}

// noiselessCoefficient treats every distinct value of the union as its own
// bin. Only sensible for features with a small set of distinct values.
func noiselessCoefficient(x1, x2 []float64, lo, hi float64, o options) (float64, error) {
	c1, c2 := countValues(x1), countValues(x2)

	set := maps.Clone(c1)
	maps.Copy(set, c2)
	distinct := slices.Sorted(maps.Keys(set))

	r := hi - lo
	if r == 0 {
		if len(distinct) != 1 {
			return 0, &InputError{Reason: "zero combined range with more than one distinct value"}
		}
		// Both samples hold the same single value.
		return 1, nil
	}

	n1, n2 := float64(len(x1)), float64(len(x2))
	var bc float64
	for _, u := range distinct {
		bc += math.Sqrt(float64(c1[u]) / n1 * float64(c2[u]) / n2)
	}
	if o.rawScale {
		bc /= r
	}
	return bc, nil
}
