package samplegen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Quantize replaces every value of x1 and x2 by the index of the
// equal-width bin it falls in, with bins spanning the combined range. The
// result turns a continuous feature into a discrete one, e.g. to exercise
// an estimator meant for qualitative data.
func Quantize(x1, x2 []float64, bins int) ([]float64, []float64, error) {
	if bins < 1 {
		return nil, nil, fmt.Errorf("%w: bins must be positive, got %d", ErrInvalidParams, bins)
	}
	if len(x1) == 0 || len(x2) == 0 {
		return nil, nil, fmt.Errorf("%w: empty sample", ErrInvalidParams)
	}
	lo := math.Min(floats.Min(x1), floats.Min(x2))
	hi := math.Max(floats.Max(x1), floats.Max(x2))
	if math.IsInf(hi-lo, 0) {
		return nil, nil, fmt.Errorf("%w: combined range overflows float64", ErrInvalidParams)
	}

	bin := func(v float64) float64 {
		if hi == lo {
			return 0
		}
		i := int(float64(bins) * (v - lo) / (hi - lo))
		return float64(min(i, bins-1))
	}
	q1 := make([]float64, len(x1))
	for i, v := range x1 {
		q1[i] = bin(v)
	}
	q2 := make([]float64, len(x2))
	for i, v := range x2 {
		q2[i] = bin(v)
	}
	return q1, q2, nil
}
