package bhattacharyya

import (
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// newKDE builds a Gaussian KDE of x whose bandwidth is factor times the
// sample standard deviation. The bandwidth is fixed here so the KDE never
// falls back to its own bandwidth estimator.
func newKDE(x []float64, sample int, factor float64) (*stats.KDE, error) {
	if len(x) < 2 {
		return nil, &InputError{Sample: sample, Reason: "continuous method needs at least two values"}
	}
	sd := stat.StdDev(x, nil)
	if sd == 0 {
		return nil, &InputError{Sample: sample, Reason: "continuous method needs values with non-zero spread"}
	}
	return &stats.KDE{
		Sample:    stats.Sample{Xs: x},
		Kernel:    stats.GaussianKernel,
		Bandwidth: factor * sd,
	}, nil
}

func continuousCoefficient(x1, x2 []float64, lo, hi float64, o options) (float64, error) {
	k1, err := newKDE(x1, 1, o.bandwidthFactor)
	if err != nil {
		return 0, err
	}
	k2, err := newKDE(x2, 2, o.bandwidthFactor)
	if err != nil {
		return 0, err
	}

	grid := floats.Span(make([]float64, o.steps), lo, hi)
	d1 := make([]float64, len(grid))
	d2 := make([]float64, len(grid))
	for i, x := range grid {
		d1[i] = k1.PDF(x)
		d2[i] = k2.PDF(x)
	}

	// Riemann sum of sqrt(p1·p2) over the combined range.
	bc := overlap(d1, d2) / float64(o.steps)
	if !o.rawScale {
		bc *= hi - lo
	}
	return bc, nil
}
