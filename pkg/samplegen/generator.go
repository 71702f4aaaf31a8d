// Package samplegen produces reproducible synthetic class samples for
// checking distance estimators against known distributions.
package samplegen

// Generator draws samples from a one-dimensional distribution.
type Generator interface {
	Rand() float64
	RandN(n int) []float64
}

// NewDistribution returns a truncated normal generator when isNormal is set
// and a uniform generator over [low, high) otherwise. Generators built with
// the same seed produce the same sequence.
func NewDistribution(isNormal bool, mean, stdDev, low, high float64, seed uint64) (Generator, error) {
	if isNormal {
		g, err := NewTruncatedNormal(mean, stdDev, low, high, seed)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	g, err := NewUniform(low, high, seed)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func randN(g Generator, n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = g.Rand()
	}
	return r
}
