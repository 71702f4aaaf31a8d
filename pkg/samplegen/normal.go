package samplegen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidParams is returned for distribution parameters that cannot be
// sampled from.
var ErrInvalidParams = errors.New("invalid distribution parameters")

// Normal draws normally distributed values, optionally restricted to
// [min, max] by rejection.
type Normal struct {
	dist distuv.Normal
	min  float64
	max  float64
}

// NewNormal returns an unbounded normal generator.
func NewNormal(mean, stdDev float64, seed uint64) (*Normal, error) {
	return NewTruncatedNormal(mean, stdDev, math.Inf(-1), math.Inf(1), seed)
}

// NewTruncatedNormal returns a normal generator that only yields values in
// [min, max].
func NewTruncatedNormal(mean, stdDev, min, max float64, seed uint64) (*Normal, error) {
	if !(stdDev > 0) {
		return nil, fmt.Errorf("%w: std dev must be positive, got %v", ErrInvalidParams, stdDev)
	}
	if !(min < max) {
		return nil, fmt.Errorf("%w: min %v must be less than max %v", ErrInvalidParams, min, max)
	}
	return &Normal{
		dist: distuv.Normal{
			Mu:    mean,
			Sigma: stdDev,
			Src:   rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
		},
		min: min,
		max: max,
	}, nil
}

// Rand draws one value inside [min, max].
func (g *Normal) Rand() float64 {
	for {
		v := g.dist.Rand()
		if v >= g.min && v <= g.max {
			return v
		}
	}
}

// RandN draws n values inside [min, max].
func (g *Normal) RandN(n int) []float64 {
	return randN(g, n)
}

// Dist returns the underlying untruncated distribution.
func (g *Normal) Dist() distuv.Normal {
	return distuv.Normal{Mu: g.dist.Mu, Sigma: g.dist.Sigma}
}

func (g *Normal) Min() float64 {
	return g.min
}

func (g *Normal) Max() float64 {
	return g.max
}
