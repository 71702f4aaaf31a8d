package samplegen

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform draws values uniformly from [low, high).
type Uniform struct {
	dist distuv.Uniform
}

func NewUniform(low, high float64, seed uint64) (*Uniform, error) {
	if !(low < high) {
		return nil, fmt.Errorf("%w: low %v must be less than high %v", ErrInvalidParams, low, high)
	}
	return &Uniform{
		dist: distuv.Uniform{
			Min: low,
			Max: high,
			Src: rand.NewPCG(seed, ^seed),
		},
	}, nil
}

func (g *Uniform) Rand() float64 {
	return g.dist.Rand()
}

func (g *Uniform) RandN(n int) []float64 {
	return randN(g, n)
}
