package bhattacharyya

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianDistance returns the exact Bhattacharyya distance between two
// normal distributions:
//
//	ln((σ1²/σ2² + σ2²/σ1² + 2)/4)/4 + (μ1-μ2)²/(σ1²+σ2²)/4
//
// It is the reference the estimators are checked against.
func GaussianDistance(a, b distuv.Normal) float64 {
	va, vb := a.Sigma*a.Sigma, b.Sigma*b.Sigma
	d := a.Mu - b.Mu
	return math.Log((va/vb+vb/va+2)/4)/4 + d*d/(va+vb)/4
}
