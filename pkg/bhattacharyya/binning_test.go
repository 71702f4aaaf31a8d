package bhattacharyya

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinRuleWidth(t *testing.T) {
	tests := []struct {
		name string
		rule BinRule
		x    []float64
		want float64
	}{
		{"SturgesEight", Sturges, []float64{0, 1, 2, 3, 4, 5, 6, 7}, 7.0 / 4},
		{"SqrtFour", Sqrt, []float64{0, 1, 2, 3}, 1.5},
		{"DoaneSymmetric", Doane, []float64{0, 1, 2, 3, 4}, 4 / (1 + math.Log2(5))},
		{"DoaneTooSmall", Doane, []float64{0, 1}, 0},
		{"DoaneConstant", Doane, []float64{3, 3, 3, 3}, 0},
		{"ScottConstant", Scott, []float64{3, 3, 3}, 0},
		{"FreedmanDiaconisFour", FreedmanDiaconis, []float64{4, 1, 3, 2}, 2 * 1.5 * math.Pow(4, -1.0/3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := combinedRange(tt.x, tt.x)
			assert.InDelta(t, tt.want, tt.rule.width(tt.x, hi-lo), 1e-12)
		})
	}

	t.Run("FreedmanDiaconis", func(t *testing.T) {
		x := []float64{8, 1, 7, 2, 6, 3, 5, 4}
		assert.Greater(t, FreedmanDiaconis.width(x, 7), 0.0)
		// The input is not reordered.
		assert.Equal(t, []float64{8, 1, 7, 2, 6, 3, 5, 4}, x)
	})
}

func TestQuantileLinear(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	tests := []struct {
		p, want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, quantileLinear(x, tt.p), 1e-12, "p=%v", tt.p)
	}
	assert.Equal(t, 7.0, quantileLinear([]float64{7}, 0.75))
}

func TestAutoBinCount(t *testing.T) {
	assert.Equal(t, 4, autoBinCount([]float64{0, 1, 2, 3, 4}, 0, 4, Doane))
	assert.Equal(t, 1, autoBinCount([]float64{2, 2, 2}, 2, 2, Doane))
	assert.Equal(t, 2, autoBinCount([]float64{0, 1, 2, 3}, 0, 3, Sqrt))
}

func TestParseBinRule(t *testing.T) {
	for _, r := range []BinRule{Doane, FreedmanDiaconis, Scott, Sturges, Sqrt} {
		got, err := ParseBinRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := ParseBinRule("")
	require.NoError(t, err)
	assert.Equal(t, Doane, got)

	_, err = ParseBinRule("knuth")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestAutoHistogramRules(t *testing.T) {
	x1 := normalSample(0, 1, 2000, 11)
	x2 := normalSample(0.5, 1, 2000, 12)

	for _, r := range []BinRule{Doane, FreedmanDiaconis, Scott, Sturges, Sqrt} {
		t.Run(r.String(), func(t *testing.T) {
			d, err := Distance(x1, x2, AutoHistogram, WithBinRule(r))
			require.NoError(t, err)
			// Exact value for N(0,1) vs N(0.5,1) is 0.5²/8.
			assert.InDelta(t, 0.03125, d, 0.05)
		})
	}
}
