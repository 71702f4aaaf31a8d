package bhattacharyya

import (
	"fmt"
	"math"
)

const (
	// DefaultBins is the bin count used by Histogram.
	DefaultBins = 10

	// DefaultSteps is the number of grid points Continuous evaluates.
	DefaultSteps = 200

	// DefaultBandwidthFactor scales each sample's standard deviation into the
	// KDE bandwidth. It controls smoothing width only.
	DefaultBandwidthFactor = 0.1

	// MaxAutoBins caps the bin count AutoHistogram derives from a BinRule.
	MaxAutoBins = 1 << 16
)

type options struct {
	bins            int
	binRule         BinRule
	steps           int
	bandwidthFactor float64
	clamp           bool
	rawScale        bool
}

// Option tunes an estimator. Options that do not apply to the selected
// method are ignored.
type Option func(*options)

// WithBins sets the bin count for Histogram.
//
// The result is sensitive to this value; that is a property of the
// estimator, not a defect.
func WithBins(n int) Option {
	return func(o *options) {
		o.bins = n
	}
}

// WithBinRule selects the bin-width rule for AutoHistogram.
func WithBinRule(r BinRule) Option {
	return func(o *options) {
		o.binRule = r
	}
}

// WithSteps sets the number of evenly spaced evaluation points used by
// Continuous. Narrow or sparse supports need more steps.
func WithSteps(n int) Option {
	return func(o *options) {
		o.steps = n
	}
}

// WithBandwidthFactor sets the factor applied to each sample's standard
// deviation to obtain the Gaussian kernel bandwidth for Continuous. Larger
// values over-smooth, smaller values follow sample noise.
func WithBandwidthFactor(f float64) Option {
	return func(o *options) {
		o.bandwidthFactor = f
	}
}

// WithoutClamp disables clamping of the coefficient to at most 1.
// Estimation error can then yield slightly negative distances.
func WithoutClamp() Option {
	return func(o *options) {
		o.clamp = false
	}
}

// WithRawScale evaluates the coefficient with the per-bin and per-step
// divisors taken literally in data units instead of units of the combined
// range. The result is the default coefficient divided by the width of the
// combined range, so distances grow by ln(width). Use it only to reproduce
// figures computed that way.
func WithRawScale() Option {
	return func(o *options) {
		o.rawScale = true
	}
}

func newOptions(opts []Option) (options, error) {
	o := options{
		bins:            DefaultBins,
		binRule:         Doane,
		steps:           DefaultSteps,
		bandwidthFactor: DefaultBandwidthFactor,
		clamp:           true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.bins < 1:
		return o, fmt.Errorf("%w: bins must be positive, got %d", ErrInvalidOption, o.bins)
	case o.steps < 2:
		return o, fmt.Errorf("%w: steps must be at least 2, got %d", ErrInvalidOption, o.steps)
	case !(o.bandwidthFactor > 0) || math.IsInf(o.bandwidthFactor, 0):
		return o, fmt.Errorf("%w: bandwidth factor must be positive and finite, got %v", ErrInvalidOption, o.bandwidthFactor)
	case !o.binRule.valid():
		return o, fmt.Errorf("%w: unknown bin rule %v", ErrInvalidOption, o.binRule)
	}
	return o, nil
}
