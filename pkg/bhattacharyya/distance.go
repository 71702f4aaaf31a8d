package bhattacharyya

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Distance returns the Bhattacharyya distance between samples x1 and x2
// using estimator m. The result is +Inf when the estimated distributions do
// not overlap at all.
func Distance(x1, x2 []float64, m Method, opts ...Option) (float64, error) {
	bc, err := Coefficient(x1, x2, m, opts...)
	if err != nil {
		return 0, err
	}
	return FromCoefficient(bc), nil
}

// DistanceByName is Distance with the method given by its tag: "continuous",
// "noiseless", "hist" or "autohist". An empty tag selects "continuous".
func DistanceByName(x1, x2 []float64, method string, opts ...Option) (float64, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return 0, err
	}
	return Distance(x1, x2, m, opts...)
}

// Coefficient returns the Bhattacharyya coefficient of x1 and x2 estimated
// with m. Unless WithoutClamp is given, values above 1 caused by estimation
// error are clamped to 1.
func Coefficient(x1, x2 []float64, m Method, opts ...Option) (float64, error) {
	if m < Continuous || m > AutoHistogram {
		return 0, &MethodError{Name: m.String()}
	}
	o, err := newOptions(opts)
	if err != nil {
		return 0, err
	}
	if err := validateSample(x1, 1); err != nil {
		return 0, err
	}
	if err := validateSample(x2, 2); err != nil {
		return 0, err
	}

	lo, hi := combinedRange(x1, x2)
	if math.IsInf(hi-lo, 0) {
		return 0, &InputError{Reason: "combined range overflows float64"}
	}

	var bc float64
	switch m {
	case Noiseless:
		bc, err = noiselessCoefficient(x1, x2, lo, hi, o)
	case Histogram:
		bc = fixedHistogramCoefficient(x1, x2, lo, hi, o)
	case AutoHistogram:
		bc = autoHistogramCoefficient(x1, x2, lo, hi, o)
	case Continuous:
		bc, err = continuousCoefficient(x1, x2, lo, hi, o)
	default:
		return 0, &MethodError{Name: m.String()}
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", m, err)
	}

	if o.clamp && bc > 1 {
		bc = 1
	}
	return bc, nil
}

// FromCoefficient converts a Bhattacharyya coefficient to a distance:
// +Inf for 0, -ln(bc) otherwise. Coefficients above 1 give negative
// distances; no clamping happens here.
func FromCoefficient(bc float64) float64 {
	if bc == 0 {
		return math.Inf(1)
	}
	// +0, not -0, for bc == 1.
	return 0 - math.Log(bc)
}

func validateSample(x []float64, sample int) error {
	if len(x) == 0 {
		return &InputError{Sample: sample, Reason: "empty sample"}
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InputError{Sample: sample, Reason: fmt.Sprintf("non-finite value %v at index %d", v, i)}
		}
	}
	return nil
}

// combinedRange returns the bounds of the union of x1 and x2. Both
// estimated distributions are aligned on it.
func combinedRange(x1, x2 []float64) (lo, hi float64) {
	lo = math.Min(floats.Min(x1), floats.Min(x2))
	hi = math.Max(floats.Max(x1), floats.Max(x2))
	return lo, hi
}
