package bhattacharyya

import (
	"fmt"
	"strings"
)

// Method selects the estimator used to compute the Bhattacharyya coefficient.
// The zero value is Continuous.
type Method int

const (
	Continuous Method = iota
	Noiseless
	Histogram
	AutoHistogram
)

// Methods lists every supported estimator in declaration order.
var Methods = []Method{Continuous, Noiseless, Histogram, AutoHistogram}

func (m Method) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Noiseless:
		return "noiseless"
	case Histogram:
		return "hist"
	case AutoHistogram:
		return "autohist"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParseMethod maps a method tag to a Method. An empty tag selects Continuous.
// "histogram-fixed" and "histogram-auto" are accepted as aliases of "hist"
// and "autohist".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "continuous":
		return Continuous, nil
	case "noiseless":
		return Noiseless, nil
	case "hist", "histogram-fixed":
		return Histogram, nil
	case "autohist", "histogram-auto":
		return AutoHistogram, nil
	default:
		return 0, &MethodError{Name: name}
	}
}
