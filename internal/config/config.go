package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config describes one reference check: two Gaussian classes and the
// estimator settings applied to them.
type Config struct {
	Mu1, Sigma1   float64
	Mu2, Sigma2   float64
	N1, N2        int
	Seed          uint64
	Bins          int
	Steps         int
	CovFactor     float64
	BinRule       string
	NoiselessBins int
	BoxMuller     bool
	RawScale      bool
	Out           string
}

func Parse() *Config {
	return ParseArgs(flag.CommandLine, nil)
}

// ParseArgs defines the flags on fs and parses args. A nil args parses the
// process arguments.
func ParseArgs(fs *flag.FlagSet, args []string) *Config {
	cfg := &Config{}

	// define flags
	fs.Float64Var(&cfg.Mu1, "mu1", 2.0, "mean of class 1")
	fs.Float64Var(&cfg.Sigma1, "sigma1", 0.5, "standard deviation of class 1")
	fs.IntVar(&cfg.N1, "n1", 5000, "number of samples in class 1")
	fs.Float64Var(&cfg.Mu2, "mu2", 3.1, "mean of class 2")
	fs.Float64Var(&cfg.Sigma2, "sigma2", 1.5, "standard deviation of class 2")
	fs.IntVar(&cfg.N2, "n2", 10000, "number of samples in class 2")
	fs.Uint64Var(&cfg.Seed, "seed", 1, "random seed")
	fs.IntVar(&cfg.Bins, "bins", 10, "bin count for the hist method")
	fs.IntVar(&cfg.Steps, "steps", 200, "evaluation points for the continuous method")
	fs.Float64Var(&cfg.CovFactor, "cov-factor", 0.1, "KDE bandwidth as a fraction of the sample standard deviation")
	fs.StringVar(&cfg.BinRule, "bin-rule", "doane", "bin-width rule for the autohist method (doane, fd, scott, sturges, sqrt)")
	fs.IntVar(&cfg.NoiselessBins, "noiseless-bins", 20, "bins used to discretize samples for the noiseless method")
	fs.BoolVar(&cfg.BoxMuller, "box-muller", false, "generate samples with the clipped Box-Muller generator")
	fs.BoolVar(&cfg.RawScale, "raw-scale", false, "do not express bin and step widths in units of the combined range")
	fs.StringVar(&cfg.Out, "out", "", "write results to this CSV file")

	if args == nil {
		args = os.Args[1:]
	}
	fs.Parse(args)

	return cfg
}

// Validate checks the sampling parameters. Estimator settings are checked
// by the estimators themselves.
func (c *Config) Validate() error {
	var errs []error
	if c.Sigma1 <= 0 || c.Sigma2 <= 0 {
		errs = append(errs, fmt.Errorf("standard deviations must be positive, got %v and %v", c.Sigma1, c.Sigma2))
	}
	if c.N1 < 2 || c.N2 < 2 {
		errs = append(errs, fmt.Errorf("each class needs at least 2 samples, got %d and %d", c.N1, c.N2))
	}
	if c.NoiselessBins < 1 {
		errs = append(errs, fmt.Errorf("noiseless-bins must be positive, got %d", c.NoiselessBins))
	}
	return errors.Join(errs...)
}

func (c *Config) ToString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "class 1: N(%g, %g), n=%d\n", c.Mu1, c.Sigma1, c.N1)
	fmt.Fprintf(&sb, "class 2: N(%g, %g), n=%d\n", c.Mu2, c.Sigma2, c.N2)
	fmt.Fprintf(&sb, "seed=%d box-muller=%t\n", c.Seed, c.BoxMuller)
	fmt.Fprintf(&sb, "bins=%d steps=%d cov-factor=%g bin-rule=%s noiseless-bins=%d raw-scale=%t",
		c.Bins, c.Steps, c.CovFactor, c.BinRule, c.NoiselessBins, c.RawScale)
	return sb.String()
}
