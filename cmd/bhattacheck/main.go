package main

import (
	"bhattacharyya-go/internal/config"
	"bhattacharyya-go/internal/presenter"
	"bhattacharyya-go/pkg/bhattacharyya"
	"bhattacharyya-go/pkg/samplegen"

	"log"
	"os"

	"gonum.org/v1/gonum/stat/distuv"
)

func main() {
	cfg := config.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v\n", err)
	}
	log.Println("Starting Bhattacharyya reference check...")
	log.Println("Configuration of the run:")
	log.Println(cfg.ToString())
	log.Println("===END===")

	x1, x2, err := generateClasses(cfg)
	if err != nil {
		log.Fatalf("Error generating samples: %v\n", err)
	}

	reference := bhattacharyya.GaussianDistance(
		distuv.Normal{Mu: cfg.Mu1, Sigma: cfg.Sigma1},
		distuv.Normal{Mu: cfg.Mu2, Sigma: cfg.Sigma2},
	)

	opts, err := estimatorOptions(cfg)
	if err != nil {
		log.Fatalf("Invalid estimator settings: %v\n", err)
	}

	results, err := runMethods(x1, x2, cfg.NoiselessBins, reference, opts)
	if err != nil {
		log.Fatalf("Error computing distances: %v\n", err)
	}

	presenter.PrintResults(os.Stdout, reference, results)

	if cfg.Out != "" {
		if err := presenter.SaveResultsCSV(cfg.Out, reference, results); err != nil {
			log.Fatalf("Error saving %s: %v\n", cfg.Out, err)
		}
		log.Printf("Results saved to %s\n", cfg.Out)
	}
}

func generateClasses(cfg *config.Config) (x1, x2 []float64, err error) {
	newGen := func(mu, sigma float64, seed uint64) (samplegen.Generator, error) {
		if cfg.BoxMuller {
			return samplegen.NewBoxMuller(mu, sigma, mu-8*sigma, mu+8*sigma, seed)
		}
		return samplegen.NewNormal(mu, sigma, seed)
	}

	g1, err := newGen(cfg.Mu1, cfg.Sigma1, cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	g2, err := newGen(cfg.Mu2, cfg.Sigma2, cfg.Seed+1)
	if err != nil {
		return nil, nil, err
	}
	return g1.RandN(cfg.N1), g2.RandN(cfg.N2), nil
}

func estimatorOptions(cfg *config.Config) ([]bhattacharyya.Option, error) {
	rule, err := bhattacharyya.ParseBinRule(cfg.BinRule)
	if err != nil {
		return nil, err
	}
	opts := []bhattacharyya.Option{
		bhattacharyya.WithBins(cfg.Bins),
		bhattacharyya.WithSteps(cfg.Steps),
		bhattacharyya.WithBandwidthFactor(cfg.CovFactor),
		bhattacharyya.WithBinRule(rule),
	}
	if cfg.RawScale {
		opts = append(opts, bhattacharyya.WithRawScale())
	}
	return opts, nil
}

// runMethods scores the samples with every estimator. Noiseless only makes
// sense for discrete data, so it runs on the samples quantized into
// noiselessBins bins.
func runMethods(x1, x2 []float64, noiselessBins int, reference float64, opts []bhattacharyya.Option) ([]presenter.Result, error) {
	var results []presenter.Result
	for _, m := range []bhattacharyya.Method{bhattacharyya.Continuous, bhattacharyya.Histogram, bhattacharyya.AutoHistogram} {
		d, err := bhattacharyya.Distance(x1, x2, m, opts...)
		if err != nil {
			return nil, err
		}
		results = append(results, presenter.Result{Method: m.String(), Distance: d, Error: d - reference})
	}

	q1, q2, err := samplegen.Quantize(x1, x2, noiselessBins)
	if err != nil {
		return nil, err
	}
	d, err := bhattacharyya.Distance(q1, q2, bhattacharyya.Noiseless, opts...)
	if err != nil {
		return nil, err
	}
	results = append(results, presenter.Result{Method: bhattacharyya.Noiseless.String(), Distance: d, Error: d - reference})

	return results, nil
}
