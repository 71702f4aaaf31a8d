// Package ranking orders the features of a two-class data set by how well
// each one, taken on its own, separates the classes.
//
// Every feature is scored independently with the Bhattacharyya distance
// between its values in the two classes; no joint distribution is
// estimated.
package ranking

import (
	"bhattacharyya-go/pkg/bhattacharyya"

	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// ErrFeatureMismatch is returned when the two class matrices, or the
// feature names, disagree on the number of features.
var ErrFeatureMismatch = errors.New("feature count mismatch")

// Score is the separability of one feature.
type Score struct {
	Feature  int     // column index in the class matrices
	Name     string  // feature name, "x<Feature>" when none were given
	Distance float64 // Bhattacharyya distance, +Inf for fully separated classes
}

type options struct {
	method   bhattacharyya.Method
	names    []string
	workers  int
	logger   *slog.Logger
	distOpts []bhattacharyya.Option
}

// Option configures Rank.
type Option func(*options)

// WithMethod selects the estimator. Defaults to bhattacharyya.Continuous.
func WithMethod(m bhattacharyya.Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// WithNames labels the features. len(names) must equal the column count.
func WithNames(names ...string) Option {
	return func(o *options) {
		o.names = names
	}
}

// WithWorkers bounds the number of features scored concurrently.
// Defaults to runtime.NumCPU(); values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDistanceOptions forwards estimator options to every distance call.
func WithDistanceOptions(opts ...bhattacharyya.Option) Option {
	return func(o *options) {
		o.distOpts = append(o.distOpts, opts...)
	}
}

// Rank scores every column of class1 against the same column of class2
// and returns the scores from most to least separating. Rows are
// observations; the classes may have different row counts. Ties keep
// column order.
func Rank(ctx context.Context, class1, class2 mat.Matrix, opts ...Option) ([]Score, error) {
	o := options{
		method:  bhattacharyya.Continuous,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	o.workers = max(o.workers, 1)

	_, nf := class1.Dims()
	if _, nf2 := class2.Dims(); nf != nf2 {
		return nil, fmt.Errorf("%w: class 1 has %d features, class 2 has %d", ErrFeatureMismatch, nf, nf2)
	}
	if o.names != nil && len(o.names) != nf {
		return nil, fmt.Errorf("%w: %d names for %d features", ErrFeatureMismatch, len(o.names), nf)
	}

	start := time.Now()
	scores := make([]Score, nf)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for j := range nf {
		name := fmt.Sprintf("x%d", j)
		if o.names != nil {
			name = o.names[j]
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x1 := mat.Col(nil, j, class1)
			x2 := mat.Col(nil, j, class2)
			d, err := bhattacharyya.Distance(x1, x2, o.method, o.distOpts...)
			if err != nil {
				return fmt.Errorf("feature %d (%s): %w", j, name, err)
			}
			scores[j] = Score{Feature: j, Name: name, Distance: d}
			o.logger.Debug("feature scored", "feature", j, "name", name, "distance", d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(scores, func(a, b Score) int {
		return cmp.Compare(b.Distance, a.Distance)
	})

	o.logger.Info("features ranked",
		"features", nf,
		"method", o.method.String(),
		"duration", time.Since(start))
	return scores, nil
}
