package ranking

import (
	"bhattacharyya-go/pkg/bhattacharyya"
	"bhattacharyya-go/pkg/samplegen"

	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// classMatrix stacks one generated column per generator.
func classMatrix(t *testing.T, n int, gens ...samplegen.Generator) *mat.Dense {
	t.Helper()
	m := mat.NewDense(n, len(gens), nil)
	for j, g := range gens {
		m.SetCol(j, g.RandN(n))
	}
	return m
}

func normal(t *testing.T, mu, sigma float64, seed uint64) samplegen.Generator {
	t.Helper()
	g, err := samplegen.NewNormal(mu, sigma, seed)
	require.NoError(t, err)
	return g
}

func twoClasses(t *testing.T) (*mat.Dense, *mat.Dense) {
	c1 := classMatrix(t, 600,
		normal(t, 0, 1, 1), // well separated
		normal(t, 0, 1, 2), // same distribution in both classes
		normal(t, 0, 1, 3), // partly separated
	)
	c2 := classMatrix(t, 400,
		normal(t, 5, 1, 11),
		normal(t, 0, 1, 12),
		normal(t, 1, 1, 13),
	)
	return c1, c2
}

func TestRank(t *testing.T) {
	c1, c2 := twoClasses(t)

	for _, m := range []bhattacharyya.Method{bhattacharyya.Continuous, bhattacharyya.Histogram, bhattacharyya.AutoHistogram} {
		t.Run(m.String(), func(t *testing.T) {
			scores, err := Rank(context.Background(), c1, c2,
				WithMethod(m),
				WithNames("petal_width", "noise", "sepal_length"),
				WithWorkers(2),
			)
			require.NoError(t, err)
			require.Len(t, scores, 3)

			assert.Equal(t, []int{0, 2, 1}, []int{scores[0].Feature, scores[1].Feature, scores[2].Feature})
			assert.Equal(t, "petal_width", scores[0].Name)
			assert.Equal(t, "noise", scores[2].Name)
			assert.Greater(t, scores[0].Distance, scores[1].Distance)
			assert.Greater(t, scores[1].Distance, scores[2].Distance)
		})
	}
}

func TestRankMatchesDistance(t *testing.T) {
	c1, c2 := twoClasses(t)

	scores, err := Rank(context.Background(), c1, c2, WithDistanceOptions(bhattacharyya.WithSteps(100)))
	require.NoError(t, err)

	for _, s := range scores {
		want, err := bhattacharyya.Distance(mat.Col(nil, s.Feature, c1), mat.Col(nil, s.Feature, c2),
			bhattacharyya.Continuous, bhattacharyya.WithSteps(100))
		require.NoError(t, err)
		assert.Equal(t, want, s.Distance, "feature %d", s.Feature)
		assert.Equal(t, fmt.Sprintf("x%d", s.Feature), s.Name)
	}
}

func TestRankInfiniteFirst(t *testing.T) {
	c1 := mat.NewDense(3, 2, []float64{
		1, 0,
		2, 0,
		2, 1,
	})
	c2 := mat.NewDense(2, 2, []float64{
		2, 5,
		3, 5,
	})

	scores, err := Rank(context.Background(), c1, c2, WithMethod(bhattacharyya.Noiseless))
	require.NoError(t, err)
	assert.Equal(t, 1, scores[0].Feature)
	assert.True(t, math.IsInf(scores[0].Distance, 1))
	assert.Equal(t, 0, scores[1].Feature)
}

func TestRankFeatureMismatch(t *testing.T) {
	c1 := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	c2 := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	_, err := Rank(context.Background(), c1, c2)
	assert.ErrorIs(t, err, ErrFeatureMismatch)

	_, err = Rank(context.Background(), c1, c1, WithNames("only-one"))
	assert.ErrorIs(t, err, ErrFeatureMismatch)
}

func TestRankPropagatesEstimatorErrors(t *testing.T) {
	c1 := mat.NewDense(3, 2, []float64{
		1, 7,
		2, 7,
		3, 7,
	})
	c2 := mat.NewDense(3, 2, []float64{
		2, 1,
		3, 2,
		4, 3,
	})

	_, err := Rank(context.Background(), c1, c2, WithNames("ok", "constant"))
	require.ErrorIs(t, err, bhattacharyya.ErrInvalidInput)
	assert.Contains(t, err.Error(), "feature 1 (constant)")

	_, err = Rank(context.Background(), c1, c2, WithMethod(bhattacharyya.Method(7)))
	assert.ErrorIs(t, err, bhattacharyya.ErrInvalidMethod)
}

func TestRankCanceled(t *testing.T) {
	c1, c2 := twoClasses(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Rank(ctx, c1, c2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankLogs(t *testing.T) {
	c1, c2 := twoClasses(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Rank(context.Background(), c1, c2, WithLogger(logger), WithWorkers(0))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"features ranked"`)
	assert.Contains(t, out, `"method":"continuous"`)
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte(`"msg":"feature scored"`)))
}
