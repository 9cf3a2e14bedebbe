package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distlab/domain/dist"
	"distlab/internal/rng"
)

func TestGenerateNormal(t *testing.T) {
	params, err := dist.NewNormal(5, 2)
	require.NoError(t, err)

	result, err := Generate(rng.NewSeeded(3), params, 10000)
	require.NoError(t, err)

	assert.Len(t, result.Values, 10000)
	assert.Empty(t, result.Cumulative)

	require.NotNil(t, result.Intervals)
	assert.Equal(t, 13, result.Intervals.NumberOfIntervals)
	assert.InDelta(t, 12.0/13, result.Intervals.IntervalWidth, 1e-12)
	assert.Equal(t, 10000, result.Intervals.TotalFrequency())

	// Buckets cover the pre-scaling standard range, independent of m/sigma
	ivs := result.Intervals.Intervals
	assert.Equal(t, -6.0, ivs[0].Start)
	assert.InDelta(t, 6.0, ivs[len(ivs)-1].End, 1e-12)

	for _, v := range result.Values {
		require.NotNil(t, v.Normal)
		require.Len(t, v.Draws, 12)
		assert.Equal(t, 5.0, v.Normal.M)
		assert.Equal(t, 2.0, v.Normal.Sigma)
		// value = standard*sigma + m
		assert.InDelta(t, v.Normal.StandardValue*2+5, v.Value, 1e-12)

		sum := 0.0
		for _, u := range v.Draws {
			sum += u
		}
		assert.InDelta(t, sum-6, v.Normal.StandardValue, 1e-12)
	}
}

func TestGenerateNormalConvergence(t *testing.T) {
	params, err := dist.NewNormal(5, 2)
	require.NoError(t, err)

	result, err := Generate(rng.NewSeeded(4321), params, 100000)
	require.NoError(t, err)

	mean, variance := sampleMoments(result.Outcomes())
	assert.InEpsilon(t, 5.0, mean, 0.05)
	assert.InEpsilon(t, 4.0, variance, 0.05)
}

func TestGenerateDispatch(t *testing.T) {
	t.Run("negative sample size", func(t *testing.T) {
		params, err := dist.NewNormal(0, 1)
		require.NoError(t, err)
		_, err = Generate(rng.NewSeeded(1), params, -1)
		assert.Error(t, err)
	})

	t.Run("invalid parameters rejected before drawing", func(t *testing.T) {
		_, err := Generate(rng.NewSeeded(1), dist.Params{Kind: dist.KindUniform, A: 4, B: 4}, 10)
		assert.Error(t, err)
	})

	t.Run("unknown family never falls through", func(t *testing.T) {
		_, err := Generate(rng.NewSeeded(1), dist.Params{Kind: dist.Kind("cauchy")}, 10)
		assert.Error(t, err)
	})
}
