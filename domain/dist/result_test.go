package dist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binomialFixture(t *testing.T) *GenerationResult {
	t.Helper()
	params, err := NewBinomial(2, 0.5)
	require.NoError(t, err)
	cum := []float64{0.25, 0.75, 1.0}
	return &GenerationResult{
		Params:     params,
		SampleSize: 3,
		Values: []GeneratedValue{
			{Value: 0, Draws: []float64{0.1}, Binomial: &BinomialDetail{CumulativeIndex: 0}},
			{Value: 1, Draws: []float64{0.5}, Binomial: &BinomialDetail{CumulativeIndex: 1}},
			{Value: 1, Draws: []float64{0.6}, Binomial: &BinomialDetail{CumulativeIndex: 1}},
		},
		Frequencies: map[int]int{0: 1, 1: 2},
		Cumulative:  cum,
		Intervals: &IntervalData{
			Frequencies:       map[int]int{0: 1, 1: 2},
			Cumulative:        cum,
			NumberOfIntervals: 3,
			IntervalWidth:     1,
		},
	}
}

func TestResultRoundTrip(t *testing.T) {
	original := binomialFixture(t)

	data, err := original.Marshal()
	require.NoError(t, err)

	// Integer map keys travel as JSON strings
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	freq, ok := raw["frequencies"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, freq, "0")
	assert.Contains(t, freq, "1")

	decoded, err := UnmarshalResult(data)
	require.NoError(t, err)
	assert.Equal(t, original.Params, decoded.Params)
	assert.Equal(t, original.SampleSize, decoded.SampleSize)
	assert.Equal(t, original.Frequencies, decoded.Frequencies)
	assert.Equal(t, original.Cumulative, decoded.Cumulative)
	assert.Equal(t, original.Values, decoded.Values)
	require.NotNil(t, decoded.Intervals)
	assert.Equal(t, original.Intervals.NumberOfIntervals, decoded.Intervals.NumberOfIntervals)
}

func TestResultRoundTripOmitsEmptyCumulative(t *testing.T) {
	params, err := NewUniform(0, 1)
	require.NoError(t, err)
	r := &GenerationResult{
		Params:      params,
		SampleSize:  1,
		Values:      []GeneratedValue{{Value: 0.5, Draws: []float64{0.5}, Uniform: &UniformDetail{A: 0, B: 1}}},
		Frequencies: map[int]int{4: 1},
	}

	data, err := r.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "cumulative")

	decoded, err := UnmarshalResult(data)
	require.NoError(t, err)
	assert.Empty(t, decoded.Cumulative)
}

func TestResultValidate(t *testing.T) {
	t.Run("value count mismatch", func(t *testing.T) {
		r := binomialFixture(t)
		r.SampleSize = 5
		assert.Error(t, r.Validate())
	})

	t.Run("frequency total mismatch", func(t *testing.T) {
		r := binomialFixture(t)
		r.Frequencies[1] = 7
		assert.Error(t, r.Validate())
	})

	t.Run("cumulative table on non-binomial", func(t *testing.T) {
		params, err := NewUniform(0, 1)
		require.NoError(t, err)
		r := binomialFixture(t)
		r.Params = params
		assert.Error(t, r.Validate())
	})

	t.Run("valid fixture passes", func(t *testing.T) {
		assert.NoError(t, binomialFixture(t).Validate())
	})
}

func TestIntervalDerivedAttributes(t *testing.T) {
	iv := Interval{Index: 2, Start: 1, End: 3, Frequency: 5}
	assert.Equal(t, 2.0, iv.Midpoint())
	assert.Equal(t, 0.05, iv.RelativeFrequency(100))
	assert.Equal(t, 0.0, iv.RelativeFrequency(0))
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(3))
	assert.False(t, iv.Contains(3.0001))
}
