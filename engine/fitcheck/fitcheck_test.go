package fitcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/engine/generate"
)

func TestCheckPerfectUniformFit(t *testing.T) {
	params, err := dist.NewUniform(0, 1)
	require.NoError(t, err)

	// Exactly the expected count in every bucket: statistic 0, p-value 1
	intervals := generate.BuildPartition(10, 0, 1)
	freq := make(map[int]int)
	for i := range intervals {
		intervals[i].Frequency = 100
		freq[i] = 100
	}
	result := &dist.GenerationResult{
		Params:      params,
		SampleSize:  1000,
		Frequencies: freq,
		Intervals: &dist.IntervalData{
			Intervals:         intervals,
			Frequencies:       freq,
			NumberOfIntervals: 10,
			IntervalWidth:     0.1,
		},
	}

	report, err := Check(result)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, report.Statistic, 1e-12)
	assert.Equal(t, 9, report.DegreesOfFreedom)
	assert.True(t, report.Fits)
	assert.InDelta(t, 1.0, report.PValue, 1e-9)
}

func TestCheckRejectsSkewedSample(t *testing.T) {
	params, err := dist.NewUniform(0, 1)
	require.NoError(t, err)

	// Everything piled into one bucket is nothing like uniform
	intervals := generate.BuildPartition(10, 0, 1)
	intervals[0].Frequency = 1000
	freq := map[int]int{0: 1000}
	result := &dist.GenerationResult{
		Params:      params,
		SampleSize:  1000,
		Frequencies: freq,
		Intervals: &dist.IntervalData{
			Intervals:         intervals,
			Frequencies:       freq,
			NumberOfIntervals: 10,
			IntervalWidth:     0.1,
		},
	}

	report, err := Check(result)
	require.NoError(t, err)
	assert.False(t, report.Fits)
	assert.Less(t, report.PValue, 0.001)
}

func TestCheckBinomial(t *testing.T) {
	params, err := dist.NewBinomial(6, 0.5)
	require.NoError(t, err)

	// Frequencies proportional to the exact PMF: 1,6,15,20,15,6,1 out of 64
	freq := map[int]int{0: 10, 1: 60, 2: 150, 3: 200, 4: 150, 5: 60, 6: 10}
	result := &dist.GenerationResult{
		Params:      params,
		SampleSize:  640,
		Frequencies: freq,
	}

	report, err := Check(result)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, report.Statistic, 1e-9)
	assert.True(t, report.Fits)
}

func TestCheckInsufficientSample(t *testing.T) {
	params, err := dist.NewUniform(0, 1)
	require.NoError(t, err)
	_, err = Check(&dist.GenerationResult{Params: params, SampleSize: 1})
	assert.ErrorIs(t, err, core.ErrInsufficientSample)
}

func TestCheckMissingIntervalData(t *testing.T) {
	params, err := dist.NewNormal(0, 1)
	require.NoError(t, err)
	_, err = Check(&dist.GenerationResult{Params: params, SampleSize: 100})
	assert.Error(t, err)
}
