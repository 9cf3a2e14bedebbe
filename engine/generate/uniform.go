package generate

import (
	"distlab/domain/dist"
	"distlab/ports"
)

// uniformBuckets is the fixed variation-series size for uniform samples.
// A sample-size-derived count was considered and rejected; the partition
// is a presentation artifact, not an estimator input.
const uniformBuckets = 10

func generateUniform(src ports.RandomSource, params dist.Params, sampleSize int) *dist.GenerationResult {
	a, b := params.A, params.B
	intervals := BuildPartition(uniformBuckets, a, b)

	values := make([]dist.GeneratedValue, 0, sampleSize)
	freq := make(map[int]int)
	for i := 0; i < sampleSize; i++ {
		u := src.Float64()
		// Closed-form inverse CDF
		x := a + u*(b-a)
		idx := Assign(intervals, x)
		intervals[idx].Frequency++
		freq[idx]++
		values = append(values, dist.GeneratedValue{
			Value:   x,
			Draws:   []float64{u},
			Uniform: &dist.UniformDetail{A: a, B: b},
		})
	}

	return &dist.GenerationResult{
		Params:      params,
		SampleSize:  sampleSize,
		Values:      values,
		Frequencies: freq,
		Intervals: &dist.IntervalData{
			Intervals:         intervals,
			Frequencies:       freq,
			NumberOfIntervals: uniformBuckets,
			IntervalWidth:     (b - a) / uniformBuckets,
		},
	}
}
