package generate

import (
	"distlab/domain/dist"
	"distlab/ports"
)

const (
	// irwinHallDraws uniform(0,1) draws summed and recentered approximate a
	// standard normal variate: the sum of 12 uniforms has mean 6, variance 1.
	irwinHallDraws = 12

	// The standard variate lives in [-6, 6]; the variation series is a
	// fixed 13-bucket partition of that pre-scaling range.
	normalBuckets   = 13
	standardRangeLo = -6.0
	standardRangeHi = 6.0
)

func generateNormal(src ports.RandomSource, params dist.Params, sampleSize int) *dist.GenerationResult {
	m, sigma := params.M, params.Sigma
	intervals := BuildPartition(normalBuckets, standardRangeLo, standardRangeHi)

	values := make([]dist.GeneratedValue, 0, sampleSize)
	freq := make(map[int]int)
	for i := 0; i < sampleSize; i++ {
		draws := make([]float64, irwinHallDraws)
		sum := 0.0
		for j := range draws {
			draws[j] = src.Float64()
			sum += draws[j]
		}
		standard := sum - 6
		x := standard*sigma + m

		// Bucket on the pre-scale standard value, independent of m and sigma
		idx := Assign(intervals, standard)
		intervals[idx].Frequency++
		freq[idx]++
		values = append(values, dist.GeneratedValue{
			Value: x,
			Draws: draws,
			Normal: &dist.NormalDetail{
				M:             m,
				Sigma:         sigma,
				StandardValue: standard,
			},
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
			NumberOfIntervals: normalBuckets,
			IntervalWidth:     (standardRangeHi - standardRangeLo) / normalBuckets,
		},
	}
}
