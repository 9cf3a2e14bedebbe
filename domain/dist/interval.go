package dist

import "fmt"

// Interval is one bucket of a variation series
type Interval struct {
	Index     int     `json:"index"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Frequency int     `json:"frequency"`
}

// Midpoint returns the bucket center
func (iv Interval) Midpoint() float64 {
	return (iv.Start + iv.End) / 2
}

// RelativeFrequency returns frequency normalized by sample size.
// Computed on demand, never stored.
func (iv Interval) RelativeFrequency(sampleSize int) float64 {
	if sampleSize == 0 {
		return 0
	}
	return float64(iv.Frequency) / float64(sampleSize)
}

// Contains reports whether v falls in the bucket, inclusive on both ends
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Start && v <= iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g)#%d", iv.Start, iv.End, iv.Index)
}

// IntervalData is the variation series of one sample batch: an index-ordered
// partition of the observed domain with per-bucket frequencies.
//
// INVARIANTS:
//   - Intervals are index-ordered, contiguous, non-overlapping
//   - sum of Frequencies values == sample size of the owning result
//   - Cumulative is present only when exact cumulative probabilities are
//     defined for the family (binomial); otherwise nil
type IntervalData struct {
	Intervals         []Interval  `json:"intervals,omitempty"`
	Frequencies       map[int]int `json:"frequencies"`
	Cumulative        []float64   `json:"cumulative,omitempty"`
	NumberOfIntervals int         `json:"number_of_intervals"`
	IntervalWidth     float64     `json:"interval_width"`
}

// TotalFrequency sums the per-bucket frequencies
func (d *IntervalData) TotalFrequency() int {
	total := 0
	for _, f := range d.Frequencies {
		total += f
	}
	return total
}
