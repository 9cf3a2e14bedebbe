package generate

import "distlab/domain/dist"

// BuildPartition splits [lo, hi] into k contiguous equal-width intervals
// indexed 0..k-1.
func BuildPartition(k int, lo, hi float64) []dist.Interval {
	width := (hi - lo) / float64(k)
	intervals := make([]dist.Interval, k)
	for i := 0; i < k; i++ {
		intervals[i] = dist.Interval{
			Index: i,
			Start: lo + float64(i)*width,
			End:   lo + float64(i+1)*width,
		}
	}
	return intervals
}

// Assign maps a value to the first interval containing it, scanning
// start-to-end with inclusive bounds. A value past the final edge (floating
// error at the boundary) lands in the last interval, so assignment is total.
// Linear scan is fine at the fixed bucket counts in use (<= 13).
func Assign(intervals []dist.Interval, v float64) int {
	for _, iv := range intervals {
		if iv.Contains(v) {
			return iv.Index
		}
	}
	return len(intervals) - 1
}
