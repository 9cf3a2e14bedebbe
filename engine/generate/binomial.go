package generate

import (
	"distlab/domain/dist"
	"distlab/ports"
)

// BinomialCoefficient computes C(n, m) with the iterative multiplicative
// formula. The symmetry C(n,m) = C(n,n-m) bounds the number of
// multiplications by n/2.
func BinomialCoefficient(n, m int) float64 {
	if m < 0 || m > n {
		return 0
	}
	if n-m < m {
		m = n - m
	}
	c := 1.0
	for i := 0; i < m; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}

// BinomialPMF builds the exact probability mass array P(X=m) for m in 0..n,
// normalized so the array sums to exactly 1 (correcting floating-point drift).
func BinomialPMF(n int, p float64) []float64 {
	pmf := make([]float64, n+1)
	q := 1 - p
	for m := 0; m <= n; m++ {
		pmf[m] = BinomialCoefficient(n, m) * pow(p, m) * pow(q, n-m)
	}

	sum := 0.0
	for _, v := range pmf {
		sum += v
	}
	if sum > 0 {
		for m := range pmf {
			pmf[m] /= sum
		}
	}
	return pmf
}

// BinomialCumulative builds the running-sum table over a PMF, forcing the
// last entry to 1.0 exactly so inverse-CDF search is total for any u in [0,1].
func BinomialCumulative(pmf []float64) []float64 {
	cum := make([]float64, len(pmf))
	running := 0.0
	for m, v := range pmf {
		running += v
		cum[m] = running
	}
	cum[len(cum)-1] = 1.0
	return cum
}

// SearchCumulative finds the smallest index m with u <= cum[m] by
// lower-bound binary search over the nondecreasing cumulative table.
func SearchCumulative(cum []float64, u float64) int {
	lo, hi := 0, len(cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cum[mid] >= u {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// pow is an integer-exponent power. 0^0 = 1 here so degenerate p=0 and p=1
// mass arrays come out right.
func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func generateBinomial(src ports.RandomSource, params dist.Params, sampleSize int) *dist.GenerationResult {
	pmf := BinomialPMF(params.N, params.P)
	cum := BinomialCumulative(pmf)

	values := make([]dist.GeneratedValue, 0, sampleSize)
	freq := make(map[int]int)
	for i := 0; i < sampleSize; i++ {
		u := src.Float64()
		m := SearchCumulative(cum, u)
		values = append(values, dist.GeneratedValue{
			Value:    float64(m),
			Draws:    []float64{u},
			Binomial: &dist.BinomialDetail{CumulativeIndex: m},
		})
		freq[m]++
	}

	// Each integer outcome is its own bucket, so the interval list stays
	// empty; the cumulative table is carried forward for estimation and
	// visualization reuse.
	intervalFreq := make(map[int]int, len(freq))
	for k, v := range freq {
		intervalFreq[k] = v
	}
	intervals := &dist.IntervalData{
		Frequencies:       intervalFreq,
		Cumulative:        cum,
		NumberOfIntervals: params.N + 1,
		IntervalWidth:     1,
	}

	return &dist.GenerationResult{
		Params:      params,
		SampleSize:  sampleSize,
		Values:      values,
		Frequencies: freq,
		Cumulative:  cum,
		Intervals:   intervals,
	}
}
