// Package fitcheck validates a generation batch against its own family: a
// chi-square goodness-of-fit of the observed interval frequencies versus the
// theoretical bucket probabilities.
package fitcheck

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/engine/generate"
)

// minExpected is the floor below which a bucket is too sparse to contribute
// a stable chi-square term and is skipped.
const minExpected = 1e-9

// Report is the outcome of one goodness-of-fit check
type Report struct {
	Statistic        float64 `json:"statistic"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
	PValue           float64 `json:"p_value"`
	Fits             bool    `json:"fits"`
	Description      string  `json:"description"`
}

// Check runs the chi-square test of a result's frequencies against the
// theoretical probabilities of its parameters.
func Check(result *dist.GenerationResult) (Report, error) {
	if result.SampleSize < 2 {
		return Report{}, core.NewInsufficientSampleError(result.SampleSize, 2)
	}
	expected, err := expectedProbabilities(result)
	if err != nil {
		return Report{}, err
	}

	n := float64(result.SampleSize)
	statistic := 0.0
	used := 0
	for idx, p := range expected {
		exp := n * p
		if exp < minExpected {
			continue
		}
		obs := float64(result.Frequencies[idx])
		d := obs - exp
		statistic += d * d / exp
		used++
	}
	if used < 2 {
		return Report{}, fmt.Errorf("chi-square needs at least 2 populated buckets, got %d", used)
	}

	dof := used - 1
	chi := distuv.ChiSquared{K: float64(dof)}
	pValue := 1 - chi.CDF(statistic)
	fits := pValue > 0.05

	verdict := "consistent with"
	if !fits {
		verdict = "inconsistent with"
	}
	return Report{
		Statistic:        statistic,
		DegreesOfFreedom: dof,
		PValue:           pValue,
		Fits:             fits,
		Description: fmt.Sprintf("sample of %d is %s %s (chi2=%.4f, dof=%d, p=%.4f)",
			result.SampleSize, verdict, result.Params.Label(), statistic, dof, pValue),
	}, nil
}

// expectedProbabilities returns the theoretical probability of each
// frequency bucket, keyed the way the generator keyed its frequency table.
func expectedProbabilities(result *dist.GenerationResult) (map[int]float64, error) {
	params := result.Params
	switch params.Kind {
	case dist.KindBinomial:
		pmf := generate.BinomialPMF(params.N, params.P)
		out := make(map[int]float64, len(pmf))
		for m, p := range pmf {
			out[m] = p
		}
		return out, nil
	case dist.KindUniform:
		if result.Intervals == nil {
			return nil, fmt.Errorf("uniform result is missing interval data")
		}
		k := result.Intervals.NumberOfIntervals
		out := make(map[int]float64, k)
		for i := 0; i < k; i++ {
			out[i] = 1 / float64(k)
		}
		return out, nil
	case dist.KindNormal:
		if result.Intervals == nil {
			return nil, fmt.Errorf("normal result is missing interval data")
		}
		// Buckets partition the pre-scale standard range, so the standard
		// normal gives their probabilities regardless of m and sigma.
		std := distuv.Normal{Mu: 0, Sigma: 1}
		out := make(map[int]float64, len(result.Intervals.Intervals))
		for _, iv := range result.Intervals.Intervals {
			out[iv.Index] = std.CDF(iv.End) - std.CDF(iv.Start)
		}
		return out, nil
	default:
		return nil, core.NewUnsupportedError(string(params.Kind))
	}
}
