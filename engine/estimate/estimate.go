// Package estimate derives sample moments from a generation batch and pairs
// them with the exact theoretical moments of the originating parameters.
package estimate

import (
	"math"

	"github.com/montanaflynn/stats"

	"distlab/domain/core"
	"distlab/domain/dist"
)

// minSampleSize is the floor for the Bessel-corrected variance term;
// below it the statistic is undefined, not zero.
const minSampleSize = 2

// Estimate computes the sample and theoretical moments for one result.
// Fails with core.ErrInsufficientSample when the batch is too small for the
// corrected variance.
func Estimate(result *dist.GenerationResult) (dist.Estimate, error) {
	if result.SampleSize < minSampleSize {
		return dist.Estimate{}, core.NewInsufficientSampleError(result.SampleSize, minSampleSize)
	}

	outcomes := result.Outcomes()
	mean, err := stats.Mean(outcomes)
	if err != nil {
		return dist.Estimate{}, err
	}
	variance, err := stats.PopulationVariance(outcomes)
	if err != nil {
		return dist.Estimate{}, err
	}
	corrected, err := stats.SampleVariance(outcomes)
	if err != nil {
		return dist.Estimate{}, err
	}

	theoMean, theoVariance, err := TheoreticalMoments(result.Params)
	if err != nil {
		return dist.Estimate{}, err
	}

	return dist.Estimate{
		Label:                   result.Params.Label(),
		SampleSize:              result.SampleSize,
		SampleMean:              mean,
		TheoreticalMean:         theoMean,
		SampleVariance:          variance,
		CorrectedSampleVariance: corrected,
		TheoreticalVariance:     theoVariance,
		SampleSigma:             math.Sqrt(variance),
		TheoreticalSigma:        math.Sqrt(theoVariance),
	}, nil
}

// TheoreticalMoments returns the closed-form mean and variance of a
// parameter set. Exact, no estimation error.
func TheoreticalMoments(params dist.Params) (mean, variance float64, err error) {
	switch params.Kind {
	case dist.KindBinomial:
		n, p := float64(params.N), params.P
		return n * p, n * p * (1 - p), nil
	case dist.KindUniform:
		a, b := params.A, params.B
		return (a + b) / 2, (b - a) * (b - a) / 12, nil
	case dist.KindNormal:
		return params.M, params.Sigma * params.Sigma, nil
	default:
		return 0, 0, core.NewUnsupportedError(string(params.Kind))
	}
}
