package bayes

import (
	"fmt"
	"math"

	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/engine/generate"
)

// simpsonSteps is the fixed even subdivision count of the numeric fallback
const simpsonSteps = 100

// Integrate computes the prior-weighted probability mass of the
// distribution over [lower, upper]. The result lies in [0, prior].
// Each family with a closed form uses it in preference to numeric
// integration; anything else degrades to composite Simpson rather than
// failing outright.
func Integrate(params dist.Params, lower, upper, prior float64) (float64, error) {
	if lower > upper {
		return 0, fmt.Errorf("%w: lower %g > upper %g", core.ErrInvalidBounds, lower, upper)
	}
	if prior < 0 || prior > 1 {
		return 0, fmt.Errorf("%w: got %g", core.ErrInvalidPrior, prior)
	}

	switch params.Kind {
	case dist.KindNormal:
		cdfLo := NormalCDF(lower, params.M, params.Sigma)
		cdfHi := NormalCDF(upper, params.M, params.Sigma)
		return prior * (cdfHi - cdfLo), nil
	case dist.KindUniform:
		lo := math.Max(lower, params.A)
		hi := math.Min(upper, params.B)
		if hi <= lo {
			return 0, nil
		}
		return prior / (params.B - params.A) * (hi - lo), nil
	case dist.KindBinomial:
		first := int(math.Ceil(lower))
		last := int(math.Floor(upper))
		if first < 0 {
			first = 0
		}
		if last > params.N {
			last = params.N
		}
		sum := 0.0
		q := 1 - params.P
		for m := first; m <= last; m++ {
			sum += generate.BinomialCoefficient(params.N, m) *
				math.Pow(params.P, float64(m)) * math.Pow(q, float64(params.N-m))
		}
		return prior * sum, nil
	default:
		return Simpson(params, lower, upper, prior)
	}
}

// Simpson approximates the prior-weighted mass over [lower, upper] with the
// composite Simpson rule at a fixed even step count, sampling the density at
// lower + i*h. It is the generic path for families without a hand-derived
// closed form.
func Simpson(params dist.Params, lower, upper, prior float64) (float64, error) {
	h := (upper - lower) / simpsonSteps
	sum := 0.0
	for i := 0; i <= simpsonSteps; i++ {
		d, err := Density(params, lower+float64(i)*h)
		if err != nil {
			return 0, err
		}
		switch {
		case i == 0 || i == simpsonSteps:
			sum += d
		case i%2 == 1:
			sum += 4 * d
		default:
			sum += 2 * d
		}
	}
	return prior * sum * h / 3, nil
}
