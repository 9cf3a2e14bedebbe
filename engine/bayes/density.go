// Package bayes computes pointwise densities and definite-interval
// probability masses for the supported distribution families, preferring an
// analytical rule per family and degrading to composite Simpson integration
// for anything without one. It backs a two-class Bayesian classifier:
// prior-weighted densities, decision boundaries, and the misclassification
// mass on either side of them.
package bayes

import (
	"math"

	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/engine/generate"
)

// Density evaluates the probability density (or mass, for binomial) of the
// parameters at x. Always >= 0. An unknown family is an explicit
// core.ErrUnsupportedDistribution: density queries have no numeric fallback.
func Density(params dist.Params, x float64) (float64, error) {
	switch params.Kind {
	case dist.KindBinomial:
		m := int(math.Round(x))
		if m < 0 || m > params.N {
			return 0, nil
		}
		q := 1 - params.P
		return generate.BinomialCoefficient(params.N, m) *
			math.Pow(params.P, float64(m)) * math.Pow(q, float64(params.N-m)), nil
	case dist.KindUniform:
		if x < params.A || x > params.B {
			return 0, nil
		}
		return 1 / (params.B - params.A), nil
	case dist.KindNormal:
		d := (x - params.M) / params.Sigma
		return math.Exp(-d*d/2) / (params.Sigma * math.Sqrt(2*math.Pi)), nil
	default:
		return 0, core.NewUnsupportedError(string(params.Kind))
	}
}

// Bounds reports the practical analysis window of a distribution:
// m +/- 3 sigma for normal, the support for uniform, [0, n] for binomial.
// Callers use it to pick plotting and integration ranges; integration itself
// never consults it.
func Bounds(params dist.Params) (lo, hi float64, err error) {
	switch params.Kind {
	case dist.KindBinomial:
		return 0, float64(params.N), nil
	case dist.KindUniform:
		return params.A, params.B, nil
	case dist.KindNormal:
		return params.M - 3*params.Sigma, params.M + 3*params.Sigma, nil
	default:
		return 0, 0, core.NewUnsupportedError(string(params.Kind))
	}
}
