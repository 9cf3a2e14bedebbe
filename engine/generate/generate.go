// Package generate implements sampling for the supported distribution
// families: binomial via inverse-CDF search over an exact cumulative table,
// uniform via the closed-form inverse CDF, and normal via the Irwin-Hall
// approximation. Each call owns a private draw sequence from its
// RandomSource; no state survives between calls.
package generate

import (
	"fmt"

	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/ports"
)

// Generate produces one sample batch for the given parameters.
// Fails with core.ErrInvalidParameter on out-of-range fields or a negative
// sample size; an unknown family is core.ErrUnsupportedDistribution, never
// a silent default.
func Generate(src ports.RandomSource, params dist.Params, sampleSize int) (*dist.GenerationResult, error) {
	if sampleSize < 0 {
		return nil, core.NewParameterError("sampleSize", fmt.Sprintf("must be non-negative, got %d", sampleSize))
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	switch params.Kind {
	case dist.KindBinomial:
		return generateBinomial(src, params, sampleSize), nil
	case dist.KindUniform:
		return generateUniform(src, params, sampleSize), nil
	case dist.KindNormal:
		return generateNormal(src, params, sampleSize), nil
	default:
		return nil, core.NewUnsupportedError(string(params.Kind))
	}
}
