package bayes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distlab/domain/core"
	"distlab/domain/dist"
)

func TestIntegrateNormalFullRange(t *testing.T) {
	params, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	mass, err := Integrate(params, -6, 6, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mass, 1e-3)
}

func TestIntegrateNormalHalfRange(t *testing.T) {
	params, err := dist.NewNormal(2, 0.5)
	require.NoError(t, err)

	mass, err := Integrate(params, 2, 100, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mass, 1e-3)

	weighted, err := Integrate(params, 2, 100, 0.4)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, weighted, 1e-3)
}

func TestIntegrateUniform(t *testing.T) {
	params, err := dist.NewUniform(0, 1)
	require.NoError(t, err)

	t.Run("full support is exactly the prior", func(t *testing.T) {
		mass, err := Integrate(params, 0, 1, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, mass)
	})

	t.Run("partial overlap", func(t *testing.T) {
		mass, err := Integrate(params, 0.25, 0.75, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, mass, 1e-12)
	})

	t.Run("query wider than support", func(t *testing.T) {
		mass, err := Integrate(params, -100, 100, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, mass, 1e-12)
	})

	t.Run("disjoint query", func(t *testing.T) {
		mass, err := Integrate(params, 2, 3, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, mass)
	})
}

func TestIntegrateBinomial(t *testing.T) {
	params, err := dist.NewBinomial(10, 0.5)
	require.NoError(t, err)

	t.Run("full range", func(t *testing.T) {
		mass, err := Integrate(params, 0, 10, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, mass, 1e-9)
	})

	t.Run("bounds clamp to [0,n]", func(t *testing.T) {
		mass, err := Integrate(params, -5, 25, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, mass, 1e-9)
	})

	t.Run("single outcome", func(t *testing.T) {
		mass, err := Integrate(params, 5, 5, 1.0)
		require.NoError(t, err)
		// C(10,5)/2^10
		assert.InDelta(t, 252.0/1024.0, mass, 1e-12)
	})

	t.Run("fractional bounds round inward", func(t *testing.T) {
		got, err := Integrate(params, 4.2, 6.8, 1.0)
		require.NoError(t, err)
		want, err := Integrate(params, 5, 6, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	})
}

func TestIntegrateValidation(t *testing.T) {
	params, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	_, err = Integrate(params, 3, 1, 1.0)
	assert.ErrorIs(t, err, core.ErrInvalidBounds)

	for _, prior := range []float64{-0.1, 1.1} {
		_, err := Integrate(params, 0, 1, prior)
		assert.ErrorIs(t, err, core.ErrInvalidPrior)
	}
}

func TestSimpsonMatchesAnalytic(t *testing.T) {
	normal, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	// The generic fallback should agree with the closed form on a smooth
	// integrand
	numeric, err := Simpson(normal, -1, 1, 1.0)
	require.NoError(t, err)
	analytic, err := Integrate(normal, -1, 1, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, analytic, numeric, 1e-3)

	uniform, err := dist.NewUniform(0, 2)
	require.NoError(t, err)
	numeric, err = Simpson(uniform, 0, 2, 0.6)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, numeric, 1e-9)
}

func TestDensity(t *testing.T) {
	t.Run("binomial pmf and support", func(t *testing.T) {
		params, err := dist.NewBinomial(10, 0.5)
		require.NoError(t, err)

		d, err := Density(params, 5)
		require.NoError(t, err)
		assert.InDelta(t, 252.0/1024.0, d, 1e-12)

		// Real arguments round to the nearest outcome
		d, err = Density(params, 5.4)
		require.NoError(t, err)
		assert.InDelta(t, 252.0/1024.0, d, 1e-12)

		for _, x := range []float64{-1, 11} {
			d, err := Density(params, x)
			require.NoError(t, err)
			assert.Equal(t, 0.0, d)
		}
	})

	t.Run("uniform", func(t *testing.T) {
		params, err := dist.NewUniform(2, 6)
		require.NoError(t, err)

		d, err := Density(params, 4)
		require.NoError(t, err)
		assert.Equal(t, 0.25, d)

		d, err = Density(params, 6.01)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
	})

	t.Run("normal peak", func(t *testing.T) {
		params, err := dist.NewNormal(0, 1)
		require.NoError(t, err)

		d, err := Density(params, 0)
		require.NoError(t, err)
		assert.InDelta(t, 0.3989422804, d, 1e-9)
	})

	t.Run("unsupported has no fallback", func(t *testing.T) {
		_, err := Density(dist.Params{Kind: dist.Kind("gamma")}, 1)
		assert.ErrorIs(t, err, core.ErrUnsupportedDistribution)
	})
}

func TestBounds(t *testing.T) {
	normal, err := dist.NewNormal(10, 2)
	require.NoError(t, err)
	lo, hi, err := Bounds(normal)
	require.NoError(t, err)
	assert.Equal(t, 4.0, lo)
	assert.Equal(t, 16.0, hi)

	uniform, err := dist.NewUniform(-3, 3)
	require.NoError(t, err)
	lo, hi, err = Bounds(uniform)
	require.NoError(t, err)
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, 3.0, hi)

	binomial, err := dist.NewBinomial(15, 0.2)
	require.NoError(t, err)
	lo, hi, err = Bounds(binomial)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 15.0, hi)
}
