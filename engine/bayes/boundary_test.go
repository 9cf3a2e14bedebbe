package bayes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distlab/domain/core"
	"distlab/domain/dist"
)

func normalClass(t *testing.T, name string, m, sigma, prior float64) Class {
	t.Helper()
	params, err := dist.NewNormal(m, sigma)
	require.NoError(t, err)
	return Class{Name: name, Params: params, Prior: prior}
}

func TestBoundariesSymmetricNormals(t *testing.T) {
	a := normalClass(t, "left", -1, 1, 0.5)
	b := normalClass(t, "right", 1, 1, 0.5)

	boundaries, err := Boundaries(a, b)
	require.NoError(t, err)

	// Equal priors and sigmas put the single boundary at the midpoint
	require.Len(t, boundaries, 1)
	assert.InDelta(t, 0.0, boundaries[0], 1e-6)
}

func TestBoundariesPriorShift(t *testing.T) {
	a := normalClass(t, "left", -1, 1, 0.8)
	b := normalClass(t, "right", 1, 1, 0.2)

	boundaries, err := Boundaries(a, b)
	require.NoError(t, err)
	require.Len(t, boundaries, 1)

	// The heavier prior pushes the boundary toward the lighter class.
	// Closed form for equal sigmas: x = ln(pB/pA) * sigma^2 / (mB - mA)
	want := math.Log(0.2/0.8) / 2
	assert.Greater(t, boundaries[0], 0.0)
	assert.InDelta(t, -want, boundaries[0], 1e-4)
}

func TestMisclassificationErrorSymmetricNormals(t *testing.T) {
	a := normalClass(t, "left", -1, 1, 0.5)
	b := normalClass(t, "right", 1, 1, 0.5)

	boundaries, details, total, err := MisclassificationError(a, b)
	require.NoError(t, err)
	require.Len(t, boundaries, 1)
	require.Len(t, details, 2)

	// Left of the boundary the right class loses, and vice versa
	assert.Equal(t, "right", details[0].LosingClass)
	assert.Equal(t, "left", details[1].LosingClass)
	assert.NotEmpty(t, details[0].Derivation)

	// Analytic Bayes error: Phi(-1) = 0.1587 (window truncation at
	// +/- (m+3sigma) trims a negligible tail)
	assert.InDelta(t, 0.1587, total, 2e-3)

	sum := 0.0
	for _, d := range details {
		assert.GreaterOrEqual(t, d.Mass, 0.0)
		sum += d.Mass
	}
	assert.InDelta(t, total, sum, 1e-12)
}

func TestMisclassificationErrorDisjointUniforms(t *testing.T) {
	uniA, err := dist.NewUniform(0, 1)
	require.NoError(t, err)
	uniB, err := dist.NewUniform(5, 6)
	require.NoError(t, err)

	a := Class{Name: "a", Params: uniA, Prior: 0.5}
	b := Class{Name: "b", Params: uniB, Prior: 0.5}

	boundaries, details, total, err := MisclassificationError(a, b)
	require.NoError(t, err)

	// The density difference is zero across the whole gap between the
	// supports; the run collapses to a single boundary at its midpoint
	require.Len(t, boundaries, 1)
	assert.InDelta(t, 3.0, boundaries[0], 1e-6)
	require.Len(t, details, 2)

	// Disjoint supports are perfectly separable
	assert.InDelta(t, 0.0, total, 1e-9)
}

func TestBoundariesValidation(t *testing.T) {
	a := normalClass(t, "a", 0, 1, 1.5)
	b := normalClass(t, "b", 1, 1, 0.5)

	_, err := Boundaries(a, b)
	assert.ErrorIs(t, err, core.ErrInvalidPrior)

	_, _, _, err = MisclassificationError(a, b)
	assert.ErrorIs(t, err, core.ErrInvalidPrior)
}
