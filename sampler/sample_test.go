// SPDX-License-Identifier: MIT
package sampler_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/likertsim/matrix"
	"github.com/katalvlaran/likertsim/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func chainFour(t *testing.T) *matrix.Dense {
	return dense(t, [][]float64{
		{1, 0.6, 0.35, 0.2},
		{0.6, 1, 0.6, 0.35},
		{0.35, 0.6, 1, 0.6},
		{0.2, 0.35, 0.6, 1},
	})
}

func sampleCorr(t *testing.T, d *matrix.Dense) matrix.Matrix {
	t.Helper()
	c, _, _, err := matrix.Correlation(d)
	require.NoError(t, err)

	return c
}

func TestSampleArgs(t *testing.T) {
	t.Parallel()

	cov := chainFour(t)
	_, err := sampler.Sample(nil, cov, 10)
	require.ErrorIs(t, err, sampler.ErrNilRand)

	_, err = sampler.Sample(rand.New(rand.NewSource(1)), cov, 0)
	require.ErrorIs(t, err, sampler.ErrSampleSize)

	_, err = sampler.Sample(rand.New(rand.NewSource(1)), nil, 10)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	asym := dense(t, [][]float64{{1, 0.5}, {0.1, 1}})
	_, err = sampler.Sample(rand.New(rand.NewSource(1)), asym, 10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestSampleDrawOrder(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	d, err := sampler.Sample(rand.New(rand.NewSource(2026)), id, 5)
	require.NoError(t, err)
	require.False(t, d.Fallback)
	assert.Equal(t, matrix.FactorCholesky, d.Method)

	ref := rand.New(rand.NewSource(2026))
	for i := 0; i < 5; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.Scores.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, ref.NormFloat64(), v)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	t.Parallel()

	a, err := sampler.Sample(rand.New(rand.NewSource(2026)), chainFour(t), 200)
	require.NoError(t, err)
	b, err := sampler.Sample(rand.New(rand.NewSource(2026)), chainFour(t), 200)
	require.NoError(t, err)
	assert.Equal(t, a.Scores.String(), b.Scores.String())

	c, err := sampler.Sample(rand.New(rand.NewSource(7)), chainFour(t), 200)
	require.NoError(t, err)
	assert.NotEqual(t, a.Scores.String(), c.Scores.String())
}

func TestSampleReproducesCorrelation(t *testing.T) {
	t.Parallel()

	cov := chainFour(t)
	d, err := sampler.Sample(rand.New(rand.NewSource(2026)), cov, 20000)
	require.NoError(t, err)
	require.Equal(t, 20000, d.Scores.Rows())
	require.Equal(t, 4, d.Scores.Cols())

	got := sampleCorr(t, d.Scores)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want, _ := cov.At(i, j)
			v, _ := got.At(i, j)
			assert.InDeltaf(t, want, v, 0.03, "corr(%d,%d)", i, j)
		}
	}
}

func TestSampleSingularPSD(t *testing.T) {
	t.Parallel()

	cov := dense(t, [][]float64{{1, 1}, {1, 1}})
	d, err := sampler.Sample(rand.New(rand.NewSource(3)), cov, 50)
	require.NoError(t, err)
	require.False(t, d.Fallback)
	assert.Equal(t, matrix.FactorEigen, d.Method)

	for i := 0; i < 50; i++ {
		row, err := d.Scores.Row(i)
		require.NoError(t, err)
		assert.InDelta(t, row[0], row[1], 1e-9)
	}
}

func TestSampleFallback(t *testing.T) {
	t.Parallel()

	cov := dense(t, [][]float64{
		{1, 0.9, 0.9},
		{0.9, 1, -0.9},
		{0.9, -0.9, 1},
	})
	d, err := sampler.Sample(rand.New(rand.NewSource(2026)), cov, 20000)
	require.NoError(t, err)
	require.True(t, d.Fallback)
	assert.Equal(t, sampler.FallbackWarning, d.Warning)

	got := sampleCorr(t, d.Scores)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := got.At(i, j)
			if i == j {
				assert.InDelta(t, 1.0, v, 1e-9)
				continue
			}
			assert.Lessf(t, math.Abs(v), 0.05, "corr(%d,%d)=%v", i, j, v)
		}
	}
}

func TestSampleNonConvergence(t *testing.T) {
	t.Parallel()

	// PSD but singular: Cholesky fails and one Jacobi rotation is not enough.
	cov := dense(t, [][]float64{{1, 1, 0.5}, {1, 1, 0.5}, {0.5, 0.5, 0.25}})

	d, err := sampler.Sample(rand.New(rand.NewSource(5)), cov, 10, sampler.WithMaxSweeps(1))
	require.NoError(t, err)
	require.True(t, d.Fallback)
	assert.Equal(t, sampler.NonConvergenceWarning, d.Warning)
	assert.NotEqual(t, sampler.FallbackWarning, d.Warning)

	// a looser stopping threshold lets the same sweep cap succeed
	d, err = sampler.Sample(rand.New(rand.NewSource(5)), cov, 10,
		sampler.WithMaxSweeps(1), sampler.WithEigenTolerance(0.8))
	require.NoError(t, err)
	assert.False(t, d.Fallback)
	assert.Empty(t, d.Warning)
	assert.Equal(t, matrix.FactorEigen, d.Method)
}

func TestSampleOptionsPanic(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { sampler.WithEpsilon(-1) })
	require.Panics(t, func() { sampler.WithMaxSweeps(0) })
	require.Panics(t, func() { sampler.WithEigenTolerance(0) })
	require.NotPanics(t, func() { sampler.WithEpsilon(1e-6) })
}

func TestSampleWithEpsilon(t *testing.T) {
	t.Parallel()

	// min eigenvalue -1e-4: rejected by default, accepted with a looser slack.
	cov := dense(t, [][]float64{{1, 1.0001}, {1.0001, 1}})
	d, err := sampler.Sample(rand.New(rand.NewSource(1)), cov, 10)
	require.NoError(t, err)
	assert.True(t, d.Fallback)

	d, err = sampler.Sample(rand.New(rand.NewSource(1)), cov, 10, sampler.WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.False(t, d.Fallback)
	assert.Equal(t, matrix.FactorEigen, d.Method)
}
