// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/likertsim/matrix"
)

const opSample = "Sample"

// Draw is the outcome of one Sample call.
type Draw struct {
	// Scores is the n×k latent score matrix, one row per respondent.
	Scores *matrix.Dense
	// Method is the factorization that produced the scores.
	// Meaningless when Fallback is set.
	Method matrix.FactorMethod
	// Fallback reports that the identity was used instead of cov.
	Fallback bool
	// Warning is FallbackWarning or NonConvergenceWarning when Fallback is
	// set, empty otherwise.
	Warning string
}

// Sample draws n rows from N(0, cov).
//
// Implementation:
//   - Stage 1: validate rng and n; factor cov with matrix.FactorPSD.
//   - Stage 2: on ErrNotPositiveSemiDefinite or ErrMatrixEigenFailed switch
//     to the identity and flag the Draw with the matching warning.
//   - Stage 3: per respondent draw k normals z and store L·z.
//
// Errors:
//   - ErrNilRand, ErrSampleSize.
//   - Structural matrix errors (nil, non-square, asymmetric, NaN/Inf) are
//     returned wrapped; they are caller bugs, not numerical instability.
//
// Complexity: O(k³ + n·k²).
func Sample(rng *rand.Rand, cov matrix.Matrix, n int, opts ...Option) (*Draw, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", opSample, ErrNilRand)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: %w: got %d", opSample, ErrSampleSize, n)
	}
	o := gatherOptions(opts...)

	draw := &Draw{}
	l, method, err := matrix.FactorPSD(cov, o.factor...)
	switch {
	case err == nil:
		draw.Method = method
	case errors.Is(err, matrix.ErrNotPositiveSemiDefinite), errors.Is(err, matrix.ErrMatrixEigenFailed):
		draw.Warning = FallbackWarning
		if errors.Is(err, matrix.ErrMatrixEigenFailed) {
			draw.Warning = NonConvergenceWarning
		}
		if l, err = matrix.NewIdentity(cov.Rows()); err != nil {
			return nil, fmt.Errorf("%s: %w", opSample, err)
		}
		draw.Fallback = true
	default:
		return nil, fmt.Errorf("%s: %w", opSample, err)
	}

	k := l.Rows()
	scores, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSample, err)
	}
	z := make([]float64, k)
	var i, j int
	var x []float64
	for i = 0; i < n; i++ {
		for j = 0; j < k; j++ {
			z[j] = rng.NormFloat64()
		}
		if x, err = matrix.MatVec(l, z); err != nil {
			return nil, fmt.Errorf("%s: %w", opSample, err)
		}
		for j = 0; j < k; j++ {
			_ = scores.Set(i, j, x[j])
		}
	}
	draw.Scores = scores

	return draw, nil
}
