// SPDX-License-Identifier: MIT

package sampler

import "errors"

var (
	// ErrNilRand indicates Sample was called without a random source.
	ErrNilRand = errors.New("sampler: nil *rand.Rand")

	// ErrSampleSize indicates n < 1.
	ErrSampleSize = errors.New("sampler: sample size must be >= 1")
)

// Warnings attached to a Draw produced with the identity covariance.
const (
	// FallbackWarning: the matrix has a negative eigenvalue.
	FallbackWarning = "covariance matrix is not positive semi-definite; correlation structure ignored"

	// NonConvergenceWarning: the eigen solver hit its sweep cap.
	NonConvergenceWarning = "covariance matrix could not be factored: eigen solver did not converge; correlation structure ignored"
)
