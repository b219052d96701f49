// SPDX-License-Identifier: MIT
// Package matrix: public facade.
//
// Purpose:
//   - Identity constructor (the sampler's uncorrelated fallback).
//   - Exported wrapper over the unexported correlation kernel.
//   - Small helpers used by callers that only need a yes/no answer.

package matrix

import "errors"

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n<=0.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// IsPositiveSemiDefinite reports whether FactorPSD accepts m.
// Structural errors (nil, non-square, asymmetric, NaN) are returned as-is;
// a plain "not PSD" verdict is (false, nil).
func IsPositiveSemiDefinite(m Matrix, opts ...Option) (bool, error) {
	_, _, err := FactorPSD(m, opts...)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotPositiveSemiDefinite) {
		return false, nil
	}

	return false, err
}

// Correlation returns the Pearson correlation of the columns of X (r>=2),
// plus the column means and sample standard deviations.
// Complexity: O(r*c²).
func Correlation(X Matrix) (*Dense, []float64, []float64, error) { return correlation(X) }
