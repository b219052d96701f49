// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Factor symmetric covariance matrices into L with L·Lᵀ = A so that a
//     vector of independent standard normals z maps to x = L·z with Cov(x) = A.
//   - Cholesky is the primary path; positive semi-definite but singular inputs
//     are handled by an eigen factor Q·diag(√λ).
//
// Contract:
//   - Cholesky(A): strict SPD; ErrNotPositiveDefinite on a pivot ≤ 0.
//   - FactorPSD(A, opts...): Cholesky first, eigen factor second,
//     ErrNotPositiveSemiDefinite when min λ < -eps.
//   - Inputs are never mutated; outputs are fresh *Dense.

package matrix

import (
	"errors"
	"math"
)

const (
	opCholesky      = "Cholesky"
	opFactorPSD     = "FactorPSD"
	opMinEigenvalue = "MinEigenvalue"
)

// FactorMethod reports which path produced a factor.
type FactorMethod int

const (
	// FactorCholesky: L is lower-triangular with positive diagonal.
	FactorCholesky FactorMethod = iota
	// FactorEigen: L = Q·diag(√max(λ,0)); dense, not triangular.
	FactorEigen
)

// String returns a short label for logs.
func (f FactorMethod) String() string {
	switch f {
	case FactorCholesky:
		return "cholesky"
	case FactorEigen:
		return "eigen"
	default:
		return "unknown"
	}
}

// Cholesky computes the lower-triangular L with A = L·Lᵀ.
// MAIN DESCRIPTION:
//   - Cholesky–Banachiewicz, row by row, over a Dense copy of A.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(A, DefaultEpsilon).
//   - Stage 2: for each row i and column j ≤ i:
//     s = A[i,j] − Σ_{k<j} L[i,k]·L[j,k];
//     diagonal: s must be > 0, L[i,i] = √s; else L[i,j] = s / L[j,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf,
//     ErrNotPositiveDefinite.
//
// Determinism:
//   - Fixed i→j→k accumulation.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(m Matrix) (*Dense, error) {
	if err := ValidateSymmetric(m, DefaultEpsilon); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := a.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var i, j, k int
	var s float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			s = a.data[i*n+j]
			for k = 0; k < j; k++ {
				s -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				if s <= 0 || math.IsNaN(s) {
					return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
				}
				l.data[i*n+i] = math.Sqrt(s)
				continue
			}
			l.data[i*n+j] = s / l.data[j*n+j]
		}
	}

	return l, nil
}

// FactorPSD returns L with L·Lᵀ = A for a positive semi-definite A.
// MAIN DESCRIPTION:
//   - Try Cholesky; on ErrNotPositiveDefinite, fall back to Jacobi Eigen and
//     accept eigenvalues down to −eps as numerical zero.
//
// Implementation:
//   - Stage 1: resolve options (eps, eigen tolerance, max sweeps).
//   - Stage 2: Cholesky(A); success → (L, FactorCholesky).
//   - Stage 3: Eigen(A); min λ < −eps → ErrNotPositiveSemiDefinite.
//   - Stage 4: L[i,j] = Q[i,j]·√max(λ_j, 0).
//
// Errors:
//   - Structural errors from validation (nil, shape, symmetry, NaN/Inf).
//   - ErrMatrixEigenFailed when Jacobi does not converge.
//   - ErrNotPositiveSemiDefinite.
//
// Complexity:
//   - Cholesky path O(n³); eigen path O(maxSweeps·n²).
func FactorPSD(m Matrix, opts ...Option) (*Dense, FactorMethod, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, FactorCholesky, matrixErrorf(opFactorPSD, err)
	}

	l, err := Cholesky(m)
	if err == nil {
		return l, FactorCholesky, nil
	}
	if !errors.Is(err, ErrNotPositiveDefinite) {
		return nil, FactorCholesky, matrixErrorf(opFactorPSD, err)
	}

	eigs, q, err := Eigen(m, o.eigenTol, o.maxSweeps)
	if err != nil {
		return nil, FactorEigen, matrixErrorf(opFactorPSD, err)
	}
	n := len(eigs)
	scale := make([]float64, n)
	var j int
	for j = 0; j < n; j++ {
		if eigs[j] < -o.eps {
			return nil, FactorEigen, matrixErrorf(opFactorPSD, ErrNotPositiveSemiDefinite)
		}
		scale[j] = math.Sqrt(math.Max(eigs[j], 0))
	}
	out, err := ewScaleCols(q, scale)
	if err != nil {
		return nil, FactorEigen, matrixErrorf(opFactorPSD, err)
	}

	return out, FactorEigen, nil
}

// MinEigenvalue returns the smallest eigenvalue of a symmetric matrix.
// Used for diagnostics (how far a structure is from being PSD).
// Complexity: O(maxSweeps·n²).
func MinEigenvalue(m Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	eigs, _, err := Eigen(m, o.eigenTol, o.maxSweeps)
	if err != nil {
		return 0, matrixErrorf(opMinEigenvalue, err)
	}
	minEig := math.Inf(1)
	for _, v := range eigs {
		if v < minEig {
			minEig = v
		}
	}

	return minEig, nil
}
