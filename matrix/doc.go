// Package matrix offers the dense linear-algebra primitives behind likertsim.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value policy (NaN/Inf rejection).
//   - Canonical kernels: Mul, Transpose, Scale, MatVec.
//   - Spectral and factorization routines for symmetric matrices: Eigen
//     (Jacobi sweeps), Cholesky, and FactorPSD, which produces a lower factor
//     L with L·Lᵀ = A for positive semi-definite A or reports
//     ErrNotPositiveSemiDefinite.
//   - Column statistics: Correlation.
//
// Matrices here are small (k×k correlation structures) or tall and thin
// (N×k latent score tables), so every kernel uses fixed i→j loop orders and a
// *Dense fast path over the flat buffer. Results are bit-for-bit reproducible
// for identical inputs.
//
// See the examples in this package for usage patterns.
package matrix
