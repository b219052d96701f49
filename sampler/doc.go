// SPDX-License-Identifier: MIT
// Package sampler draws zero-mean multivariate-normal latent scores.
//
// Sample factors the covariance as L·Lᵀ (Cholesky, or an eigen factor for
// singular positive semi-definite inputs) and maps each respondent's vector
// of k independent standard normals z to x = L·z. When the covariance is not
// positive semi-definite the draw proceeds with the identity instead, the
// returned Draw is flagged with Fallback and carries FallbackWarning.
//
// Randomness comes only from the *rand.Rand passed in. Draw order is
// respondent by respondent, construct by construct, so a fixed seed yields a
// fixed matrix.
package sampler
