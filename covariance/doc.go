// SPDX-License-Identifier: MIT
// Package covariance builds the k×k inter-construct correlation matrix used
// as the covariance of the latent scores.
//
// Two families are provided:
//
//   - Standard: every pair of distinct constructs correlates at 0.4;
//   - Chain: constructs are read as a serial mediation chain in their
//     configured order. Neighbours correlate at 0.6, constructs two steps
//     apart at 0.35, everything further at 0.2.
//
// Correlation(i, j, mode) is the single declarative rule; Build fills the
// matrix from it and then applies explicit path overrides (WithPaths).
// Build does not check positive semi-definiteness: the sampler owns the
// fallback for structures that cannot be factored.
package covariance
