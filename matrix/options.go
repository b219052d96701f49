// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and the
// iterative spectral routines. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts FactorPSD/Eigen and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - eps is used twice by FactorPSD: as the symmetry tolerance and as the
//     slack below zero that still counts as "semi-definite" (numerical noise).
//   - maxSweeps bounds the Jacobi iteration count; the default is generous for
//     the k≤64 matrices this module builds.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultEigenTolerance is the off-diagonal magnitude at which Jacobi stops.
	DefaultEigenTolerance = 1e-12

	// DefaultMaxSweeps caps Jacobi rotations performed by FactorPSD.
	DefaultMaxSweeps = 10000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicEigenTolInvalid  = "matrix: WithEigenTolerance: tol must be finite, positive"
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps       float64 // >= 0; DefaultEpsilon
	eigenTol  float64 // > 0; DefaultEigenTolerance
	maxSweeps int     // >= 1; DefaultMaxSweeps
}

// WithEpsilon sets the tolerance for symmetry checks and the PSD slack.
// Panics if eps is NaN, ±Inf, or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEigenTolerance sets the Jacobi convergence threshold used by FactorPSD.
// Panics if tol is not a finite positive number.
func WithEigenTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithMaxSweeps caps the Jacobi rotation count used by FactorPSD.
func WithMaxSweeps(n int) Option {
	if n < 1 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = n }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for option-aware kernels.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		eigenTol:  DefaultEigenTolerance,
		maxSweeps: DefaultMaxSweeps,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
