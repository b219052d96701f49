// SPDX-License-Identifier: MIT
// Package simulation runs one synthetic survey generation end to end.
//
// Run validates a construct.SimulationConfig and then wires the pipeline in
// a fixed order:
//
//	covariance.Build → sampler.Sample → items.Generate (per construct) → table.Assembler
//
// All randomness flows from one *rand.Rand owned by the run (seeded with
// DefaultSeed unless WithSeed or WithRand says otherwise). The stream is
// consumed by the latent draw first and then by the item errors in
// construct order, item order, respondent order, so equal configurations and
// seeds give identical tables. Runs share no state and may execute
// concurrently.
//
// Numerical instability is not an error: a covariance that cannot be
// factored is replaced by the identity and the run reports it in
// Result.Warnings and through the logger.
package simulation
