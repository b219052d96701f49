// SPDX-License-Identifier: MIT

// Package likertsim generates synthetic ordinal survey data for structural
// equation modelling (SEM) measurement designs.
//
// A run simulates latent constructs (independent, mediator, dependent),
// draws correlated latent scores and turns each construct into several
// discrete Likert items.
//
//	matrix/      dense matrices, Cholesky and eigen factorization, column statistics
//	construct/   Role, VariableSpec, Registry and the validated SimulationConfig
//	covariance/  standard (0.4) and chain (0.6 / 0.35 / 0.2) correlation structures
//	sampler/     multivariate-normal latent draws with an identity fallback
//	items/       loading-0.85 items cut into equal-frequency categories
//	table/       wide {construct}{i} response table
//	simulation/  the end-to-end engine with seeded, isolated randomness
//	config/      viper/YAML configuration
//	export/      xlsx, csv and SQLite writers
//
// The likertsim command (cmd/likertsim) wraps all of it:
//
//	likertsim init
//	likertsim generate -c likertsim.yaml -o data.xlsx
//	likertsim matrix --chain
package likertsim
