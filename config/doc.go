// SPDX-License-Identifier: MIT
// Package config loads likertsim run settings from YAML/JSON files and the
// environment and turns them into a construct.SimulationConfig.
//
// Sources, lowest precedence first: built-in defaults, the config file,
// LIKERTSIM_* environment variables (e.g. LIKERTSIM_SAMPLE_SIZE=500).
// Command-line flags are applied on top by the CLI.
//
// Constructs are given either explicitly under "variables" or as role counts
// under "counts"; an explicit list wins.
package config
