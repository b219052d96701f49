// SPDX-License-Identifier: MIT
// Package construct describes the latent constructs a simulation run measures.
//
// A construct is an unobserved variable (independent, mediator or dependent)
// measured by ItemCount Likert items on a ScaleLevels-point scale. The package
// provides:
//
//   - Role and VariableSpec, the typed description of one construct;
//   - Registry, which keeps specs in the canonical order
//     Independent… Mediator… Dependent… (adjacency in that order is what the
//     chain correlation structure reads as the mediation chain);
//   - SimulationConfig, the validated input boundary of the simulation engine;
//   - Defaults, which expands construct counts into named specs using the
//     conventional prefixes IV, M and Y.
//
// Nothing here draws random numbers or touches I/O.
package construct
