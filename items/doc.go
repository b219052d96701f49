// SPDX-License-Identifier: MIT
// Package items turns one construct's latent scores into Likert responses.
//
// Each item follows a single-factor model
//
//	raw = λ·latent + σ_e·ε,   σ_e = √(1-λ²),   ε ~ N(0, 1)
//
// with λ = DefaultLoading unless WithLoading says otherwise. The raw scores
// are cut at their own sample percentiles 100·b/L (b = 1..L-1, linear
// interpolation) into L right-closed bins labelled 1..L, which makes every
// category hold N/L respondents up to one.
//
// Items of a construct are independent given the latent scores: their only
// shared input is latent.
package items
