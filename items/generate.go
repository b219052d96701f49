// SPDX-License-Identifier: MIT

package items

import (
	"fmt"
	"math"
	"math/rand"
)

const opGenerate = "Generate"

// Responses holds one construct's answers: Responses[i][j] is respondent i's
// answer to item j, in [1, scaleLevels].
type Responses [][]int

// NumRespondents returns the row count.
func (r Responses) NumRespondents() int { return len(r) }

// NumItems returns the column count (0 for empty responses).
func (r Responses) NumItems() int {
	if len(r) == 0 {
		return 0
	}

	return len(r[0])
}

// Item returns a copy of column j.
func (r Responses) Item(j int) []int {
	out := make([]int, len(r))
	for i, row := range r {
		out[i] = row[j]
	}

	return out
}

// Generate produces itemCount items for the given latent scores.
//
// Implementation:
//   - Stage 1: validate arguments and resolve the loading.
//   - Stage 2: per item, draw len(latent) normals in respondent order and
//     form raw = λ·latent + σ_e·ε.
//   - Stage 3: cut raw at its own percentiles (Edges, Discretize).
//
// Items are generated in order, so the RNG stream advances by exactly
// itemCount·len(latent) normals.
//
// Errors: ErrNilRand, ErrEmptyLatent, ErrItemCount, ErrScaleLevels, ErrLoading.
// Complexity: O(itemCount · n log n).
func Generate(rng *rand.Rand, latent []float64, itemCount, scaleLevels int, opts ...Option) (Responses, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", opGenerate, ErrNilRand)
	}
	if len(latent) == 0 {
		return nil, fmt.Errorf("%s: %w", opGenerate, ErrEmptyLatent)
	}
	if itemCount < 1 {
		return nil, fmt.Errorf("%s: %w: got %d", opGenerate, ErrItemCount, itemCount)
	}
	if scaleLevels < 1 {
		return nil, fmt.Errorf("%s: %w: got %d", opGenerate, ErrScaleLevels, scaleLevels)
	}
	o := gatherOptions(opts...)
	if !(o.loading > 0 && o.loading <= 1) {
		return nil, fmt.Errorf("%s: %w: got %v", opGenerate, ErrLoading, o.loading)
	}
	sigma := math.Sqrt(1 - o.loading*o.loading)

	n := len(latent)
	out := make(Responses, n)
	for i := range out {
		out[i] = make([]int, itemCount)
	}

	raw := make([]float64, n)
	var i, j int
	for j = 0; j < itemCount; j++ {
		for i = 0; i < n; i++ {
			raw[i] = o.loading*latent[i] + sigma*rng.NormFloat64()
		}
		cats := Discretize(raw, Edges(raw, scaleLevels))
		for i = 0; i < n; i++ {
			out[i][j] = cats[i]
		}
	}

	return out, nil
}
