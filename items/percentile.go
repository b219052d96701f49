// SPDX-License-Identifier: MIT

package items

import (
	"math"
	"sort"
)

// Percentile returns the p-th percentile (0..100) of an ascending slice,
// interpolating linearly between the two closest ranks at position
// p/100·(n-1). Returns NaN for an empty slice; p is clamped to [0, 100].
// Complexity: O(1).
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	p = math.Max(0, math.Min(100, p))

	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)

	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Edges returns levels+1 bin edges for raw: -Inf, the percentiles at
// 100·b/levels for b = 1..levels-1, then +Inf. raw is not modified.
// levels < 1 is treated as 1.
// Complexity: O(n log n).
func Edges(raw []float64, levels int) []float64 {
	if levels < 1 {
		levels = 1
	}
	edges := make([]float64, levels+1)
	edges[0] = math.Inf(-1)
	edges[levels] = math.Inf(1)
	if levels == 1 {
		return edges
	}

	sorted := append([]float64(nil), raw...)
	sort.Float64s(sorted)
	for b := 1; b < levels; b++ {
		edges[b] = Percentile(sorted, 100*float64(b)/float64(levels))
	}

	return edges
}

// Discretize assigns each value its 1-based bin under right-closed
// intervals (edges[b], edges[b+1]]. A value equal to an interior edge
// falls into the lower bin. Fewer than two edges yield all ones.
// Complexity: O(n log L).
func Discretize(raw, edges []float64) []int {
	out := make([]int, len(raw))
	if len(edges) < 2 {
		for i := range out {
			out[i] = 1
		}
		return out
	}

	interior := edges[1 : len(edges)-1]
	for i, v := range raw {
		// number of interior edges strictly below v
		out[i] = sort.Search(len(interior), func(j int) bool { return interior[j] >= v }) + 1
	}

	return out
}
