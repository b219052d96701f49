// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and factorizations.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/likertsim/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force the non-*Dense (At/Set) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback within a tolerance.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// fromRows builds a *Dense from a literal or fails the test.
func fromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randDense fills an r×c matrix with uniform values in [-1, 1).
// Determinism: fixed seed → fixed contents.
func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// toRows reads m back into a [][]float64.
func toRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// requireClose asserts element-wise |a-b| <= tol for same-shape matrices.
func requireClose(t testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	g := toRows(t, got)
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "cols")
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], g[i][j], tol, "(%d,%d)", i, j)
		}
	}
}

// compoundSymmetry returns the n×n matrix with 1 on the diagonal and off elsewhere.
func compoundSymmetry(t testing.TB, n int, off float64) *matrix.Dense {
	t.Helper()
	m := mustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := off
			if i == j {
				v = 1
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// chainMatrix is the 4-construct serial mediation correlation structure.
func chainMatrix(t testing.TB) *matrix.Dense {
	return fromRows(t, [][]float64{
		{1, 0.6, 0.35, 0.2},
		{0.6, 1, 0.6, 0.35},
		{0.35, 0.6, 1, 0.6},
		{0.2, 0.35, 0.6, 1},
	})
}
