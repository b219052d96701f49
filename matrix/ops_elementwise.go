// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* broadcast kernels (ew*) to avoid duplicating
//     tight loops across higher-level ops (statistics, factor scaling).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	src, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	if len(colMeans) != src.c {
		return nil, matrixErrorf("broadcastSubCols", ErrDimensionMismatch)
	}
	var i, j, base int
	for i = 0; i < src.r; i++ {
		base = i * src.c
		for j = 0; j < src.c; j++ {
			src.data[base+j] -= colMeans[j]
		}
	}

	return src, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// AI-Hint: use factors as 1/std for z-scoring, or √λ for eigen factors.
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	src, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	if len(scale) != src.c {
		return nil, matrixErrorf("scaleCols", ErrDimensionMismatch)
	}
	var i, j, base int
	for i = 0; i < src.r; i++ {
		base = i * src.c
		for j = 0; j < src.c; j++ {
			src.data[base+j] *= scale[j]
		}
	}

	return src, nil
}
