// SPDX-License-Identifier: MIT

package sampler

import "github.com/katalvlaran/likertsim/matrix"

// Option customizes Sample.
type Option func(*options)

type options struct {
	factor []matrix.Option
}

// WithEpsilon sets how far below zero an eigenvalue may fall and still count
// as zero. Panics if eps is negative or NaN (see matrix.WithEpsilon).
func WithEpsilon(eps float64) Option {
	mo := matrix.WithEpsilon(eps)

	return func(o *options) { o.factor = append(o.factor, mo) }
}

// WithMaxSweeps bounds the Jacobi rotations of the eigen fallback path.
// Panics if n <= 0.
func WithMaxSweeps(n int) Option {
	mo := matrix.WithMaxSweeps(n)

	return func(o *options) { o.factor = append(o.factor, mo) }
}

// WithEigenTolerance sets the off-diagonal magnitude at which the Jacobi
// solver of the eigen path stops. Panics if tol is not finite and positive.
func WithEigenTolerance(tol float64) Option {
	mo := matrix.WithEigenTolerance(tol)

	return func(o *options) { o.factor = append(o.factor, mo) }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
