// SPDX-License-Identifier: MIT

package covariance

import "github.com/katalvlaran/likertsim/construct"

// Option customizes Build.
type Option func(*options)

type options struct {
	paths []construct.Path
}

// WithPaths sets explicit pairwise correlations by construct name.
// Later paths win over earlier ones for the same pair; overrides are applied
// symmetrically after the family is laid down.
func WithPaths(paths ...construct.Path) Option {
	cp := append([]construct.Path(nil), paths...)

	return func(o *options) {
		o.paths = append(o.paths, cp...)
	}
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
