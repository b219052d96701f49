// SPDX-License-Identifier: MIT

package items

// DefaultLoading is the standardized factor loading of every item.
const DefaultLoading = 0.85

// Option customizes Generate.
type Option func(*options)

type options struct {
	loading float64
}

// WithLoading overrides the factor loading. Values outside (0, 1] are
// reported by Generate as ErrLoading, since they usually come from user
// configuration.
func WithLoading(lambda float64) Option {
	return func(o *options) { o.loading = lambda }
}

func gatherOptions(opts ...Option) options {
	o := options{loading: DefaultLoading}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
