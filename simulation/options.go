// SPDX-License-Identifier: MIT

package simulation

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/likertsim/items"
	"github.com/katalvlaran/likertsim/sampler"
)

// DefaultSeed seeds every run that does not choose its own random source.
const DefaultSeed int64 = 2026

// Option customizes Run. Constructors panic on nil arguments; Run itself
// never panics.
type Option func(*runConfig)

type runConfig struct {
	seed        int64
	rng         *rand.Rand
	logger      *zap.Logger
	itemOpts    []items.Option
	samplerOpts []sampler.Option
}

// WithSeed seeds a fresh *rand.Rand for the run.
func WithSeed(seed int64) Option {
	return func(c *runConfig) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand hands the run an explicit random source. The caller must not
// share it with concurrent runs. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulation: WithRand(nil)")
	}

	return func(c *runConfig) { c.rng = r }
}

// WithLogger sets the structured logger. Panics on nil; use zap.NewNop to
// silence a run explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}

	return func(c *runConfig) { c.logger = l }
}

// WithLoading overrides the item factor loading (default items.DefaultLoading).
func WithLoading(lambda float64) Option {
	return func(c *runConfig) { c.itemOpts = append(c.itemOpts, items.WithLoading(lambda)) }
}

// WithEpsilon sets the eigenvalue slack used when deciding whether the
// covariance is positive semi-definite. Panics on a negative value.
func WithEpsilon(eps float64) Option {
	so := sampler.WithEpsilon(eps)

	return func(c *runConfig) { c.samplerOpts = append(c.samplerOpts, so) }
}

func newRunConfig(opts ...Option) *runConfig {
	c := &runConfig{seed: DefaultSeed}
	for _, fn := range opts {
		if fn != nil {
			fn(c)
		}
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(c.seed))
	}

	return c
}
