// SPDX-License-Identifier: MIT

package simulation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/likertsim/construct"
	"github.com/katalvlaran/likertsim/covariance"
	"github.com/katalvlaran/likertsim/items"
	"github.com/katalvlaran/likertsim/matrix"
	"github.com/katalvlaran/likertsim/sampler"
	"github.com/katalvlaran/likertsim/table"
)

// Result is everything one run produced.
type Result struct {
	// Table is the N × Σ item_count response table.
	Table *table.Table
	// Config is the validated configuration the run used (a private copy).
	Config construct.SimulationConfig
	// Mode is the correlation family that was built.
	Mode covariance.Mode
	// Covariance is the k×k matrix requested from the sampler.
	Covariance *matrix.Dense
	// Latent is the N×k latent score matrix actually drawn.
	Latent *matrix.Dense
	// Factor is the factorization used; meaningless when Fallback is set.
	Factor matrix.FactorMethod
	// Fallback reports that the identity replaced Covariance.
	Fallback bool
	// Warnings are human-readable notes about degraded behaviour.
	Warnings []string
}

// Run validates cfg and generates one table.
//
// Errors:
//   - construct.ErrInvalidConfig family, before anything is drawn.
//   - covariance override errors (ErrUnknownVariable, ErrCorrelationRange).
//   - wrapped component errors; none are expected for a valid config.
func Run(cfg construct.SimulationConfig, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	cfg = cfg.Clone()
	rc := newRunConfig(opts...)
	log := rc.logger

	res := &Result{Config: cfg, Mode: covariance.ModeFor(cfg.ChainMode)}
	log.Info("simulation started",
		zap.Stringer("mode", res.Mode),
		zap.Int("constructs", len(cfg.Variables)),
		zap.Int("respondents", cfg.SampleSize),
		zap.Int("columns", cfg.TotalItems()),
		zap.Int("paths", len(cfg.Paths)),
	)

	cov, err := covariance.ForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("simulation: covariance: %w", err)
	}
	res.Covariance = cov

	draw, err := sampler.Sample(rc.rng, cov, cfg.SampleSize, rc.samplerOpts...)
	if err != nil {
		return nil, fmt.Errorf("simulation: sample: %w", err)
	}
	res.Latent, res.Factor, res.Fallback = draw.Scores, draw.Method, draw.Fallback
	if draw.Fallback {
		res.Warnings = append(res.Warnings, draw.Warning)
		log.Warn(draw.Warning,
			zap.Stringer("mode", res.Mode),
			zap.Int("constructs", len(cfg.Variables)),
			zap.Int("respondents", cfg.SampleSize),
		)
	} else {
		log.Debug("covariance factored", zap.Stringer("method", draw.Method))
	}

	var asm table.Assembler
	for j, spec := range cfg.Variables {
		latent, err := draw.Scores.Col(j)
		if err != nil {
			return nil, fmt.Errorf("simulation: latent %q: %w", spec.Name, err)
		}
		resp, err := items.Generate(rc.rng, latent, spec.ItemCount, spec.ScaleLevels, rc.itemOpts...)
		if err != nil {
			return nil, fmt.Errorf("simulation: items %q: %w", spec.Name, err)
		}
		if err = asm.Append(spec.Name, resp); err != nil {
			return nil, fmt.Errorf("simulation: %w", err)
		}
		log.Debug("construct generated",
			zap.String("name", spec.Name),
			zap.Stringer("role", spec.Role),
			zap.Int("items", spec.ItemCount),
			zap.Int("levels", spec.ScaleLevels),
		)
	}

	if res.Table, err = asm.Table(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	log.Info("simulation finished",
		zap.Stringer("mode", res.Mode),
		zap.Int("rows", res.Table.NumRows()),
		zap.Int("columns", res.Table.NumCols()),
		zap.Bool("fallback", res.Fallback),
	)

	return res, nil
}
