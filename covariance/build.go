// SPDX-License-Identifier: MIT

package covariance

import (
	"fmt"

	"github.com/katalvlaran/likertsim/construct"
	"github.com/katalvlaran/likertsim/matrix"
)

// Correlation levels of the built-in families.
const (
	StandardCorrelation = 0.4
	ChainDirect         = 0.6  // |i-j| == 1
	ChainIndirect       = 0.35 // |i-j| == 2
	ChainBaseline       = 0.2  // |i-j| >= 3
)

const opBuild = "Build"

// Correlation returns the entry (i, j) of the family selected by mode.
// Unknown modes are treated as Standard.
func Correlation(i, j int, mode Mode) float64 {
	if i == j {
		return 1.0
	}
	if mode != Chain {
		return StandardCorrelation
	}

	d := i - j
	if d < 0 {
		d = -d
	}
	switch d {
	case 1:
		return ChainDirect
	case 2:
		return ChainIndirect
	default:
		return ChainBaseline
	}
}

// Build returns the k×k correlation matrix for specs, k = len(specs).
// Implementation:
//   - Stage 1: fill from Correlation in i→j order (symmetric by construction).
//   - Stage 2: apply WithPaths overrides, resolving names to the first match.
//   - Stage 3: copy the rows into a Dense.
//
// Errors: ErrNoVariables, ErrUnknownVariable, ErrCorrelationRange.
// Complexity: O(k² + p·k) for p overrides.
func Build(specs []construct.VariableSpec, mode Mode, opts ...Option) (*matrix.Dense, error) {
	k := len(specs)
	if k == 0 {
		return nil, fmt.Errorf("%s: %w", opBuild, ErrNoVariables)
	}
	o := gatherOptions(opts...)

	rows := make([][]float64, k)
	var i, j int
	for i = 0; i < k; i++ {
		rows[i] = make([]float64, k)
		for j = 0; j < k; j++ {
			rows[i][j] = Correlation(i, j, mode)
		}
	}

	for _, p := range o.paths {
		from, to := indexOf(specs, p.From), indexOf(specs, p.To)
		if from < 0 || to < 0 {
			return nil, fmt.Errorf("%s: %w: %s -> %s", opBuild, ErrUnknownVariable, p.From, p.To)
		}
		if from == to || !(p.R > -1 && p.R < 1) {
			return nil, fmt.Errorf("%s: %w: %s -> %s = %v", opBuild, ErrCorrelationRange, p.From, p.To, p.R)
		}
		rows[from][to], rows[to][from] = p.R, p.R
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	return m, nil
}

// ForConfig builds the matrix a SimulationConfig describes.
func ForConfig(cfg construct.SimulationConfig) (*matrix.Dense, error) {
	return Build(cfg.Variables, ModeFor(cfg.ChainMode), WithPaths(cfg.Paths...))
}

func indexOf(specs []construct.VariableSpec, name string) int {
	for i, s := range specs {
		if s.Name == name {
			return i
		}
	}

	return -1
}
