// SPDX-License-Identifier: MIT

package construct

import (
	"fmt"
	"sort"
)

// Registry collects constructs and keeps them in role order
// (independent, mediator, dependent), preserving insertion order within a role.
// The zero value is ready to use.
type Registry struct {
	specs []VariableSpec
}

// NewRegistry validates specs and returns them in role order.
func NewRegistry(specs ...VariableSpec) (*Registry, error) {
	r := &Registry{}
	for _, s := range specs {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Add validates s and inserts it after the last construct of the same role.
func (r *Registry) Add(s VariableSpec) error {
	if err := s.Validate(); err != nil {
		return err
	}
	// first index whose role is strictly greater than s.Role
	at := sort.Search(len(r.specs), func(i int) bool { return r.specs[i].Role > s.Role })
	r.specs = append(r.specs, VariableSpec{})
	copy(r.specs[at+1:], r.specs[at:])
	r.specs[at] = s

	return nil
}

// Len returns the number of registered constructs.
func (r *Registry) Len() int { return len(r.specs) }

// Specs returns a copy of the ordered construct list.
func (r *Registry) Specs() []VariableSpec {
	return append([]VariableSpec(nil), r.specs...)
}

// ByRole returns the constructs of one role, in order.
func (r *Registry) ByRole(role Role) []VariableSpec {
	var out []VariableSpec
	for _, s := range r.specs {
		if s.Role == role {
			out = append(out, s)
		}
	}

	return out
}

// Counts tallies constructs per role.
func (r *Registry) Counts() Counts {
	var c Counts
	for _, s := range r.specs {
		switch s.Role {
		case Independent:
			c.Independent++
		case Mediator:
			c.Mediators++
		case Dependent:
			c.Dependents++
		}
	}

	return c
}

// Config builds a validated SimulationConfig from the registry.
func (r *Registry) Config(sampleSize int, chain bool, paths ...Path) (SimulationConfig, error) {
	cfg := SimulationConfig{
		SampleSize: sampleSize,
		Variables:  r.Specs(),
		ChainMode:  chain,
		Paths:      append([]Path(nil), paths...),
	}
	if err := cfg.Validate(); err != nil {
		return SimulationConfig{}, fmt.Errorf("registry: %w", err)
	}

	return cfg, nil
}
