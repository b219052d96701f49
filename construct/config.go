// SPDX-License-Identifier: MIT

package construct

// Path overrides the built-in correlation between two named constructs.
// R must lie strictly inside (-1, 1).
type Path struct {
	From string  `yaml:"from" json:"from"`
	To   string  `yaml:"to" json:"to"`
	R    float64 `yaml:"r" json:"r"`
}

// SimulationConfig is the validated input of one generation run.
// Variables must be ordered independent, mediator, dependent; use Registry
// to obtain that order from an arbitrary list.
type SimulationConfig struct {
	SampleSize int            `yaml:"sample_size" json:"sample_size"`
	Variables  []VariableSpec `yaml:"variables" json:"variables"`
	ChainMode  bool           `yaml:"chain_mode" json:"chain_mode"`
	Paths      []Path         `yaml:"paths,omitempty" json:"paths,omitempty"`
}

// Validate checks every invariant of the configuration.
// The first violation is returned; all errors wrap ErrInvalidConfig.
func (c SimulationConfig) Validate() error {
	if c.SampleSize < 1 {
		return invalidf(ErrSampleSize, "got %d", c.SampleSize)
	}
	if len(c.Variables) == 0 {
		return invalidf(ErrNoVariables, "empty variable list")
	}

	prev := Independent
	for i, v := range c.Variables {
		if err := v.Validate(); err != nil {
			return err
		}
		if v.Role < prev {
			return invalidf(ErrRoleOrder, "variable %d (%q, %s) follows a %s construct",
				i, v.Name, v.Role.Label(), prev.Label())
		}
		prev = v.Role
	}

	for _, p := range c.Paths {
		from, okFrom := c.Index(p.From)
		to, okTo := c.Index(p.To)
		if !okFrom || !okTo {
			return invalidf(ErrUnknownPath, "%s -> %s", p.From, p.To)
		}
		if from == to || !(p.R > -1 && p.R < 1) {
			return invalidf(ErrPathRange, "%s -> %s = %v", p.From, p.To, p.R)
		}
	}

	return nil
}

// Index returns the position of the first construct called name.
func (c SimulationConfig) Index(name string) (int, bool) {
	for i, v := range c.Variables {
		if v.Name == name {
			return i, true
		}
	}

	return -1, false
}

// TotalItems is the column count of the resulting table.
func (c SimulationConfig) TotalItems() int {
	total := 0
	for _, v := range c.Variables {
		total += v.ItemCount
	}

	return total
}

// Names returns construct names in order.
func (c SimulationConfig) Names() []string {
	out := make([]string, len(c.Variables))
	for i, v := range c.Variables {
		out[i] = v.Name
	}

	return out
}

// HasMediators reports whether any construct is a Mediator.
func (c SimulationConfig) HasMediators() bool {
	for _, v := range c.Variables {
		if v.Role == Mediator {
			return true
		}
	}

	return false
}

// Clone returns a deep copy, so a running simulation cannot observe later
// edits made by the caller.
func (c SimulationConfig) Clone() SimulationConfig {
	out := c
	out.Variables = append([]VariableSpec(nil), c.Variables...)
	if c.Paths != nil {
		out.Paths = append([]Path(nil), c.Paths...)
	}

	return out
}
