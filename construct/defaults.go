// SPDX-License-Identifier: MIT

package construct

import "fmt"

// Counts is the number of constructs per role.
type Counts struct {
	Independent int `yaml:"independent" json:"independent" mapstructure:"independent"`
	Mediators   int `yaml:"mediators" json:"mediators" mapstructure:"mediators"`
	Dependents  int `yaml:"dependents" json:"dependents" mapstructure:"dependents"`
}

// DefaultCounts is the model offered when nothing is configured:
// one predictor, two mediators, one outcome.
func DefaultCounts() Counts {
	return Counts{
		Independent: DefaultIndependentCount,
		Mediators:   DefaultMediatorCount,
		Dependents:  DefaultDependentCount,
	}
}

// Total returns the number of constructs.
func (c Counts) Total() int { return c.Independent + c.Mediators + c.Dependents }

// DefaultSpec returns the default construct for role at 1-based position idx:
// name {prefix}{idx}, 3 items for predictors and 4 otherwise, 5-point scale.
func DefaultSpec(role Role, idx int) VariableSpec {
	items := DefaultOtherItems
	if role == Independent {
		items = DefaultIndependentItems
	}

	return VariableSpec{
		Name:        fmt.Sprintf("%s%d", role, idx),
		Role:        role,
		ItemCount:   items,
		ScaleLevels: DefaultScaleLevels,
	}
}

// Defaults expands counts into default constructs in role order.
func Defaults(c Counts) ([]VariableSpec, error) {
	if c.Independent < 0 || c.Mediators < 0 || c.Dependents < 0 {
		return nil, invalidf(ErrNegativeCount, "%+v", c)
	}
	if c.Total() == 0 {
		return nil, invalidf(ErrNoVariables, "all counts are zero")
	}

	out := make([]VariableSpec, 0, c.Total())
	for _, g := range []struct {
		role Role
		n    int
	}{
		{Independent, c.Independent},
		{Mediator, c.Mediators},
		{Dependent, c.Dependents},
	} {
		for i := 1; i <= g.n; i++ {
			out = append(out, DefaultSpec(g.role, i))
		}
	}

	return out, nil
}

// DefaultConfig is the out-of-the-box run: N=1243, IV1, M1, M2, Y1, standard mode.
func DefaultConfig() SimulationConfig {
	specs, _ := Defaults(DefaultCounts())

	return SimulationConfig{SampleSize: DefaultSampleSize, Variables: specs}
}
