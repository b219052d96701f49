// SPDX-License-Identifier: MIT
// Package construct_test covers role parsing, spec validation, ordering
// and the default construct expansion.
package construct_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/likertsim/construct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spec(name string, role construct.Role, items, levels int) construct.VariableSpec {
	return construct.VariableSpec{Name: name, Role: role, ItemCount: items, ScaleLevels: levels}
}

func TestRoleStringAndParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "IV", construct.Independent.String())
	assert.Equal(t, "M", construct.Mediator.String())
	assert.Equal(t, "Y", construct.Dependent.String())
	assert.Equal(t, "mediator", construct.Mediator.Label())
	assert.Equal(t, "Role(7)", construct.Role(7).String())

	tests := []struct {
		in   string
		want construct.Role
	}{
		{"IV", construct.Independent},
		{" independent ", construct.Independent},
		{"m", construct.Mediator},
		{"Mediator", construct.Mediator},
		{"y", construct.Dependent},
		{"DV", construct.Dependent},
		{"dependent", construct.Dependent},
	}
	for _, tc := range tests {
		got, err := construct.ParseRole(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := construct.ParseRole("moderator")
	require.ErrorIs(t, err, construct.ErrUnknownRole)
}

func TestRoleText(t *testing.T) {
	t.Parallel()

	b, err := construct.Dependent.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "dependent", string(b))

	var r construct.Role
	require.NoError(t, r.UnmarshalText([]byte("M")))
	assert.Equal(t, construct.Mediator, r)
	require.ErrorIs(t, r.UnmarshalText([]byte("?")), construct.ErrUnknownRole)

	_, err = construct.Role(-1).MarshalText()
	require.ErrorIs(t, err, construct.ErrUnknownRole)
}

func TestVariableSpecValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec construct.VariableSpec
		want error
	}{
		{"ok", spec("IV1", construct.Independent, 3, 5), nil},
		{"single level", spec("IV1", construct.Independent, 3, 1), nil},
		{"ten levels", spec("IV1", construct.Independent, 3, 10), nil},
		{"blank name", spec("  ", construct.Independent, 3, 5), construct.ErrEmptyName},
		{"bad role", spec("X", construct.Role(9), 3, 5), construct.ErrUnknownRole},
		{"zero items", spec("X", construct.Mediator, 0, 5), construct.ErrItemCount},
		{"zero levels", spec("X", construct.Mediator, 2, 0), construct.ErrScaleLevels},
		{"eleven levels", spec("X", construct.Mediator, 2, 11), construct.ErrScaleLevels},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, construct.ErrInvalidConfig)
		})
	}
}

func TestSimulationConfigValidate(t *testing.T) {
	t.Parallel()

	good := construct.DefaultConfig()
	require.NoError(t, good.Validate())

	tests := []struct {
		name   string
		mutate func(c *construct.SimulationConfig)
		want   error
	}{
		{"zero sample", func(c *construct.SimulationConfig) { c.SampleSize = 0 }, construct.ErrSampleSize},
		{"no variables", func(c *construct.SimulationConfig) { c.Variables = nil }, construct.ErrNoVariables},
		{"bad item", func(c *construct.SimulationConfig) { c.Variables[1].ItemCount = 0 }, construct.ErrItemCount},
		{"out of order", func(c *construct.SimulationConfig) {
			c.Variables[0], c.Variables[3] = c.Variables[3], c.Variables[0]
		}, construct.ErrRoleOrder},
		{"unknown path", func(c *construct.SimulationConfig) {
			c.Paths = []construct.Path{{From: "IV1", To: "Z9", R: 0.3}}
		}, construct.ErrUnknownPath},
		{"self path", func(c *construct.SimulationConfig) {
			c.Paths = []construct.Path{{From: "M1", To: "M1", R: 0.3}}
		}, construct.ErrPathRange},
		{"path r=1", func(c *construct.SimulationConfig) {
			c.Paths = []construct.Path{{From: "IV1", To: "Y1", R: 1}}
		}, construct.ErrPathRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := good.Clone()
			tc.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
			require.ErrorIs(t, err, construct.ErrInvalidConfig)
		})
	}

	// Clone isolation: mutations above must not leak into good.
	require.NoError(t, good.Validate())
}

func TestSimulationConfigHelpers(t *testing.T) {
	t.Parallel()

	c := construct.DefaultConfig()
	assert.Equal(t, 1243, c.SampleSize)
	assert.Equal(t, []string{"IV1", "M1", "M2", "Y1"}, c.Names())
	assert.Equal(t, 3+4+4+4, c.TotalItems())
	assert.True(t, c.HasMediators())
	assert.False(t, c.ChainMode)

	i, ok := c.Index("M2")
	require.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = c.Index("nope")
	assert.False(t, ok)
}

func TestRegistryOrdersByRole(t *testing.T) {
	t.Parallel()

	r, err := construct.NewRegistry(
		spec("Y1", construct.Dependent, 4, 5),
		spec("M1", construct.Mediator, 4, 5),
		spec("IV1", construct.Independent, 3, 5),
		spec("M2", construct.Mediator, 4, 7),
		spec("IV2", construct.Independent, 2, 5),
	)
	require.NoError(t, err)
	require.Equal(t, 5, r.Len())

	var names []string
	for _, s := range r.Specs() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"IV1", "IV2", "M1", "M2", "Y1"}, names)
	assert.Len(t, r.ByRole(construct.Mediator), 2)
	assert.Equal(t, construct.Counts{Independent: 2, Mediators: 2, Dependents: 1}, r.Counts())

	cfg, err := r.Config(100, true)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.ChainMode)

	_, err = r.Config(0, false)
	require.ErrorIs(t, err, construct.ErrSampleSize)

	require.ErrorIs(t, r.Add(spec("", construct.Mediator, 1, 5)), construct.ErrEmptyName)
	assert.Equal(t, 5, r.Len())
}

func TestRegistryZeroValue(t *testing.T) {
	t.Parallel()

	var r construct.Registry
	require.NoError(t, r.Add(spec("A", construct.Mediator, 1, 3)))
	assert.Equal(t, 1, r.Len())

	_, err := r.Config(10, false, construct.Path{From: "A", To: "B", R: 0.1})
	require.ErrorIs(t, err, construct.ErrUnknownPath)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	specs, err := construct.Defaults(construct.Counts{Independent: 2, Mediators: 0, Dependents: 1})
	require.NoError(t, err)
	require.Len(t, specs, 3)
	assert.Equal(t, spec("IV1", construct.Independent, 3, 5), specs[0])
	assert.Equal(t, spec("IV2", construct.Independent, 3, 5), specs[1])
	assert.Equal(t, spec("Y1", construct.Dependent, 4, 5), specs[2])

	_, err = construct.Defaults(construct.Counts{})
	require.ErrorIs(t, err, construct.ErrNoVariables)
	_, err = construct.Defaults(construct.Counts{Independent: -1, Dependents: 1})
	require.ErrorIs(t, err, construct.ErrNegativeCount)

	assert.Equal(t, 4, construct.DefaultCounts().Total())
}
