// SPDX-License-Identifier: MIT

package construct

import "strings"

// Scale and item bounds.
const (
	MinScaleLevels = 1  // degenerate single-category scale, accepted
	MaxScaleLevels = 10 // widest scale offered to users
	MinItemCount   = 1
)

// Defaults used when constructs are generated from counts.
const (
	DefaultSampleSize       = 1243
	DefaultScaleLevels      = 5
	DefaultIndependentItems = 3
	DefaultOtherItems       = 4
	DefaultIndependentCount = 1
	DefaultMediatorCount    = 2
	DefaultDependentCount   = 1
)

// VariableSpec describes one construct to simulate.
// Name doubles as the column prefix: items are named Name1, Name2, ...
type VariableSpec struct {
	Name        string `yaml:"name" json:"name"`
	Role        Role   `yaml:"role" json:"role"`
	ItemCount   int    `yaml:"items" json:"items"`
	ScaleLevels int    `yaml:"scale" json:"scale"`
}

// Validate checks the per-construct invariants.
// Duplicate names are NOT checked here: column collisions are left to the
// caller (see table.Table.Duplicates).
func (s VariableSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return invalidf(ErrEmptyName, "role %s", s.Role)
	}
	if !s.Role.Valid() {
		return invalidf(ErrUnknownRole, "variable %q has role %d", s.Name, int(s.Role))
	}
	if s.ItemCount < MinItemCount {
		return invalidf(ErrItemCount, "variable %q has %d items", s.Name, s.ItemCount)
	}
	if s.ScaleLevels < MinScaleLevels || s.ScaleLevels > MaxScaleLevels {
		return invalidf(ErrScaleLevels, "variable %q has %d levels, want [%d,%d]",
			s.Name, s.ScaleLevels, MinScaleLevels, MaxScaleLevels)
	}

	return nil
}
