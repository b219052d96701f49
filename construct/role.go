// SPDX-License-Identifier: MIT

package construct

import (
	"fmt"
	"strings"
)

// Role is the structural position of a construct in the model.
// The numeric order is the registry order: Independent < Mediator < Dependent.
type Role int

const (
	// Independent constructs are exogenous predictors (prefix "IV").
	Independent Role = iota
	// Mediator constructs sit between predictors and outcomes (prefix "M").
	Mediator
	// Dependent constructs are outcomes (prefix "Y").
	Dependent
)

// roleInfo is the single table behind String/Label/ParseRole.
var roleInfo = [...]struct {
	prefix string
	label  string
}{
	Independent: {prefix: "IV", label: "independent"},
	Mediator:    {prefix: "M", label: "mediator"},
	Dependent:   {prefix: "Y", label: "dependent"},
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool { return r >= Independent && r <= Dependent }

// String returns the default column prefix ("IV", "M", "Y").
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}

	return roleInfo[r].prefix
}

// Label returns the long lower-case name ("independent", ...).
func (r Role) Label() string {
	if !r.Valid() {
		return r.String()
	}

	return roleInfo[r].label
}

// ParseRole accepts a prefix or label, case-insensitively.
// "dv" is accepted as an alias of Dependent.
func ParseRole(s string) (Role, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "dv" {
		return Dependent, nil
	}
	for r := Independent; r <= Dependent; r++ {
		if v == strings.ToLower(roleInfo[r].prefix) || v == roleInfo[r].label {
			return r, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// MarshalText implements encoding.TextMarshaler (label form).
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}

	return []byte(r.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseRole.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}
