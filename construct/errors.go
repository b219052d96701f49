// SPDX-License-Identifier: MIT
// Package: likertsim/construct
//
// errors.go: sentinel errors for configuration validation.
//
// Error policy:
//   • Every validation failure wraps ErrInvalidConfig AND a specific sentinel,
//     so callers can branch coarsely (errors.Is(err, ErrInvalidConfig)) or
//     precisely (errors.Is(err, ErrScaleLevels)).
//   • Validation never panics; option-style constructors are not used here.

package construct

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the umbrella for every configuration rejection.
var ErrInvalidConfig = errors.New("construct: invalid configuration")

var (
	// ErrSampleSize indicates SampleSize < 1.
	ErrSampleSize = errors.New("construct: sample size must be >= 1")

	// ErrNoVariables indicates an empty construct list.
	ErrNoVariables = errors.New("construct: at least one variable is required")

	// ErrEmptyName indicates a construct with an empty (or blank) name.
	ErrEmptyName = errors.New("construct: variable name is empty")

	// ErrItemCount indicates ItemCount < 1.
	ErrItemCount = errors.New("construct: item count must be >= 1")

	// ErrScaleLevels indicates ScaleLevels outside [MinScaleLevels, MaxScaleLevels].
	ErrScaleLevels = errors.New("construct: scale levels out of range")

	// ErrUnknownRole indicates a Role value outside the enum.
	ErrUnknownRole = errors.New("construct: unknown role")

	// ErrRoleOrder indicates constructs are not ordered IV… M… Y….
	ErrRoleOrder = errors.New("construct: variables must be ordered independent, mediator, dependent")

	// ErrNegativeCount indicates a negative construct count passed to Defaults.
	ErrNegativeCount = errors.New("construct: construct count must be >= 0")

	// ErrUnknownPath indicates a Path naming a construct not in the config.
	ErrUnknownPath = errors.New("construct: path references unknown variable")

	// ErrPathRange indicates a Path correlation outside (-1, 1) or a self-path.
	ErrPathRange = errors.New("construct: path correlation must lie in (-1, 1) between distinct variables")
)

// invalidf joins ErrInvalidConfig with a specific sentinel and context.
func invalidf(specific error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidConfig, specific, fmt.Sprintf(format, args...))
}
