// SPDX-License-Identifier: MIT

package covariance

import "errors"

var (
	// ErrNoVariables indicates Build was given no constructs.
	ErrNoVariables = errors.New("covariance: no variables")

	// ErrUnknownVariable indicates a path override names a construct that is not present.
	ErrUnknownVariable = errors.New("covariance: unknown variable")

	// ErrCorrelationRange indicates an override outside (-1, 1) or on the diagonal.
	ErrCorrelationRange = errors.New("covariance: correlation out of range")

	// ErrUnknownMode indicates a Mode value outside the enum.
	ErrUnknownMode = errors.New("covariance: unknown mode")
)
