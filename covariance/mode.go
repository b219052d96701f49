// SPDX-License-Identifier: MIT

package covariance

import (
	"fmt"
	"strings"
)

// Mode selects the correlation family.
type Mode int

const (
	// Standard is the uniform (parallel) structure.
	Standard Mode = iota
	// Chain is the serial mediation structure.
	Chain
)

// ModeFor maps the configuration flag to a Mode.
func ModeFor(chain bool) Mode {
	if chain {
		return Chain
	}

	return Standard
}

// String returns "standard" or "chain".
func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Chain:
		return "chain"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "parallel", "":
		return Standard, nil
	case "chain", "serial":
		return Chain, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
