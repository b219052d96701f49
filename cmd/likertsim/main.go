// SPDX-License-Identifier: MIT

// Command likertsim generates synthetic Likert survey data for SEM
// measurement models.
package main

import (
	"os"

	"github.com/katalvlaran/likertsim/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
