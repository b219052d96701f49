// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/likertsim/config"
	"github.com/katalvlaran/likertsim/covariance"
	"github.com/katalvlaran/likertsim/matrix"
)

// NewMatrixCommand creates the matrix command
func NewMatrixCommand(root *rootFlags) *cobra.Command {
	var chain bool

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the construct correlation matrix",
		Long: `Print the correlation matrix a run would use and whether it is
positive semi-definite. A matrix that is not would make generate fall
back to uncorrelated constructs.

Examples:
  likertsim matrix
  likertsim matrix -c study.yaml --chain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("chain") {
				f.ChainMode = chain
			}
			cfg, err := f.SimulationConfig()
			if err != nil {
				return err
			}
			cov, err := covariance.ForConfig(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			infoColor.Fprintf(out, "Mode: %s\n\n", covariance.ModeFor(cfg.ChainMode))
			if err = printMatrix(out, cfg.Names(), cov); err != nil {
				return err
			}

			minEig, err := matrix.MinEigenvalue(cov)
			if err != nil {
				return err
			}
			ok, err := matrix.IsPositiveSemiDefinite(cov)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nSmallest eigenvalue: %.4f\n", minEig)
			if ok {
				successColor.Fprintln(out, "✓ positive semi-definite")
			} else {
				errorColor.Fprintln(out, "✗ not positive semi-definite: generate will ignore the correlation structure")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&chain, "chain", false, "use the chain (serial mediation) correlation structure")

	return cmd
}

func printMatrix(w io.Writer, names []string, m *matrix.Dense) error {
	width := 6
	for _, n := range names {
		if len(n)+1 > width {
			width = len(n) + 1
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s", width, "")
	for _, n := range names {
		fmt.Fprintf(&b, "%*s", width, n)
	}
	b.WriteByte('\n')
	for i, n := range names {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%*s", width, n)
		for _, v := range row {
			fmt.Fprintf(&b, "%*.2f", width, v)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}
