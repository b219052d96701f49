// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/likertsim/config"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a YAML configuration listing the default model
(IV1, M1, M2, Y1; N=1243; 5-point scales) for editing.

Examples:
  likertsim init
  likertsim init -o study.yaml --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("file %s already exists (use --force to overwrite)", output)
			}
			if err := config.Save(output, config.Template()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			successColor.Fprintf(out, "✓ Created %s\n", output)
			infoColor.Fprintln(out, "\nNext steps:")
			fmt.Fprintf(out, "  1. Edit constructs, items and scales in %s\n", output)
			fmt.Fprintf(out, "  2. Run 'likertsim generate -c %s'\n", output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultFileName+".yaml", "path of the file to write")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
