// SPDX-License-Identifier: MIT

// Package commands holds the cobra command tree of the likertsim binary.
package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "likertsim",
		Short: "Synthetic Likert survey data for SEM measurement models",
		Long: color.CyanString(`likertsim - synthetic survey data generator

Simulates latent constructs (independent, mediator, dependent), draws
correlated latent scores and turns them into discrete Likert items with
equal-frequency categories.

Correlation structures:
  • standard: every pair of constructs correlates at 0.4
  • chain:    serial mediation (0.6 adjacent, 0.35 two apart, 0.2 otherwise)`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default ./likertsim.yaml if present)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "console", "log format: console or json")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewGenerateCommand(flags))
	rootCmd.AddCommand(NewMatrixCommand(flags))
	rootCmd.AddCommand(NewInitCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "likertsim version: ")
			valueColor.Fprintln(out, Version)
			titleColor.Fprint(out, "Git commit: ")
			valueColor.Fprintln(out, GitCommit)
			titleColor.Fprint(out, "Build date: ")
			valueColor.Fprintln(out, BuildDate)
			titleColor.Fprint(out, "Go version: ")
			valueColor.Fprintln(out, runtime.Version())
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
