// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/likertsim/config"
	"github.com/katalvlaran/likertsim/export"
	"github.com/katalvlaran/likertsim/matrix"
	"github.com/katalvlaran/likertsim/simulation"
)

type generateFlags struct {
	output      string
	format      string
	table       string
	sampleSize  int
	chain       bool
	seed        int64
	interactive bool
	save        string
}

// NewGenerateCommand creates the generate command
func NewGenerateCommand(root *rootFlags) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g", "gen"},
		Short:   "Generate a synthetic response table",
		Long: `Generate one table of Likert responses and write it to disk.

Settings come from the config file, LIKERTSIM_* environment variables and
the flags below, in increasing precedence.

Examples:
  likertsim generate
  likertsim generate -n 500 --chain -o study.csv
  likertsim generate -c study.yaml --format sqlite -o study.db
  likertsim generate --interactive --save study.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, flags, surveyAsk)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&flags.output, "output", "o", "", "output path (default "+config.DefaultOutputPath+")")
	fl.StringVar(&flags.format, "format", "", "output format: xlsx, csv or sqlite (default: from extension)")
	fl.StringVar(&flags.table, "table", "", "SQLite table name (default "+export.DefaultTableName+")")
	fl.IntVarP(&flags.sampleSize, "sample-size", "n", 0, "number of respondents")
	fl.BoolVar(&flags.chain, "chain", false, "use the chain (serial mediation) correlation structure")
	fl.Int64Var(&flags.seed, "seed", simulation.DefaultSeed, "random seed")
	fl.BoolVarP(&flags.interactive, "interactive", "i", false, "enter the model interactively")
	fl.StringVar(&flags.save, "save", "", "also save the effective configuration to this YAML file")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, flags *generateFlags, ask askFunc) error {
	out := cmd.OutOrStdout()

	f, err := config.Load(root.configPath)
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, flags, f)

	if flags.interactive {
		if err = promptFile(ask, f); err != nil {
			return err
		}
	}

	cfg, err := f.SimulationConfig()
	if err != nil {
		return err
	}
	target, err := f.Target()
	if err != nil {
		return err
	}
	if flags.save != "" {
		if err = config.Save(flags.save, f); err != nil {
			return err
		}
		infoColor.Fprintf(out, "Saved configuration to %s\n", flags.save)
	}

	logger, err := newLogger(root.logLevel, root.logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	res, err := simulation.Run(cfg, append(f.RunOptions(), simulation.WithLogger(logger))...)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		warningColor.Fprintf(out, "Warning: %s\n", w)
	}
	if dup := res.Table.Duplicates(); len(dup) > 0 {
		warningColor.Fprintf(out, "Warning: duplicate column names: %s\n", strings.Join(dup, ", "))
	}

	if err = export.Save(cmd.Context(), target, res.Table); err != nil {
		return err
	}

	successColor.Fprintf(out, "✓ Wrote %d rows × %d columns to %s\n",
		res.Table.NumRows(), res.Table.NumCols(), target.Path)
	fmt.Fprintf(out, "  Mode:   %s\n", res.Mode)
	fmt.Fprintf(out, "  Format: %s\n", target.Format)

	return reportCorrelation(out, logger, res)
}

// reportCorrelation prints the target latent correlation next to the one the
// drawn scores realize. Needs at least two respondents.
func reportCorrelation(out io.Writer, logger *zap.Logger, res *simulation.Result) error {
	if res.Latent.Rows() < 2 {
		return nil
	}
	realized, _, _, err := matrix.Correlation(res.Latent)
	if err != nil {
		return err
	}
	names := res.Config.Names()

	infoColor.Fprintln(out, "\nTarget latent correlation:")
	if err = printMatrix(out, names, res.Covariance); err != nil {
		return err
	}
	infoColor.Fprintln(out, "\nRealized latent correlation:")
	if err = printMatrix(out, names, realized); err != nil {
		return err
	}

	maxDev, err := maxAbsDiff(res.Covariance, realized)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nLargest deviation: %.4f\n", maxDev)
	logger.Info("latent correlation realized",
		zap.Float64("max_deviation", maxDev),
		zap.Bool("fallback", res.Fallback),
	)

	return nil
}

// maxAbsDiff returns max |a[i,j] − b[i,j]| over same-shape square matrices.
func maxAbsDiff(a, b *matrix.Dense) (float64, error) {
	var maxDev float64
	for i := 0; i < a.Rows(); i++ {
		ra, err := a.Row(i)
		if err != nil {
			return 0, err
		}
		rb, err := b.Row(i)
		if err != nil {
			return 0, err
		}
		for j := range ra {
			maxDev = math.Max(maxDev, math.Abs(ra[j]-rb[j]))
		}
	}

	return maxDev, nil
}

// applyGenerateFlags overrides file settings with explicitly set flags.
func applyGenerateFlags(cmd *cobra.Command, flags *generateFlags, f *config.File) {
	changed := cmd.Flags().Changed
	if changed("output") {
		f.Output.Path = flags.output
	}
	if changed("format") {
		f.Output.Format = flags.format
	}
	if changed("table") {
		f.Output.Table = flags.table
	}
	if changed("sample-size") {
		f.SampleSize = flags.sampleSize
	}
	if changed("chain") {
		f.ChainMode = flags.chain
	}
	if changed("seed") {
		f.Seed = flags.seed
	}
}
