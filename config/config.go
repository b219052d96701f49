// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/likertsim/construct"
	"github.com/katalvlaran/likertsim/export"
	"github.com/katalvlaran/likertsim/simulation"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LIKERTSIM"

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "likertsim"

// Output formats, as named by the export package.
const (
	FormatXLSX   = export.FormatXLSX
	FormatCSV    = export.FormatCSV
	FormatSQLite = export.FormatSQLite
)

// DefaultOutputPath is where generate writes when nothing else is configured.
const DefaultOutputPath = "simulated_data.xlsx"

// ErrInvalidFile indicates a config file that parses but cannot be used.
var ErrInvalidFile = errors.New("config: invalid file")

// File is the on-disk shape of a likertsim configuration.
type File struct {
	SampleSize int              `mapstructure:"sample_size" yaml:"sample_size"`
	Seed       int64            `mapstructure:"seed" yaml:"seed"`
	ChainMode  bool             `mapstructure:"chain_mode" yaml:"chain_mode"`
	Loading    float64          `mapstructure:"loading" yaml:"loading,omitempty"`
	Counts     construct.Counts `mapstructure:"counts" yaml:"counts"`
	Variables  []Variable       `mapstructure:"variables" yaml:"variables,omitempty"`
	Paths      []construct.Path `mapstructure:"paths" yaml:"paths,omitempty"`
	Output     Output           `mapstructure:"output" yaml:"output"`
}

// Variable is one explicitly configured construct. Zero Items or Scale take
// the defaults for the role.
type Variable struct {
	Name  string `mapstructure:"name" yaml:"name"`
	Role  string `mapstructure:"role" yaml:"role"`
	Items int    `mapstructure:"items" yaml:"items,omitempty"`
	Scale int    `mapstructure:"scale" yaml:"scale,omitempty"`
}

// Output selects where and how generate persists the table.
type Output struct {
	Path   string `mapstructure:"path" yaml:"path"`
	Format string `mapstructure:"format" yaml:"format,omitempty"`
	Table  string `mapstructure:"table" yaml:"table,omitempty"`
}

// Load reads path (or ./likertsim.{yaml,yml,json} when path is empty) over
// the defaults, then applies LIKERTSIM_* environment overrides.
// A missing default file is not an error; a missing explicit path is.
func Load(path string) (*File, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultFileName)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &f, nil
}

// Default returns the configuration Load yields with no file and no env.
func Default() *File {
	d := construct.DefaultCounts()

	return &File{
		SampleSize: construct.DefaultSampleSize,
		Seed:       simulation.DefaultSeed,
		Counts:     d,
		Output:     Output{Path: DefaultOutputPath},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("sample_size", d.SampleSize)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("chain_mode", false)
	v.SetDefault("loading", 0.0)
	v.SetDefault("counts.independent", d.Counts.Independent)
	v.SetDefault("counts.mediators", d.Counts.Mediators)
	v.SetDefault("counts.dependents", d.Counts.Dependents)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.format", "")
	v.SetDefault("output.table", "")
}

// Specs resolves the construct list: explicit variables in role order, or
// the defaults expanded from Counts.
func (f *File) Specs() ([]construct.VariableSpec, error) {
	if len(f.Variables) == 0 {
		return construct.Defaults(f.Counts)
	}

	reg := &construct.Registry{}
	for i, v := range f.Variables {
		role, err := construct.ParseRole(v.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: variables[%d]: %w", ErrInvalidFile, i, err)
		}
		spec := construct.DefaultSpec(role, 1)
		spec.Name = v.Name
		if v.Items != 0 {
			spec.ItemCount = v.Items
		}
		if v.Scale != 0 {
			spec.ScaleLevels = v.Scale
		}
		if err = reg.Add(spec); err != nil {
			return nil, fmt.Errorf("variables[%d]: %w", i, err)
		}
	}

	return reg.Specs(), nil
}

// SimulationConfig builds and validates the engine input.
// With counts-based constructs, chain mode only applies when mediators exist.
func (f *File) SimulationConfig() (construct.SimulationConfig, error) {
	specs, err := f.Specs()
	if err != nil {
		return construct.SimulationConfig{}, err
	}
	chain := f.ChainMode
	if len(f.Variables) == 0 && f.Counts.Mediators == 0 {
		chain = false
	}

	cfg := construct.SimulationConfig{
		SampleSize: f.SampleSize,
		Variables:  specs,
		ChainMode:  chain,
		Paths:      append([]construct.Path(nil), f.Paths...),
	}
	if err = cfg.Validate(); err != nil {
		return construct.SimulationConfig{}, err
	}

	return cfg, nil
}

// RunOptions maps file settings to engine options.
func (f *File) RunOptions() []simulation.Option {
	opts := []simulation.Option{simulation.WithSeed(f.Seed)}
	if f.Loading != 0 {
		opts = append(opts, simulation.WithLoading(f.Loading))
	}

	return opts
}

// Target resolves the export destination.
func (f *File) Target() (export.Target, error) {
	format, err := f.ResolveFormat()
	if err != nil {
		return export.Target{}, err
	}

	return export.Target{Path: f.Output.Path, Format: format, Table: f.Output.Table}, nil
}

// ResolveFormat returns Output.Format, or infers it from the Output.Path
// extension, defaulting to xlsx.
func (f *File) ResolveFormat() (string, error) {
	format := strings.ToLower(strings.TrimSpace(f.Output.Format))
	if format == "" {
		switch p := strings.ToLower(f.Output.Path); {
		case strings.HasSuffix(p, ".csv"):
			format = FormatCSV
		case strings.HasSuffix(p, ".db"), strings.HasSuffix(p, ".sqlite"), strings.HasSuffix(p, ".sqlite3"):
			format = FormatSQLite
		default:
			format = FormatXLSX
		}
	}
	switch format {
	case FormatXLSX, FormatCSV, FormatSQLite:
		return format, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", ErrInvalidFile, format)
	}
}
