// SPDX-License-Identifier: MIT
package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/likertsim/config"
	"github.com/katalvlaran/likertsim/construct"
	"github.com/katalvlaran/likertsim/matrix"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "likertsim", cmd.Use)
	assert.NotEmpty(t, cmd.Long)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"version", "generate", "matrix", "init"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "likertsim version: ")
	assert.Contains(t, out, Version)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.yaml")
	out, err := execute(t, "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)

	_, err = execute(t, "init", "-o", path)
	require.Error(t, err)
	_, err = execute(t, "init", "-o", path, "--force")
	require.NoError(t, err)

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Variables, 4)
}

func TestGenerateCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	out, err := execute(t, "generate", "--log-level", "error", "-n", "40", "--chain", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 40 rows × 15 columns")
	assert.Contains(t, out, "Mode:   chain")
	assert.Contains(t, out, "Format: csv")
	assert.Contains(t, out, "Target latent correlation:")
	assert.Contains(t, out, "Realized latent correlation:")
	assert.Contains(t, out, "Largest deviation: ")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 41)
	assert.True(t, strings.HasPrefix(lines[0], "IV11,IV12,IV13,M11"))
}

func TestGenerateSQLiteWithSavedConfig(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "saved.yaml")
	db := filepath.Join(dir, "out.db")
	_, err := execute(t, "generate", "--log-level", "error", "-n", "25", "--seed", "9",
		"-o", db, "--table", "wave1", "--save", saved)
	require.NoError(t, err)

	_, err = os.Stat(db)
	require.NoError(t, err)
	f, err := config.Load(saved)
	require.NoError(t, err)
	assert.Equal(t, 25, f.SampleSize)
	assert.Equal(t, int64(9), f.Seed)
	assert.Equal(t, "wave1", f.Output.Table)
}

func TestGenerateFallbackWarning(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
sample_size: 30
variables:
  - {name: A, role: iv}
  - {name: B, role: m}
  - {name: C, role: y}
paths:
  - {from: A, to: B, r: 0.9}
  - {from: A, to: C, r: 0.9}
  - {from: B, to: C, r: -0.9}
`), 0o644))

	out, err := execute(t, "generate", "-c", cfgPath, "--log-level", "error", "-o", filepath.Join(dir, "o.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: covariance matrix is not positive semi-definite")

	out, err = execute(t, "matrix", "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "not positive semi-definite")
}

func TestGenerateRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "saved.yaml")
	out := filepath.Join(dir, "o.csv")
	_, err := execute(t, "generate", "--log-level", "error", "-n", "0", "-o", out, "--save", saved)
	require.ErrorIs(t, err, construct.ErrSampleSize)
	assert.NoFileExists(t, saved, "an invalid configuration must not be saved")
	assert.NoFileExists(t, out)

	_, err = execute(t, "generate", "--log-level", "error", "--format", "parquet", "-o", out, "--save", saved)
	require.ErrorIs(t, err, config.ErrInvalidFile)
	assert.NoFileExists(t, saved)

	_, err = execute(t, "generate", "--log-format", "xml", "-o", filepath.Join(t.TempDir(), "o.csv"))
	require.Error(t, err)
}

func TestGenerateSingleRespondent(t *testing.T) {
	out, err := execute(t, "generate", "--log-level", "error", "-n", "1", "-o", filepath.Join(t.TempDir(), "o.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 rows")
	assert.NotContains(t, out, "Realized latent correlation:")
}

func TestMaxAbsDiff(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 0.4}, {0.4, 1}})
	require.NoError(t, err)
	b, err := matrix.NewDenseFromRows([][]float64{{1, 0.45}, {0.3, 1}})
	require.NoError(t, err)

	d, err := maxAbsDiff(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, d, 1e-12)
}

func TestMatrixCommand(t *testing.T) {
	out, err := execute(t, "matrix", "--chain")
	require.NoError(t, err)
	assert.Contains(t, out, "Mode: chain")
	assert.Contains(t, out, "0.60")
	assert.Contains(t, out, "0.35")
	assert.Contains(t, out, "✓ positive semi-definite")
}

// scripted answers prompts by message, falling back to the prompt default.
func scripted(answers map[string]string, confirm bool) askFunc {
	return func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		switch pr := p.(type) {
		case *survey.Input:
			ans, ok := answers[pr.Message]
			if !ok {
				ans = pr.Default
			}
			*(response.(*string)) = ans
		case *survey.Confirm:
			*(response.(*bool)) = confirm
		default:
			return fmt.Errorf("unexpected prompt %T", p)
		}
		return nil
	}
}

func TestPromptFile(t *testing.T) {
	f := config.Default()
	ask := scripted(map[string]string{
		"Sample size (N):":                  "300",
		"Number of mediator variables:":     "1",
		"mediator variable 1 name:":         "Trust",
		"mediator variable 1 scale points:": "7",
		"independent variable 1 items:":     "2",
	}, true)
	require.NoError(t, promptFile(ask, f))

	cfg, err := f.SimulationConfig()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.SampleSize)
	assert.True(t, cfg.ChainMode)
	assert.Equal(t, []construct.VariableSpec{
		{Name: "IV1", Role: construct.Independent, ItemCount: 2, ScaleLevels: 5},
		{Name: "Trust", Role: construct.Mediator, ItemCount: 4, ScaleLevels: 7},
		{Name: "Y1", Role: construct.Dependent, ItemCount: 4, ScaleLevels: 5},
	}, cfg.Variables)
}

func TestPromptChainOnlyWithMediators(t *testing.T) {
	f := config.Default()
	ask := scripted(map[string]string{"Number of mediator variables:": "0"}, true)
	require.NoError(t, promptFile(ask, f))
	assert.False(t, f.ChainMode)
	assert.Len(t, f.Variables, 2)
}

func TestIntValidator(t *testing.T) {
	v := intValidator(1, 10)
	assert.NoError(t, v("5"))
	assert.Error(t, v("x"))
	assert.Error(t, v("11"))
}
