// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/katalvlaran/likertsim/config"
	"github.com/katalvlaran/likertsim/construct"
)

// askFunc matches survey.AskOne so tests can script answers.
type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// intValidator accepts integers in [lo, hi].
func intValidator(lo, hi int) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("please enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("please enter a number between %d and %d", lo, hi)
		}
		return nil
	}
}

func askInt(ask askFunc, message string, def, lo, hi int) (int, error) {
	var raw string
	prompt := &survey.Input{Message: message, Default: strconv.Itoa(def)}
	if err := ask(prompt, &raw, survey.WithValidator(intValidator(lo, hi))); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", message, err)
	}

	return n, nil
}

// promptFile walks the user through the model and rewrites f in place:
// sample size, construct counts per role, the chain switch (only offered
// when there are mediators), then name, items and scale per construct.
func promptFile(ask askFunc, f *config.File) error {
	n, err := askInt(ask, "Sample size (N):", f.SampleSize, 1, 1_000_000)
	if err != nil {
		return err
	}
	f.SampleSize = n

	roles := []construct.Role{construct.Independent, construct.Mediator, construct.Dependent}
	defaults := []int{f.Counts.Independent, f.Counts.Mediators, f.Counts.Dependents}
	counts := make([]int, len(roles))
	for i, role := range roles {
		if counts[i], err = askInt(ask, fmt.Sprintf("Number of %s variables:", role.Label()), defaults[i], 0, 20); err != nil {
			return err
		}
	}
	f.Counts = construct.Counts{Independent: counts[0], Mediators: counts[1], Dependents: counts[2]}
	if f.Counts.Total() == 0 {
		return errors.New("at least one variable is required")
	}

	f.ChainMode = false
	if f.Counts.Mediators > 0 {
		chain := false
		prompt := &survey.Confirm{
			Message: "Use chain (serial) mediation structure?",
			Default: false,
		}
		if err = ask(prompt, &chain); err != nil {
			return err
		}
		f.ChainMode = chain
	}

	f.Variables = f.Variables[:0]
	for i, role := range roles {
		for idx := 1; idx <= counts[i]; idx++ {
			v, err := promptVariable(ask, construct.DefaultSpec(role, idx), idx)
			if err != nil {
				return err
			}
			f.Variables = append(f.Variables, v)
		}
	}

	return nil
}

func promptVariable(ask askFunc, def construct.VariableSpec, idx int) (config.Variable, error) {
	label := fmt.Sprintf("%s variable %d", def.Role.Label(), idx)
	v := config.FromSpec(def)

	prompt := &survey.Input{Message: label + " name:", Default: def.Name}
	if err := ask(prompt, &v.Name, survey.WithValidator(survey.Required)); err != nil {
		return v, err
	}
	v.Name = strings.TrimSpace(v.Name)

	var err error
	if v.Items, err = askInt(ask, label+" items:", def.ItemCount, construct.MinItemCount, 50); err != nil {
		return v, err
	}
	if v.Scale, err = askInt(ask, label+" scale points:", def.ScaleLevels, construct.MinScaleLevels, construct.MaxScaleLevels); err != nil {
		return v, err
	}

	return v, nil
}

// surveyAsk is the production askFunc.
var surveyAsk askFunc = survey.AskOne
