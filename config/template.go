// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/likertsim/construct"
)

// Template returns a File listing the default constructs explicitly, so a
// user can edit names, item counts and scales in place.
func Template() *File {
	f := Default()
	specs, _ := construct.Defaults(f.Counts)
	for _, s := range specs {
		f.Variables = append(f.Variables, FromSpec(s))
	}

	return f
}

// FromSpec converts a construct back to its file form.
func FromSpec(s construct.VariableSpec) Variable {
	return Variable{Name: s.Name, Role: s.Role.Label(), Items: s.ItemCount, Scale: s.ScaleLevels}
}

// Write encodes f as YAML.
func Write(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return enc.Close()
}

// Save writes f to path as YAML, replacing any existing file.
func Save(path string, f *File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err = Write(out, f); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
