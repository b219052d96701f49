// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/katalvlaran/likertsim/table"
)

// WriteCSV writes the header row followed by one record per respondent.
func WriteCSV(w io.Writer, t *table.Table) error {
	if t == nil {
		return ErrNilTable
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}
