// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/likertsim/table"
)

// DefaultSheet is the worksheet name used when none is given.
const DefaultSheet = "Sheet1"

// WriteXLSX writes t as a single-sheet workbook. Cells hold integers; the
// first row holds the column names. An empty sheet name means DefaultSheet.
func WriteXLSX(w io.Writer, t *table.Table, sheet string) error {
	if t == nil {
		return ErrNilTable
	}
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("failed to open sheet: %w", err)
	}

	header := make([]interface{}, len(t.Columns))
	for j, c := range t.Columns {
		header[j] = c
	}
	if err = sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	values := make([]interface{}, len(t.Columns))
	for i, row := range t.Rows {
		for j, v := range row {
			values[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i, err)
		}
		if err = sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	if err = sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}
	if err = f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
