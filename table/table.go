// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/likertsim/items"
)

const (
	opAppend   = "Append"
	opAssemble = "Assemble"
)

// Table is the assembled output: Rows[i][j] is respondent i's answer to the
// item named Columns[j]. Every row has len(Columns) values.
type Table struct {
	Columns []string
	Rows    [][]int
}

// Block is one construct's responses under its column prefix.
type Block struct {
	Name      string
	Responses items.Responses
}

// ColumnName returns the name of item i (0-based) of construct name.
func ColumnName(name string, i int) string {
	return fmt.Sprintf("%s%d", name, i+1)
}

// Assembler accumulates blocks in order. The zero value is ready to use.
type Assembler struct {
	blocks []Block
	rows   int
	cols   int
}

// Append adds the next construct's responses.
// Errors: ErrEmptyBlock, ErrRaggedBlock, ErrRowMismatch.
func (a *Assembler) Append(name string, r items.Responses) error {
	n, k := r.NumRespondents(), r.NumItems()
	if n == 0 || k == 0 {
		return fmt.Errorf("%s %q: %w", opAppend, name, ErrEmptyBlock)
	}
	for i, row := range r {
		if len(row) != k {
			return fmt.Errorf("%s %q: %w: row %d has %d items, want %d", opAppend, name, ErrRaggedBlock, i, len(row), k)
		}
	}
	if len(a.blocks) > 0 && n != a.rows {
		return fmt.Errorf("%s %q: %w: %d rows, want %d", opAppend, name, ErrRowMismatch, n, a.rows)
	}

	a.blocks = append(a.blocks, Block{Name: name, Responses: r})
	a.rows = n
	a.cols += k

	return nil
}

// Table builds the wide table from the appended blocks. The result shares
// no memory with the blocks.
// Complexity: O(rows·cols).
func (a *Assembler) Table() (*Table, error) {
	if len(a.blocks) == 0 {
		return nil, ErrNoBlocks
	}

	t := &Table{
		Columns: make([]string, 0, a.cols),
		Rows:    make([][]int, a.rows),
	}
	for _, b := range a.blocks {
		for j := 0; j < b.Responses.NumItems(); j++ {
			t.Columns = append(t.Columns, ColumnName(b.Name, j))
		}
	}
	for i := range t.Rows {
		row := make([]int, 0, a.cols)
		for _, b := range a.blocks {
			row = append(row, b.Responses[i]...)
		}
		t.Rows[i] = row
	}

	return t, nil
}

// Assemble is Append over blocks followed by Table.
func Assemble(blocks []Block) (*Table, error) {
	var a Assembler
	for _, b := range blocks {
		if err := a.Append(b.Name, b.Responses); err != nil {
			return nil, fmt.Errorf("%s: %w", opAssemble, err)
		}
	}

	return a.Table()
}

// NumRows returns the respondent count.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.Columns) }

// Column returns a copy of the first column called name.
func (t *Table) Column(name string) ([]int, bool) {
	for j, c := range t.Columns {
		if c != name {
			continue
		}
		out := make([]int, len(t.Rows))
		for i, row := range t.Rows {
			out[i] = row[j]
		}
		return out, true
	}

	return nil, false
}

// Counts tallies the values of column j.
func (t *Table) Counts(j int) map[int]int {
	out := make(map[int]int)
	for _, row := range t.Rows {
		out[row[j]]++
	}

	return out
}

// Duplicates lists column names that occur more than once, in order of
// their second occurrence.
func (t *Table) Duplicates() []string {
	seen := make(map[string]int, len(t.Columns))
	var out []string
	for _, c := range t.Columns {
		seen[c]++
		if seen[c] == 2 {
			out = append(out, c)
		}
	}

	return out
}

// Records renders the table as strings, header first. Used by text exporters.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, append([]string(nil), t.Columns...))
	for _, row := range t.Rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = fmt.Sprint(v)
		}
		out = append(out, rec)
	}

	return out
}
