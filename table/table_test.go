// SPDX-License-Identifier: MIT
package table_test

import (
	"testing"

	"github.com/katalvlaran/likertsim/items"
	"github.com/katalvlaran/likertsim/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleLayout(t *testing.T) {
	t.Parallel()

	tb, err := table.Assemble([]table.Block{
		{Name: "IV1", Responses: items.Responses{{1, 2}, {3, 4}, {5, 1}}},
		{Name: "Y1", Responses: items.Responses{{2}, {2}, {3}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"IV11", "IV12", "Y11"}, tb.Columns)
	assert.Equal(t, [][]int{{1, 2, 2}, {3, 4, 2}, {5, 1, 3}}, tb.Rows)
	assert.Equal(t, 3, tb.NumRows())
	assert.Equal(t, 3, tb.NumCols())

	col, ok := tb.Column("IV12")
	require.True(t, ok)
	assert.Equal(t, []int{2, 4, 1}, col)
	_, ok = tb.Column("M11")
	assert.False(t, ok)

	assert.Equal(t, map[int]int{2: 2, 3: 1}, tb.Counts(2))
	assert.Empty(t, tb.Duplicates())

	assert.Equal(t, [][]string{
		{"IV11", "IV12", "Y11"},
		{"1", "2", "2"},
		{"3", "4", "2"},
		{"5", "1", "3"},
	}, tb.Records())
}

func TestAssembleCopies(t *testing.T) {
	t.Parallel()

	r := items.Responses{{1}, {2}}
	tb, err := table.Assemble([]table.Block{{Name: "A", Responses: r}})
	require.NoError(t, err)
	r[0][0] = 9
	assert.Equal(t, 1, tb.Rows[0][0])
}

func TestAssembleDuplicates(t *testing.T) {
	t.Parallel()

	tb, err := table.Assemble([]table.Block{
		{Name: "X", Responses: items.Responses{{1, 1}}},
		{Name: "X", Responses: items.Responses{{2}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"X1", "X2", "X1"}, tb.Columns)
	assert.Equal(t, []string{"X1"}, tb.Duplicates())

	col, ok := tb.Column("X1")
	require.True(t, ok)
	assert.Equal(t, []int{1}, col)
}

func TestAssemblerErrors(t *testing.T) {
	t.Parallel()

	var a table.Assembler
	_, err := a.Table()
	require.ErrorIs(t, err, table.ErrNoBlocks)

	require.ErrorIs(t, a.Append("E", nil), table.ErrEmptyBlock)
	require.ErrorIs(t, a.Append("R", items.Responses{{1, 2}, {1}}), table.ErrRaggedBlock)
	require.NoError(t, a.Append("A", items.Responses{{1}, {2}}))
	require.ErrorIs(t, a.Append("B", items.Responses{{1}}), table.ErrRowMismatch)

	tb, err := a.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, tb.Columns)

	_, err = table.Assemble([]table.Block{
		{Name: "A", Responses: items.Responses{{1}}},
		{Name: "B", Responses: items.Responses{{1}, {2}}},
	})
	require.ErrorIs(t, err, table.ErrRowMismatch)
}
