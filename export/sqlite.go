// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/katalvlaran/likertsim/table"
)

// DefaultTableName is used by Save when no SQLite table name is configured.
const DefaultTableName = "responses"

// SaveSQLite writes t into table name of the SQLite database at path,
// replacing a previous table of that name. Rows get a 1-based respondent id.
func SaveSQLite(ctx context.Context, path, name string, t *table.Table) error {
	if t == nil {
		return ErrNilTable
	}
	if strings.TrimSpace(name) == "" {
		return ErrTableName
	}
	if dup := t.Duplicates(); len(dup) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateColumns, strings.Join(dup, ", "))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err = writeTable(ctx, tx, name, t); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

func writeTable(ctx context.Context, tx *sql.Tx, name string, t *table.Table) error {
	qname := quoteIdent(name)
	cols := make([]string, len(t.Columns))
	defs := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns)+1)
	marks[0] = "?"
	for j, c := range t.Columns {
		cols[j] = quoteIdent(c)
		defs[j] = cols[j] + " INTEGER NOT NULL"
		marks[j+1] = "?"
	}

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+qname); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}
	create := fmt.Sprintf("CREATE TABLE %s (respondent INTEGER PRIMARY KEY, %s)", qname, strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (respondent, %s) VALUES (%s)",
		qname, strings.Join(cols, ", "), strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns)+1)
	for i, row := range t.Rows {
		args[0] = i + 1
		for j, v := range row {
			args[j+1] = v
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert respondent %d: %w", i+1, err)
		}
	}

	return nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
