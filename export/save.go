// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/likertsim/table"
)

// Format names accepted by Save.
const (
	FormatXLSX   = "xlsx"
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

// Target says where Save writes.
type Target struct {
	Path   string
	Format string
	// Sheet is the xlsx worksheet name (default DefaultSheet).
	Sheet string
	// Table is the SQLite table name (default DefaultTableName).
	Table string
}

// Save writes t to dst.Path in dst.Format.
func Save(ctx context.Context, dst Target, t *table.Table) error {
	switch dst.Format {
	case FormatXLSX:
		return saveFile(dst.Path, func(w io.Writer) error { return WriteXLSX(w, t, dst.Sheet) })
	case FormatCSV:
		return saveFile(dst.Path, func(w io.Writer) error { return WriteCSV(w, t) })
	case FormatSQLite:
		name := dst.Table
		if name == "" {
			name = DefaultTableName
		}
		return SaveSQLite(ctx, dst.Path, name, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, dst.Format)
	}
}

func saveFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err = write(out); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
