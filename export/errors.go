// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrNilTable indicates a nil table was passed to a writer.
	ErrNilTable = errors.New("export: nil table")

	// ErrUnknownFormat indicates Save was asked for a format it does not know.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrDuplicateColumns indicates a format that needs unique column names
	// received colliding ones.
	ErrDuplicateColumns = errors.New("export: duplicate column names")

	// ErrTableName indicates an empty SQLite table name.
	ErrTableName = errors.New("export: empty table name")
)
