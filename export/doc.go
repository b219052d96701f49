// SPDX-License-Identifier: MIT
// Package export persists an assembled table.
//
// Three formats are supported: an .xlsx workbook (header row, no index
// column, one sheet), RFC 4180 CSV, and a SQLite table with one row per
// respondent. Save picks the writer by format name.
package export
