// SPDX-License-Identifier: MIT

package table

import "errors"

var (
	// ErrRowMismatch indicates blocks with different respondent counts.
	ErrRowMismatch = errors.New("table: blocks disagree on row count")

	// ErrEmptyBlock indicates a block with no respondents or no items.
	ErrEmptyBlock = errors.New("table: empty block")

	// ErrRaggedBlock indicates a block whose rows have different lengths.
	ErrRaggedBlock = errors.New("table: ragged block")

	// ErrNoBlocks indicates Table was called before any Append.
	ErrNoBlocks = errors.New("table: no blocks")
)
