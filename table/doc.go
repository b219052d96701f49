// SPDX-License-Identifier: MIT
// Package table assembles per-construct item responses into one wide,
// row-major table with named columns.
//
// Columns are named {construct}{i} with i starting at 1, laid out in
// construct order and then item order. Names are used verbatim: two
// constructs with the same name produce colliding column names, which
// Duplicates reports but Assemble does not resolve.
package table
