// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csr2d provides the compressed-sparse-row (CSR) storage substrate
// shared by every structural matrix wrapper in this module: a row-offset
// array and a column-index array (csr2d.CSR2D), plus a valued variant that
// additionally carries a parallel array of entry values (csr2d.ValuedCSR2D).
//
// Entries must be appended through Add in non-decreasing row-major
// lexicographic order; this mirrors the construction discipline of
// github.com/james-bowman/sparse's CSR/CSC types, generalized to reject
// out-of-order and duplicate coordinates rather than silently overwriting
// them, since callers of this package build a graph's adjacency once and
// read it many times.
package csr2d

import "math"

// maxIndex is the declared width of row, column and sparse indices. Every
// pack repo that deals in matrix or graph indices (gonum, james-bowman,
// lvlath) settles on a native int; we bound it at MaxInt32 so that
// MaxedOut* errors are reachable on 32-bit builds too.
const maxIndex = math.MaxInt32

// CSR2D is a compressed-sparse-row matrix storing only the coordinates of
// its non-zero structure, with no associated values. It underlies every
// unvalued structural wrapper (Square, UpperTriangular, Symmetric, ...).
type CSR2D struct {
	rows, cols int
	rowOffsets []int
	colIndices []int

	currentRow int
	started    bool
	finalized  bool
}

// NewCSR2D allocates a CSR2D of the given shape. nnzHint pre-sizes the
// column-index backing array; it is purely a capacity hint and does not
// affect NNZ, which starts at zero.
func NewCSR2D(rows, cols, nnzHint int) *CSR2D {
	if rows < 0 || cols < 0 {
		panic("csr2d: negative dimension")
	}
	return &CSR2D{
		rows:       rows,
		cols:       cols,
		rowOffsets: make([]int, rows+1),
		colIndices: make([]int, 0, nnzHint),
	}
}

// Dims returns the shape of the matrix.
func (c *CSR2D) Dims() (rows, cols int) {
	return c.rows, c.cols
}

// NNZ returns the number of stored (non-zero) entries.
func (c *CSR2D) NNZ() int {
	return len(c.colIndices)
}

// RowNNZ returns the number of stored entries in row i.
func (c *CSR2D) RowNNZ(i int) int {
	c.finalizeOffsets()
	if i < 0 || i >= c.rows {
		panic("csr2d: row index out of range")
	}
	return c.rowOffsets[i+1] - c.rowOffsets[i]
}

func (c *CSR2D) lastCol() int {
	if len(c.colIndices) == 0 {
		return -1
	}
	return c.colIndices[len(c.colIndices)-1]
}

// Add appends a single entry at (row, col). Entries must be supplied in
// strictly increasing column order within a row, and in non-decreasing row
// order across calls — i.e. overall non-decreasing (row, col) lexicographic
// order per §4.1 of the data model. Violations are reported as a
// *MutabilityError without mutating the receiver.
func (c *CSR2D) Add(row, col int) error {
	if row < 0 || row >= c.rows {
		return outOfBounds(row, col, c.rows, c.cols, "row out of range")
	}
	if col < 0 || col >= c.cols {
		return outOfBounds(row, col, c.rows, c.cols, "column out of range")
	}
	if c.started {
		if row < c.currentRow {
			return unorderedEntry(row, col)
		}
		if row == c.currentRow {
			last := c.lastCol()
			if col == last {
				return duplicateEntry(row, col)
			}
			if col < last {
				return unorderedEntry(row, col)
			}
		}
	}
	if len(c.colIndices) >= maxIndex {
		return ErrMaxedOutSparseIndex
	}
	for r := c.currentRow + 1; r <= row; r++ {
		c.rowOffsets[r] = len(c.colIndices)
	}
	c.colIndices = append(c.colIndices, col)
	c.currentRow = row
	c.started = true
	c.finalized = false
	return nil
}

// Extend calls Add for every (row, col) pair in entries, stopping at the
// first error.
func (c *CSR2D) Extend(entries [][2]int) error {
	for _, e := range entries {
		if err := c.Add(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// finalizeOffsets fills the tail of rowOffsets — every row strictly after
// the last row touched by Add — with the current NNZ, establishing
// row_offsets[rows] = nnz (I1) for rows that were never, or not yet fully,
// populated.
func (c *CSR2D) finalizeOffsets() {
	if c.finalized {
		return
	}
	nnz := len(c.colIndices)
	for r := c.currentRow + 1; r <= c.rows; r++ {
		c.rowOffsets[r] = nnz
	}
	c.finalized = true
}

// rowSlice returns the stored column indices for row i, in ascending order.
func (c *CSR2D) rowSlice(i int) []int {
	c.finalizeOffsets()
	return c.colIndices[c.rowOffsets[i]:c.rowOffsets[i+1]]
}

// Has reports whether (row, col) is a stored entry.
func (c *CSR2D) Has(row, col int) bool {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return false
	}
	r := c.rowSlice(row)
	lo, hi := 0, len(r)
	for lo < hi {
		mid := (lo + hi) / 2
		if r[mid] < col {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(r) && r[lo] == col
}

// Transpose returns a new CSR2D whose (j, i) entries mirror (i, j) in the
// receiver, computed with one auxiliary counting pass (counting sort by
// destination row) in linear time, per §4.1.
func (c *CSR2D) Transpose() *CSR2D {
	c.finalizeOffsets()
	nnz := len(c.colIndices)
	t := NewCSR2D(c.cols, c.rows, nnz)

	counts := make([]int, c.cols+1)
	for _, j := range c.colIndices {
		counts[j+1]++
	}
	for j := 0; j < c.cols; j++ {
		counts[j+1] += counts[j]
	}
	t.rowOffsets = append([]int(nil), counts...)

	colIndices := make([]int, nnz)
	cursor := append([]int(nil), counts...)
	for i := 0; i < c.rows; i++ {
		for k := c.rowOffsets[i]; k < c.rowOffsets[i+1]; k++ {
			j := c.colIndices[k]
			colIndices[cursor[j]] = i
			cursor[j]++
		}
	}
	t.colIndices = colIndices
	t.currentRow = t.rows
	t.started = nnz > 0
	t.finalized = true
	return t
}

// Rank returns the number of stored entries lexicographically strictly
// less than (row, col).
func (c *CSR2D) Rank(row, col int) int {
	c.finalizeOffsets()
	if row >= c.rows {
		return len(c.colIndices)
	}
	if row < 0 {
		return 0
	}
	count := c.rowOffsets[row]
	r := c.rowSlice(row)
	lo, hi := 0, len(r)
	for lo < hi {
		mid := (lo + hi) / 2
		if r[mid] < col {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return count + lo
}

// Select returns the coordinate of the k-th stored entry (0-indexed) in
// row-major order, the inverse of Rank.
func (c *CSR2D) Select(k int) (row, col int, ok bool) {
	c.finalizeOffsets()
	if k < 0 || k >= len(c.colIndices) {
		return 0, 0, false
	}
	lo, hi := 0, c.rows
	for lo < hi {
		mid := (lo + hi) / 2
		if c.rowOffsets[mid+1] <= k {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, c.colIndices[k], true
}

// EmptyRows returns the row indices whose stored range is empty, in
// ascending order.
func (c *CSR2D) EmptyRows() []int {
	c.finalizeOffsets()
	var empty []int
	for i := 0; i < c.rows; i++ {
		if c.rowOffsets[i] == c.rowOffsets[i+1] {
			empty = append(empty, i)
		}
	}
	return empty
}
