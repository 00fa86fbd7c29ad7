// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csr2d

// EntryIter is a double-ended, exact-size iterator over the stored
// entries of a CSR2D, in row-major ascending-column order. It follows the
// cursor idiom of gonum/graph/iterator.OrderedNodes, extended with an
// independent back cursor: Next and NextBack advance a shared flat index
// range [front, back) over the underlying column-index array, so when the
// two cursors meet inside the same row the front cursor naturally consumes
// the remaining elements — there is no special-case crossing logic to get
// wrong.
type EntryIter struct {
	csr         *CSR2D
	front, back int
}

// Sparse returns an EntryIter over every stored (row, col) coordinate.
func (c *CSR2D) Sparse() *EntryIter {
	c.finalizeOffsets()
	return &EntryIter{csr: c, front: 0, back: len(c.colIndices)}
}

// Len returns the number of entries remaining to be iterated.
func (it *EntryIter) Len() int {
	return it.back - it.front
}

// Next returns the next entry in ascending row-major order, and whether
// one was available.
func (it *EntryIter) Next() (row, col int, ok bool) {
	if it.front >= it.back {
		return 0, 0, false
	}
	row, col, _ = it.csr.Select(it.front)
	it.front++
	return row, col, true
}

// NextBack returns the next entry from the end of the iteration in
// descending row-major order, and whether one was available.
func (it *EntryIter) NextBack() (row, col int, ok bool) {
	if it.front >= it.back {
		return 0, 0, false
	}
	it.back--
	row, col, _ = it.csr.Select(it.back)
	return row, col, true
}

// RowIter is a double-ended, exact-size iterator over the column indices
// of a single row.
type RowIter struct {
	cols        []int
	front, back int
}

// Row returns a RowIter over the column indices of row i, ascending.
func (c *CSR2D) Row(i int) *RowIter {
	s := c.rowSlice(i)
	return &RowIter{cols: s, front: 0, back: len(s)}
}

// Len returns the number of column indices remaining to be iterated.
func (it *RowIter) Len() int {
	return it.back - it.front
}

// Next returns the next column index in ascending order.
func (it *RowIter) Next() (col int, ok bool) {
	if it.front >= it.back {
		return 0, false
	}
	col = it.cols[it.front]
	it.front++
	return col, true
}

// NextBack returns the next column index from the end, descending.
func (it *RowIter) NextBack() (col int, ok bool) {
	if it.front >= it.back {
		return 0, false
	}
	it.back--
	return it.cols[it.back], true
}

// ValuedEntryIter is a double-ended, exact-size iterator over the stored
// (row, col, value) entries of a ValuedCSR2D, in row-major ascending
// column order.
type ValuedEntryIter struct {
	csr         *ValuedCSR2D
	front, back int
}

// Sparse returns a ValuedEntryIter over every stored (row, col, value)
// entry.
func (v *ValuedCSR2D) Sparse() *ValuedEntryIter {
	v.finalizeOffsets()
	return &ValuedEntryIter{csr: v, front: 0, back: len(v.colIndices)}
}

// Len returns the number of entries remaining to be iterated.
func (it *ValuedEntryIter) Len() int {
	return it.back - it.front
}

// Next returns the next entry in ascending row-major order.
func (it *ValuedEntryIter) Next() (row, col int, value float64, ok bool) {
	if it.front >= it.back {
		return 0, 0, 0, false
	}
	row, col, _ = it.csr.Select(it.front)
	value = it.csr.values[it.front]
	it.front++
	return row, col, value, true
}

// NextBack returns the next entry from the end, descending.
func (it *ValuedEntryIter) NextBack() (row, col int, value float64, ok bool) {
	if it.front >= it.back {
		return 0, 0, 0, false
	}
	it.back--
	row, col, _ = it.csr.Select(it.back)
	value = it.csr.values[it.back]
	return row, col, value, true
}
