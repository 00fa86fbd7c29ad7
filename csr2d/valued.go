// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csr2d

// ValuedCSR2D is a CSR2D that additionally carries one float64 value per
// stored entry, satisfying I4 of the data model: the values array always
// has exactly as many elements as there are stored column indices, in the
// same row-major order.
type ValuedCSR2D struct {
	*CSR2D
	values []float64
}

// NewValuedCSR2D allocates a valued CSR2D of the given shape.
func NewValuedCSR2D(rows, cols, nnzHint int) *ValuedCSR2D {
	return &ValuedCSR2D{
		CSR2D:  NewCSR2D(rows, cols, nnzHint),
		values: make([]float64, 0, nnzHint),
	}
}

// Add appends a single valued entry at (row, col). See CSR2D.Add for the
// ordering discipline this enforces.
func (v *ValuedCSR2D) Add(row, col int, value float64) error {
	if err := v.CSR2D.Add(row, col); err != nil {
		return err
	}
	v.values = append(v.values, value)
	return nil
}

// ExtendValued calls Add for every (row, col, value) triple, stopping at
// the first error.
func (v *ValuedCSR2D) ExtendValued(entries []ValuedEntry) error {
	for _, e := range entries {
		if err := v.Add(e.Row, e.Col, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// ValuedEntry is a single (row, col, value) triple, used by ExtendValued
// and by algorithms that build a ValuedCSR2D from a slice of entries.
type ValuedEntry struct {
	Row, Col int
	Value    float64
}

// At returns the value stored at (row, col), and whether an entry is
// actually stored there. Unlike dense matrix At methods this never
// panics on a missing entry — CSR storage has no implicit zero fill
// obligation at this layer; that's what the ImplicitValued and
// PaddedMatrix wrappers are for.
func (v *ValuedCSR2D) At(row, col int) (value float64, ok bool) {
	v.finalizeOffsets()
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		return 0, false
	}
	r := v.rowSlice(row)
	base := v.rowOffsets[row]
	lo, hi := 0, len(r)
	for lo < hi {
		mid := (lo + hi) / 2
		if r[mid] < col {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(r) && r[lo] == col {
		return v.values[base+lo], true
	}
	return 0, false
}

// RowValues returns the stored values for row i, in the same order as the
// column indices returned by Row(i).
func (v *ValuedCSR2D) RowValues(i int) []float64 {
	v.finalizeOffsets()
	return v.values[v.rowOffsets[i]:v.rowOffsets[i+1]]
}

// Transpose returns a new ValuedCSR2D whose (j, i) entries mirror (i, j)
// in the receiver, values included.
func (v *ValuedCSR2D) Transpose() *ValuedCSR2D {
	v.finalizeOffsets()
	nnz := len(v.colIndices)
	t := NewValuedCSR2D(v.cols, v.rows, nnz)

	counts := make([]int, v.cols+1)
	for _, j := range v.colIndices {
		counts[j+1]++
	}
	for j := 0; j < v.cols; j++ {
		counts[j+1] += counts[j]
	}
	t.rowOffsets = append([]int(nil), counts...)

	colIndices := make([]int, nnz)
	values := make([]float64, nnz)
	cursor := append([]int(nil), counts...)
	for i := 0; i < v.rows; i++ {
		for k := v.rowOffsets[i]; k < v.rowOffsets[i+1]; k++ {
			j := v.colIndices[k]
			colIndices[cursor[j]] = i
			values[cursor[j]] = v.values[k]
			cursor[j]++
		}
	}
	t.colIndices = colIndices
	t.values = values
	t.currentRow = t.rows
	t.started = nnz > 0
	t.finalized = true
	return t
}

// Values returns the full stored-value array in row-major order. The
// caller must not mutate the returned slice.
func (v *ValuedCSR2D) Values() []float64 {
	return v.values
}
