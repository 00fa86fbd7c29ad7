// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/csrkit/csrkit/csr2d"

// DiagFunc computes the imputed diagonal value for row i. It must be a
// pure function of i.
type DiagFunc func(i int) float64

// PaddedDiagonal wraps an inner rectangular or square ValuedCSR2D plus a
// pure diagonal function. The logical diagonal cell (i, i) is defined
// whenever it is stored, or whenever i is within the inner matrix's
// smaller dimension; reads at a missing diagonal cell return diag(i).
type PaddedDiagonal struct {
	inner *csr2d.ValuedCSR2D
	diag  DiagFunc
}

// NewPaddedDiagonal wraps inner with the given diagonal function.
func NewPaddedDiagonal(inner *csr2d.ValuedCSR2D, diag DiagFunc) *PaddedDiagonal {
	return &PaddedDiagonal{inner: inner, diag: diag}
}

// Dims returns the inner matrix's shape.
func (p *PaddedDiagonal) Dims() (rows, cols int) {
	return p.inner.Dims()
}

// Add appends a stored entry; see csr2d.ValuedCSR2D.Add.
func (p *PaddedDiagonal) Add(i, j int, v float64) error {
	if err := p.inner.Add(i, j, v); err != nil {
		return liftMutabilityError("PaddedDiagonal", err)
	}
	return nil
}

// minDim returns min(rows, cols).
func (p *PaddedDiagonal) minDim() int {
	rows, cols := p.inner.Dims()
	if rows < cols {
		return rows
	}
	return cols
}

// At returns the logical value at (i, j): the stored value if present,
// the imputed diag(i) if (i, j) is the diagonal and i is within the
// smaller dimension, or "absent" (ok=false) otherwise.
func (p *PaddedDiagonal) At(i, j int) (value float64, ok bool) {
	if v, has := p.inner.At(i, j); has {
		return v, true
	}
	if i == j && i < p.minDim() {
		return p.diag(i), true
	}
	return 0, false
}

// IsImputed reports whether (i, j) is a synthetic diagonal cell rather
// than a stored entry.
func (p *PaddedDiagonal) IsImputed(i, j int) bool {
	if p.inner.Has(i, j) {
		return false
	}
	return i == j && i < p.minDim()
}

// PaddedRowEntry is one element of a PaddedDiagonal row iteration: either
// a stored (col, value) pair or the imputed diagonal cell.
type PaddedRowEntry struct {
	Col     int
	Value   float64
	Imputed bool
}

// SparseRow returns row i's logical entries in ascending column order,
// interleaving the imputed diagonal cell (i, diag(i)) into the stored
// stream at its correct position when it is not already stored and
// i < min(rows, cols). The returned slice's length is the stored row
// length plus one if the diagonal was imputed, matching T5.
func (p *PaddedDiagonal) SparseRow(i int) []PaddedRowEntry {
	cols := p.inner.Row(i)
	values := p.inner.RowValues(i)
	needsDiagonal := i < p.minDim() && !p.inner.Has(i, i)

	out := make([]PaddedRowEntry, 0, cols.Len()+1)
	inserted := false
	idx := 0
	for {
		col, ok := cols.Next()
		if !ok {
			break
		}
		if needsDiagonal && !inserted && col > i {
			out = append(out, PaddedRowEntry{Col: i, Value: p.diag(i), Imputed: true})
			inserted = true
		}
		out = append(out, PaddedRowEntry{Col: col, Value: values[idx]})
		idx++
	}
	if needsDiagonal && !inserted {
		out = append(out, PaddedRowEntry{Col: i, Value: p.diag(i), Imputed: true})
	}
	return out
}
