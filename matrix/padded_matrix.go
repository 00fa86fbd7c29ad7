// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/csrkit/csrkit/csr2d"

// PadFunc computes the imputed value for a missing cell (i, j). It must
// be a pure function of (i, j).
type PadFunc func(i, j int) float64

// PaddedMatrix wraps a rectangular inner ValuedCSR2D plus a pure pad
// function, presenting a logical max(rows,cols) x max(rows,cols) square
// view. Every cell outside the inner matrix's bounds — and every inner
// cell that is simply not stored — reads as pad(i, j).
type PaddedMatrix struct {
	inner *csr2d.ValuedCSR2D
	pad   PadFunc
}

// NewPaddedMatrix wraps inner with the given pad function.
func NewPaddedMatrix(inner *csr2d.ValuedCSR2D, pad PadFunc) *PaddedMatrix {
	return &PaddedMatrix{inner: inner, pad: pad}
}

// LogicalN returns the logical square extent, max(rows, cols) of the
// inner matrix.
func (p *PaddedMatrix) LogicalN() int {
	rows, cols := p.innerDims()
	n, _ := padCoordinate(0, 0, rows, cols)
	return n
}

func (p *PaddedMatrix) innerDims() (rows, cols int) {
	return p.inner.Dims()
}

// Add appends a stored entry in the inner rectangular matrix.
func (p *PaddedMatrix) Add(i, j int, v float64) error {
	if err := p.inner.Add(i, j, v); err != nil {
		return liftMutabilityError("PaddedMatrix", err)
	}
	return nil
}

// At returns the logical value at (i, j): the stored value if present
// and in bounds, else pad(i, j).
func (p *PaddedMatrix) At(i, j int) float64 {
	rows, cols := p.innerDims()
	if i < rows && j < cols {
		if v, ok := p.inner.At(i, j); ok {
			return v
		}
	}
	return p.pad(i, j)
}

// IsImputed reports whether (i, j) is a synthetic pad cell rather than a
// stored entry.
func (p *PaddedMatrix) IsImputed(i, j int) bool {
	rows, cols := p.innerDims()
	if i >= rows || j >= cols {
		return true
	}
	return !p.inner.Has(i, j)
}

// Sparse returns every logical value of the padded square view, row
// major: max_dim^2 entries in total, stored or imputed, per spec.
func (p *PaddedMatrix) Sparse() []float64 {
	n := p.LogicalN()
	out := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out = append(out, p.At(i, j))
		}
	}
	return out
}
