// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/csrkit/csrkit/csr2d"

// ValFunc computes the logical value of a present cell (i, j). It must
// be a pure function of (i, j).
type ValFunc func(i, j int) float64

// ImplicitValued wraps an unvalued CSR2D plus a pure value function:
// present cells read through val, absent cells read as "absent". Unlike
// PaddedMatrix, a missing cell here is never imputed — only the value of
// a present cell is computed rather than stored.
type ImplicitValued struct {
	inner *csr2d.CSR2D
	val   ValFunc
}

// NewImplicitValued wraps inner with the given value function.
func NewImplicitValued(inner *csr2d.CSR2D, val ValFunc) *ImplicitValued {
	return &ImplicitValued{inner: inner, val: val}
}

// Dims returns the inner matrix's shape.
func (v *ImplicitValued) Dims() (rows, cols int) {
	return v.inner.Dims()
}

// Add appends a stored structural entry; see csr2d.CSR2D.Add.
func (v *ImplicitValued) Add(i, j int) error {
	if err := v.inner.Add(i, j); err != nil {
		return liftMutabilityError("ImplicitValued", err)
	}
	return nil
}

// At returns val(i, j) if (i, j) is stored, else "absent".
func (v *ImplicitValued) At(i, j int) (value float64, ok bool) {
	if !v.inner.Has(i, j) {
		return 0, false
	}
	return v.val(i, j), true
}

// Row returns a double-ended iterator over row i's stored column
// indices; callers compute values with val(i, col) themselves.
func (v *ImplicitValued) Row(i int) *csr2d.RowIter {
	return v.inner.Row(i)
}
