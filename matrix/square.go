// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/csrkit/csrkit/csr2d"

// Square is a CSR2D constrained to rows == cols. It is the shape every
// monopartite graph.Graph stores its adjacency in.
type Square struct {
	inner *csr2d.CSR2D
}

// NewSquare allocates an n×n Square matrix.
func NewSquare(n, nnzHint int) *Square {
	return &Square{inner: csr2d.NewCSR2D(n, n, nnzHint)}
}

// WrapSquare adapts an existing CSR2D as a Square, returning
// ErrDimensionMismatch if it is not square.
func WrapSquare(inner *csr2d.CSR2D) (*Square, error) {
	rows, cols := inner.Dims()
	if rows != cols {
		return nil, ErrDimensionMismatch
	}
	return &Square{inner: inner}, nil
}

// N returns the shared row/column count.
func (s *Square) N() int {
	n, _ := s.inner.Dims()
	return n
}

// Dims returns (n, n).
func (s *Square) Dims() (rows, cols int) {
	return s.inner.Dims()
}

// NNZ returns the number of stored entries.
func (s *Square) NNZ() int {
	return s.inner.NNZ()
}

// Add appends a stored entry at (i, j). See csr2d.CSR2D.Add for the
// ordering discipline this enforces.
func (s *Square) Add(i, j int) error {
	if err := s.inner.Add(i, j); err != nil {
		return liftMutabilityError("Square", err)
	}
	return nil
}

// Extend calls Add for every (i, j) pair, stopping at the first error.
func (s *Square) Extend(entries [][2]int) error {
	for _, e := range entries {
		if err := s.Add(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether (i, j) is a stored entry.
func (s *Square) Has(i, j int) bool {
	return s.inner.Has(i, j)
}

// RowNNZ returns the out-degree of node i (number of stored successors).
func (s *Square) RowNNZ(i int) int {
	return s.inner.RowNNZ(i)
}

// Row returns a double-ended iterator over the column indices (successor
// node ids) stored in row i.
func (s *Square) Row(i int) *csr2d.RowIter {
	return s.inner.Row(i)
}

// Sparse returns a double-ended iterator over every stored (i, j) entry.
func (s *Square) Sparse() *csr2d.EntryIter {
	return s.inner.Sparse()
}

// Transpose returns a new Square matrix holding every (j, i) mirroring
// (i, j) in the receiver.
func (s *Square) Transpose() *Square {
	return &Square{inner: s.inner.Transpose()}
}

// Inner exposes the underlying CSR2D for algorithms and other wrappers
// that need the raw storage (e.g. building a Symmetric closure).
func (s *Square) Inner() *csr2d.CSR2D {
	return s.inner
}
