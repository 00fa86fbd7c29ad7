// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/csrkit/csrkit/csr2d"

// UpperTriangular is a Square matrix that only ever stores entries
// (i, j) with i <= j.
type UpperTriangular struct {
	square *Square
}

// NewUpperTriangular allocates an n×n UpperTriangular matrix.
func NewUpperTriangular(n, nnzHint int) *UpperTriangular {
	return &UpperTriangular{square: NewSquare(n, nnzHint)}
}

// N returns the shared row/column count.
func (u *UpperTriangular) N() int {
	return u.square.N()
}

// NNZ returns the number of stored entries.
func (u *UpperTriangular) NNZ() int {
	return u.square.NNZ()
}

// Add appends (i, j), rejecting i > j with OutOfBounds per spec.
func (u *UpperTriangular) Add(i, j int) error {
	if i > j {
		n := u.square.N()
		err := &csr2d.MutabilityError{
			Kind:   csr2d.OutOfBoundsKind,
			Row:    i,
			Col:    j,
			Rows:   n,
			Cols:   n,
			Reason: "row > column in upper triangular matrix",
		}
		return liftMutabilityError("UpperTriangular", err)
	}
	return u.square.Add(i, j)
}

// Extend calls Add for every (i, j) pair, stopping at the first error.
func (u *UpperTriangular) Extend(entries [][2]int) error {
	for _, e := range entries {
		if err := u.Add(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether (i, j) is a stored entry.
func (u *UpperTriangular) Has(i, j int) bool {
	return u.square.Has(i, j)
}

// Row returns a double-ended iterator over row i's stored column indices.
func (u *UpperTriangular) Row(i int) *csr2d.RowIter {
	return u.square.Row(i)
}

// Sparse returns a double-ended iterator over every stored entry.
func (u *UpperTriangular) Sparse() *csr2d.EntryIter {
	return u.square.Sparse()
}

// Symmetrize returns a Symmetric view whose upper triangle is exactly the
// receiver's stored entries — the symmetric closure doubles the nnz minus
// the diagonal, per spec.
func (u *UpperTriangular) Symmetrize() (*Symmetric, error) {
	sym := NewSymmetric(u.N(), u.NNZ())
	it := u.Sparse()
	for {
		i, j, ok := it.Next()
		if !ok {
			break
		}
		if err := sym.Add(i, j); err != nil {
			return nil, err
		}
	}
	return sym, nil
}
