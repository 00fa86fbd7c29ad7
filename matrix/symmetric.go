// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

// Symmetric stores only the upper triangle of a logically symmetric
// matrix; every read of (i, j) with i > j is answered from the stored
// (j, i) entry. A running count of diagonal entries makes
// NumberOfDefinedDiagonalValues O(1).
type Symmetric struct {
	upper    *UpperTriangular
	diagonal int
}

// NewSymmetric allocates an n×n Symmetric matrix.
func NewSymmetric(n, nnzHint int) *Symmetric {
	return &Symmetric{upper: NewUpperTriangular(n, nnzHint)}
}

// N returns the shared row/column count.
func (s *Symmetric) N() int {
	return s.upper.N()
}

// NNZ returns the number of stored (upper-triangle) entries.
func (s *Symmetric) NNZ() int {
	return s.upper.NNZ()
}

// Add normalizes (i, j) to (min, max) and stores it in the upper
// triangle.
func (s *Symmetric) Add(i, j int) error {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	if err := s.upper.Add(lo, hi); err != nil {
		return err
	}
	if lo == hi {
		s.diagonal++
	}
	return nil
}

// Extend calls Add for every (i, j) pair, stopping at the first error.
func (s *Symmetric) Extend(entries [][2]int) error {
	for _, e := range entries {
		if err := s.Add(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether (i, j) — in either orientation — is a stored
// entry.
func (s *Symmetric) Has(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	return s.upper.Has(i, j)
}

// NumberOfDefinedDiagonalValues returns the count of i with (i, i)
// stored, in O(1).
func (s *Symmetric) NumberOfDefinedDiagonalValues() int {
	return s.diagonal
}

// Row returns the symmetric closure of row i: every stored (i, k) with
// i <= k, plus every stored (k, i) with k < i, merged in ascending
// column order on demand.
func (s *Symmetric) Row(i int) []int {
	var out []int
	for k := 0; k < i; k++ {
		if s.upper.Has(k, i) {
			out = append(out, k)
		}
	}
	it := s.upper.Row(i)
	for {
		col, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, col)
	}
	return out
}
