// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/csrkit/csrkit/csr2d"

// BiMatrix owns a forward CSR2D and derives its transposed twin on
// demand. Forward is the only mutated storage — Add's ordering
// discipline is whatever the caller supplies it in, the same contract
// as a plain CSR2D — so there is no second append-ordered structure to
// keep in lockstep: Transposed is rebuilt from Forward by one
// counting-sort pass (csr2d.CSR2D.Transpose) whenever it is stale,
// which keeps the data-model invariant "for all (i,j) in forward, (j,i)
// in transposed" (§3/§4.2) true for any forward matrix, not just ones
// whose insertion order happens to also be ascending by column.
type BiMatrix struct {
	forward    *csr2d.CSR2D
	transposed *csr2d.CSR2D
	dirty      bool
}

// NewBiMatrix allocates a rows×cols forward matrix. Its transposed twin
// is built lazily on first read.
func NewBiMatrix(rows, cols, nnzHint int) *BiMatrix {
	return &BiMatrix{
		forward: csr2d.NewCSR2D(rows, cols, nnzHint),
		dirty:   true,
	}
}

// Forward exposes the forward half for read-only access.
func (b *BiMatrix) Forward() *csr2d.CSR2D {
	return b.forward
}

// Transposed returns the cols×rows transpose of Forward, rebuilding it
// if Add has appended any entry since the last call.
func (b *BiMatrix) Transposed() *csr2d.CSR2D {
	if b.dirty {
		b.transposed = b.forward.Transpose()
		b.dirty = false
	}
	return b.transposed
}

// Add appends (i, j) to the forward half; Transposed is invalidated and
// will be recomputed on next access.
func (b *BiMatrix) Add(i, j int) error {
	if err := b.forward.Add(i, j); err != nil {
		return liftMutabilityError("BiMatrix", err)
	}
	b.dirty = true
	return nil
}

// Extend calls Add for every (i, j) pair, stopping at the first error.
func (b *BiMatrix) Extend(entries [][2]int) error {
	for _, e := range entries {
		if err := b.Add(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}
