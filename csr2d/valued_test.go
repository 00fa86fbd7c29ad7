// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csr2d

import "testing"

func buildValued(t *testing.T, rows, cols int, entries []ValuedEntry) *ValuedCSR2D {
	t.Helper()
	v := NewValuedCSR2D(rows, cols, len(entries))
	if err := v.ExtendValued(entries); err != nil {
		t.Fatalf("ExtendValued(%v): unexpected error: %v", entries, err)
	}
	return v
}

func TestValuedAtRoundTrip(t *testing.T) {
	v := buildValued(t, 2, 2, []ValuedEntry{
		{Row: 0, Col: 1, Value: 2.5},
		{Row: 1, Col: 0, Value: -1},
	})
	if got, ok := v.At(0, 1); !ok || got != 2.5 {
		t.Errorf("At(0,1) = (%v,%v), want (2.5,true)", got, ok)
	}
	if got, ok := v.At(1, 0); !ok || got != -1 {
		t.Errorf("At(1,0) = (%v,%v), want (-1,true)", got, ok)
	}
	if _, ok := v.At(0, 0); ok {
		t.Errorf("At(0,0) reported ok for unstored entry")
	}
	if _, ok := v.At(9, 9); ok {
		t.Errorf("At(9,9) reported ok for out-of-bounds entry")
	}
}

func TestValuedRowValuesAlignWithRow(t *testing.T) {
	v := buildValued(t, 1, 3, []ValuedEntry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 2},
		{Row: 0, Col: 2, Value: 3},
	})
	cols := v.Row(0)
	values := v.RowValues(0)
	i := 0
	for {
		col, ok := cols.Next()
		if !ok {
			break
		}
		if values[i] != float64(col+1) {
			t.Errorf("RowValues()[%d] = %v, want %v", i, values[i], col+1)
		}
		i++
	}
}

func TestValuedTransposePreservesValues(t *testing.T) {
	v := buildValued(t, 2, 2, []ValuedEntry{
		{Row: 0, Col: 1, Value: 7},
		{Row: 1, Col: 0, Value: 9},
	})
	tr := v.Transpose()
	if got, ok := tr.At(1, 0); !ok || got != 7 {
		t.Errorf("Transpose().At(1,0) = (%v,%v), want (7,true)", got, ok)
	}
	if got, ok := tr.At(0, 1); !ok || got != 9 {
		t.Errorf("Transpose().At(0,1) = (%v,%v), want (9,true)", got, ok)
	}
}

func TestValuedAddPropagatesCSR2DErrors(t *testing.T) {
	v := NewValuedCSR2D(1, 1, 2)
	if err := v.Add(0, 0, 1); err != nil {
		t.Fatalf("Add(0,0,1): unexpected error: %v", err)
	}
	if err := v.Add(0, 0, 2); err == nil {
		t.Fatalf("Add(0,0,2) after Add(0,0,1): want duplicate error, got nil")
	}
	if len(v.values) != 1 {
		t.Fatalf("values grew on rejected Add: len = %d, want 1", len(v.values))
	}
}
