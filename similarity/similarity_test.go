// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package similarity

import (
	"errors"
	"math"
	"testing"

	"github.com/csrkit/csrkit/matrix"
)

func buildDAG(t *testing.T, n int, edges [][2]int) *matrix.Square {
	t.Helper()
	m := matrix.NewSquare(n, len(edges))
	if err := m.Extend(edges); err != nil {
		t.Fatalf("Extend(%v): %v", edges, err)
	}
	return m
}

// TestE1LinSelfAndCrossSimilarity covers E1: nodes {0,1,2}, edges
// {(0,1),(0,2),(1,2)}, occurrences [1,1,1].
func TestE1LinSelfAndCrossSimilarity(t *testing.T) {
	m := buildDAG(t, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	ic, err := NewIC(m, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("NewIC: %v", err)
	}
	for v := 0; v < 3; v++ {
		if got := ic.Lin(v, v).Score; got <= 0.99 {
			t.Errorf("Lin(%d,%d) = %v, want > 0.99", v, v, got)
		}
	}
	if got := ic.Lin(0, 1).Score; got >= 0.99 {
		t.Errorf("Lin(0,1) = %v, want < 0.99", got)
	}
}

func TestNotDagRejected(t *testing.T) {
	m := buildDAG(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	_, err := NewIC(m, []float64{1, 1, 1})
	var ice *InformationContentError
	if !errors.As(err, &ice) || ice.Kind != NotDag {
		t.Fatalf("NewIC(cyclic) = %v, want NotDag", err)
	}
}

func TestUnequalOccurrenceSizeRejected(t *testing.T) {
	m := buildDAG(t, 3, [][2]int{{0, 1}})
	_, err := NewIC(m, []float64{1, 1})
	var ice *InformationContentError
	if !errors.As(err, &ice) || ice.Kind != UnequalOccurrenceSize {
		t.Fatalf("NewIC(wrong occ size) = %v, want UnequalOccurrenceSize", err)
	}
}

func TestSinkNodeZeroOccurrenceRejected(t *testing.T) {
	m := buildDAG(t, 3, [][2]int{{0, 1}, {1, 2}})
	_, err := NewIC(m, []float64{1, 1, 0})
	var ice *InformationContentError
	if !errors.As(err, &ice) || ice.Kind != SinkNodeZeroOccurrence {
		t.Fatalf("NewIC(zero sink occurrence) = %v, want SinkNodeZeroOccurrence", err)
	}
}

// TestSymmetryAndBounds covers S1, S2, S3 on a small connected DAG.
func TestSymmetryAndBounds(t *testing.T) {
	m := buildDAG(t, 6, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}})
	occ := []float64{1, 1, 1, 1, 1, 1}
	ic, err := NewIC(m, occ)
	if err != nil {
		t.Fatalf("NewIC: %v", err)
	}
	const eps = 1e-9
	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			resnikAB, resnikBA := ic.Resnik(a, b).Score, ic.Resnik(b, a).Score
			if math.Abs(resnikAB-resnikBA) > eps {
				t.Errorf("Resnik(%d,%d)=%v != Resnik(%d,%d)=%v", a, b, resnikAB, b, a, resnikBA)
			}
			linAB, linBA := ic.Lin(a, b).Score, ic.Lin(b, a).Score
			if math.Abs(linAB-linBA) > eps {
				t.Errorf("Lin(%d,%d)=%v != Lin(%d,%d)=%v", a, b, linAB, b, a, linBA)
			}
			if linAB < -eps || linAB > 1+1e-6 {
				t.Errorf("Lin(%d,%d) = %v, out of [0,1+eps]", a, b, linAB)
			}
			wpAB, wpBA := ic.WuPalmer(a, b).Score, ic.WuPalmer(b, a).Score
			if math.Abs(wpAB-wpBA) > eps {
				t.Errorf("WuPalmer(%d,%d)=%v != WuPalmer(%d,%d)=%v", a, b, wpAB, b, a, wpBA)
			}
			if ic.Lin(a, a).Score < linAB-eps {
				t.Errorf("Lin(%d,%d)=%v is not self-maximal over Lin(%d,%d)=%v", a, a, ic.Lin(a, a).Score, a, b, linAB)
			}
		}
	}
}

func TestMICAIsSelfOnDiagonal(t *testing.T) {
	m := buildDAG(t, 4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	ic, err := NewIC(m, []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("NewIC: %v", err)
	}
	for v := 0; v < 4; v++ {
		if got := ic.MICA(v, v); got != v {
			t.Errorf("MICA(%d,%d) = %d, want %d", v, v, got, v)
		}
	}
}

// TestNoCommonAncestorIsHandledWithoutPanic covers a multi-root DAG with
// two isolated nodes: MICA(0,1) has no common ancestor to return, and
// every derived similarity must report a zero score rather than
// indexing ic/depth at -1.
func TestNoCommonAncestorIsHandledWithoutPanic(t *testing.T) {
	m := buildDAG(t, 2, nil)
	ic, err := NewIC(m, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewIC: %v", err)
	}
	if got := ic.MICA(0, 1); got != -1 {
		t.Errorf("MICA(0,1) = %d, want -1 (no common ancestor)", got)
	}
	if got := ic.Resnik(0, 1); got.Score != 0 || got.MICA != -1 {
		t.Errorf("Resnik(0,1) = %+v, want {Score:0 MICA:-1}", got)
	}
	if got := ic.Lin(0, 1); got.Score != 0 || got.MICA != -1 {
		t.Errorf("Lin(0,1) = %+v, want {Score:0 MICA:-1}", got)
	}
	if got := ic.WuPalmer(0, 1); got.Score != 0 || got.MICA != -1 {
		t.Errorf("WuPalmer(0,1) = %+v, want {Score:0 MICA:-1}", got)
	}
}
