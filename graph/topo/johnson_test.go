// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// canonicalRotation rotates cycle to its lexicographically smallest
// rotation, so that two cycles discovered starting from different
// offsets compare equal — the test-harness-only canonicalization spec
// calls for (the algorithm itself never rotates).
func canonicalRotation(cycle []int) []int {
	n := len(cycle)
	best := cycle
	for i := 1; i < n; i++ {
		candidate := append(append([]int(nil), cycle[i:]...), cycle[:i]...)
		if less(candidate, best) {
			best = candidate
		}
	}
	return best
}

func less(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func drainCycles(c *Cycles) [][]int {
	var out [][]int
	for {
		cycle, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, canonicalRotation(cycle))
	}
	return out
}

func TestJohnsonOnDAGEmitsNone(t *testing.T) {
	m := squareFrom(t, 4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	c := JohnsonCycles(m)
	if cycles := drainCycles(c); len(cycles) != 0 {
		t.Errorf("JohnsonCycles(DAG) = %v, want none", cycles)
	}
	if c.State() != Exhausted {
		t.Errorf("State() after draining = %v, want Exhausted", c.State())
	}
}

func TestJohnsonPureKCycleEmitsExactlyOne(t *testing.T) {
	m := squareFrom(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	cycles := drainCycles(JohnsonCycles(m))
	if len(cycles) != 1 {
		t.Fatalf("JohnsonCycles(4-cycle) = %v, want exactly 1 cycle", cycles)
	}
	if want := []int{0, 1, 2, 3}; !cmp.Equal(cycles[0], want) {
		t.Errorf("cycle mismatch (-got +want):\n%s", cmp.Diff(cycles[0], want))
	}
}

// TestJohnsonTwoCycleGraph covers E7: two 2-cycles sharing node 1.
func TestJohnsonTwoCycleGraph(t *testing.T) {
	m := squareFrom(t, 4, [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 3}, {3, 2}})
	cycles := drainCycles(JohnsonCycles(m))
	if len(cycles) != 2 {
		t.Fatalf("JohnsonCycles(E7) = %v, want exactly 2 cycles", cycles)
	}
	for _, c := range cycles {
		if len(c) != 2 {
			t.Errorf("cycle %v has length %d, want 2", c, len(c))
		}
	}
	var flattened [][]int
	flattened = append(flattened, cycles...)
	sort.Slice(flattened, func(i, j int) bool { return less(flattened[i], flattened[j]) })
	want := [][]int{{0, 1}, {2, 3}}
	if !cmp.Equal(flattened, want) {
		t.Errorf("cycles mismatch (-got +want):\n%s", cmp.Diff(flattened, want))
	}
}

func TestJohnsonCloseReleasesIteratorEarly(t *testing.T) {
	m := squareFrom(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	c := JohnsonCycles(m)
	_, ok := c.Next()
	if !ok {
		t.Fatalf("Next() on a graph with one cycle returned !ok")
	}
	c.Close()
	c.Close() // must not panic on double Close
}
