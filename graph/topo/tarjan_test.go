// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"sort"
	"testing"
)

func TestTarjanSCCPartitionsVertexSet(t *testing.T) {
	m := squareFrom(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}})
	sccs := TarjanSCC(m)

	seen := make(map[int]bool)
	for _, scc := range sccs {
		for _, v := range scc {
			if seen[v] {
				t.Fatalf("node %d appears in more than one SCC", v)
			}
			seen[v] = true
		}
	}
	if len(seen) != 5 {
		t.Fatalf("SCCs cover %d nodes, want 5", len(seen))
	}

	var cyclic []int
	for _, scc := range sccs {
		if len(scc) == 3 {
			cyclic = append(cyclic, scc...)
		}
	}
	sort.Ints(cyclic)
	if got, want := cyclic, []int{0, 1, 2}; !intsEqual(got, want) {
		t.Errorf("3-node SCC = %v, want %v", got, want)
	}
}

func TestTarjanSCCSingletonsAlwaysEmitted(t *testing.T) {
	m := squareFrom(t, 3, nil)
	sccs := TarjanSCC(m)
	if len(sccs) != 3 {
		t.Fatalf("TarjanSCC on edgeless graph returned %d SCCs, want 3", len(sccs))
	}
	for _, scc := range sccs {
		if len(scc) != 1 {
			t.Errorf("SCC %v has size %d, want 1", scc, len(scc))
		}
	}
}

func TestTarjanSCCSelfLoopOwnComponent(t *testing.T) {
	m := squareFrom(t, 2, [][2]int{{0, 0}})
	sccs := TarjanSCC(m)
	found := false
	for _, scc := range sccs {
		if len(scc) == 1 && scc[0] == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("TarjanSCC(%v) = %v, want a singleton SCC containing self-looping node 0", m, sccs)
	}
}
