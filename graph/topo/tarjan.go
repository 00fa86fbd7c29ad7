// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topo implements the DAG/SCC algorithm family: Kahn's
// topological sort, Tarjan's strongly connected components, and
// Johnson's elementary-cycle enumeration, all operating directly on a
// *matrix.Square adjacency matrix.
package topo

import (
	"golang.org/x/tools/container/intsets"

	"github.com/csrkit/csrkit/matrix"
)

// TarjanSCC returns the strongly connected components of m using
// Tarjan's algorithm, in reverse topological order of the condensation
// DAG. Every node belongs to exactly one SCC; singleton SCCs are always
// emitted, even for a node with no self-loop.
func TarjanSCC(m *matrix.Square) [][]int {
	n := m.N()
	t := &tarjan{
		m:          m,
		indexTable: make([]int, n),
		lowLink:    make([]int, n),
		onStack:    &intsets.Sparse{},
		visited:    make([]bool, n),
	}
	for v := 0; v < n; v++ {
		if !t.visited[v] {
			t.strongconnect(v)
		}
	}
	return t.sccs
}

// tarjan implements the classic strongconnect recursion from
// https://en.wikipedia.org/wiki/Tarjan%27s_strongly_connected_components_algorithm,
// using dense index/lowLink arrays (node ids are 0..n-1) and an
// intsets.Sparse-backed onStack test.
type tarjan struct {
	m *matrix.Square

	index      int
	indexTable []int
	lowLink    []int
	visited    []bool
	onStack    *intsets.Sparse

	stack []int
	sccs  [][]int
}

func (t *tarjan) strongconnect(v int) {
	t.index++
	t.indexTable[v] = t.index
	t.lowLink[v] = t.index
	t.visited[v] = true
	t.stack = append(t.stack, v)
	t.onStack.Insert(v)

	row := t.m.Row(v)
	for {
		w, ok := row.Next()
		if !ok {
			break
		}
		if !t.visited[w] {
			t.strongconnect(w)
			t.lowLink[v] = min(t.lowLink[v], t.lowLink[w])
		} else if t.onStack.Has(w) {
			t.lowLink[v] = min(t.lowLink[v], t.indexTable[w])
		}
	}

	if t.lowLink[v] == t.indexTable[v] {
		var scc []int
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack.Remove(w)
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
