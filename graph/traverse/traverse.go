// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traverse provides breadth-first traversal over a
// *matrix.Square treated as undirected (both stored directions
// considered), grounded on gonum's graph/traverse.BreadthFirst shape but
// self-contained: no adjacency map, no node interface, just a FIFO
// queue over dense node ids.
package traverse

import "github.com/csrkit/csrkit/matrix"

// ErrEmptyGraph is returned by ConnectedComponents when m has zero
// nodes.
type ErrEmptyGraph struct{}

func (ErrEmptyGraph) Error() string { return "traverse: connected components: empty graph" }

// neighbors returns every node adjacent to v in either edge direction:
// the stored successors of v, plus every u with a stored edge (u, v).
func neighbors(m *matrix.Square, v int) []int {
	var out []int
	row := m.Row(v)
	for {
		w, ok := row.Next()
		if !ok {
			break
		}
		out = append(out, w)
	}
	n := m.N()
	for u := 0; u < n; u++ {
		if u != v && m.Has(u, v) {
			out = append(out, u)
		}
	}
	return out
}

// ConnectedComponents returns the connected components of m treated as
// undirected, one BFS per unvisited node in ascending start-node order
// so output is deterministic. Returns ErrEmptyGraph if m has no nodes.
func ConnectedComponents(m *matrix.Square) ([][]int, error) {
	n := m.N()
	if n == 0 {
		return nil, ErrEmptyGraph{}
	}
	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var component []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			component = append(component, v)
			for _, w := range neighbors(m, v) {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		components = append(components, component)
	}
	return components, nil
}
