// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import "github.com/csrkit/csrkit/matrix"

// predecessorSuccessorFlags computes, in one sparse pass, whether each
// node has at least one predecessor and at least one successor. Root,
// sink, and singleton classification all share this single pass rather
// than each re-scanning the matrix.
func predecessorSuccessorFlags(m *matrix.Square) (hasPredecessor, hasSuccessor []bool) {
	n := m.N()
	hasPredecessor = make([]bool, n)
	hasSuccessor = make([]bool, n)
	for v := 0; v < n; v++ {
		row := m.Row(v)
		for {
			w, ok := row.Next()
			if !ok {
				break
			}
			hasSuccessor[v] = true
			hasPredecessor[w] = true
		}
	}
	return hasPredecessor, hasSuccessor
}

// RootNodes returns, in ascending order, every node with no predecessor.
func RootNodes(m *matrix.Square) []int {
	hasPredecessor, _ := predecessorSuccessorFlags(m)
	var roots []int
	for v, has := range hasPredecessor {
		if !has {
			roots = append(roots, v)
		}
	}
	return roots
}

// SinkNodes returns, in ascending order, every node with at least one
// predecessor but no successor.
func SinkNodes(m *matrix.Square) []int {
	hasPredecessor, hasSuccessor := predecessorSuccessorFlags(m)
	var sinks []int
	for v := range hasPredecessor {
		if hasPredecessor[v] && !hasSuccessor[v] {
			sinks = append(sinks, v)
		}
	}
	return sinks
}

// SingletonNodes returns, in ascending order, every node with neither a
// predecessor nor a successor.
func SingletonNodes(m *matrix.Square) []int {
	hasPredecessor, hasSuccessor := predecessorSuccessorFlags(m)
	var singletons []int
	for v := range hasPredecessor {
		if !hasPredecessor[v] && !hasSuccessor[v] {
			singletons = append(singletons, v)
		}
	}
	return singletons
}
