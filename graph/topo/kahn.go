// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"fmt"

	"github.com/csrkit/csrkit/matrix"
)

// KahnErrorKind classifies why Kahn could not complete an ordering.
type KahnErrorKind int

const (
	// Cycle is returned when fewer than n nodes were ordered, meaning the
	// input matrix is not a DAG.
	Cycle KahnErrorKind = iota
)

// KahnError reports that Kahn's algorithm could not produce a complete
// topological ordering.
type KahnError struct {
	Kind    KahnErrorKind
	Ordered int
	N       int
}

func (e *KahnError) Error() string {
	return fmt.Sprintf("topo: cycle detected: ordered %d of %d nodes", e.Ordered, e.N)
}

// Is reports whether target is a *KahnError of the same Kind, so callers
// can use errors.Is(err, &KahnError{Kind: Cycle}).
func (e *KahnError) Is(target error) bool {
	other, ok := target.(*KahnError)
	return ok && e.Kind == other.Kind
}

// Kahn computes a topological order of m: a permutation of 0..n-1 such
// that for every edge (u, v), u appears before v in the order. In-degrees
// are computed in one sparse pass; the ready queue is FIFO, seeded with
// every zero-in-degree node in ascending id order, so that nodes which
// become ready together are emitted in ascending-id order too.
func Kahn(m *matrix.Square) ([]int, error) {
	n := m.N()
	inDegree := make([]int, n)
	for v := 0; v < n; v++ {
		row := m.Row(v)
		for {
			w, ok := row.Next()
			if !ok {
				break
			}
			inDegree[w]++
		}
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		row := m.Row(u)
		for {
			v, ok := row.Next()
			if !ok {
				break
			}
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) < n {
		return order, &KahnError{Kind: Cycle, Ordered: len(order), N: n}
	}
	return order, nil
}

// HasCycle reports whether m contains a cycle, by running Kahn and
// checking whether it failed.
func HasCycle(m *matrix.Square) bool {
	_, err := Kahn(m)
	return err != nil
}

// IsSimplePath reports whether nodes is a simple path in m: no node
// repeats, and every consecutive pair is an edge.
func IsSimplePath(m *matrix.Square, nodes []int) bool {
	if len(nodes) == 0 {
		return false
	}
	seen := make(map[int]bool, len(nodes))
	for i, v := range nodes {
		if seen[v] {
			return false
		}
		seen[v] = true
		if i > 0 && !m.Has(nodes[i-1], v) {
			return false
		}
	}
	return true
}
