// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package similarity implements information-content and ontology
// similarity measures (IC, Resnik, Lin, Wu-Palmer) over a monopartite
// DAG, sharing one ancestor-enumeration substrate.
//
// Edge-direction convention: this package fixes successors as the more
// specific (descendant) nodes — an edge (u, v) means v is a specialization
// of u — so that information content grows downward, matching the
// "subsumed occurrences" formula literally: sub[u] = occ[u] + sum of
// sub[v] for v a successor of u requires descendant mass to flow upward
// into ancestors. This choice is internally consistent across IC, Resnik,
// Lin, and Wu-Palmer below.
package similarity

import (
	"fmt"
	"math"

	"github.com/csrkit/csrkit/graph/topo"
	"github.com/csrkit/csrkit/matrix"
)

// ErrorKind classifies why an InformationContent computation was
// rejected.
type ErrorKind int

const (
	// NotDag is returned when the input matrix contains a cycle.
	NotDag ErrorKind = iota
	// UnequalOccurrenceSize is returned when len(occ) != n.
	UnequalOccurrenceSize
	// SinkNodeZeroOccurrence is returned when a sink node has occ <= 0.
	SinkNodeZeroOccurrence
)

// InformationContentError reports why InformationContent could not be
// computed.
type InformationContentError struct {
	Kind ErrorKind
	Node int
	N    int
	Len  int
}

func (e *InformationContentError) Error() string {
	switch e.Kind {
	case NotDag:
		return "similarity: information content: graph is not a DAG"
	case UnequalOccurrenceSize:
		return fmt.Sprintf("similarity: information content: len(occ)=%d, want %d", e.Len, e.N)
	case SinkNodeZeroOccurrence:
		return fmt.Sprintf("similarity: information content: sink node %d has non-positive occurrence", e.Node)
	default:
		return "similarity: information content: unknown error"
	}
}

// IC holds the precomputed information-content substrate for a DAG: the
// subsumed-occurrence mass and information content of every node, plus
// the depth (longest path from any root) used by Wu-Palmer.
type IC struct {
	m      *matrix.Square
	sub    []float64
	ic     []float64
	depth  []int
	total  float64
	topOrd []int
}

// NewIC validates the preconditions (P1-P3 of the similarity spec) and
// computes the subsumed-occurrence pass in reverse topological order.
func NewIC(m *matrix.Square, occ []float64) (*IC, error) {
	n := m.N()
	order, err := topo.Kahn(m)
	if err != nil {
		return nil, &InformationContentError{Kind: NotDag, N: n}
	}
	if len(occ) != n {
		return nil, &InformationContentError{Kind: UnequalOccurrenceSize, N: n, Len: len(occ)}
	}
	sinks := topo.SinkNodes(m)
	for _, s := range sinks {
		if occ[s] <= 0 {
			return nil, &InformationContentError{Kind: SinkNodeZeroOccurrence, Node: s}
		}
	}

	sub := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		u := order[i]
		sub[u] = occ[u]
		row := m.Row(u)
		for {
			v, ok := row.Next()
			if !ok {
				break
			}
			sub[u] += sub[v]
		}
	}

	var total float64
	for _, r := range topo.RootNodes(m) {
		total += sub[r]
	}
	if total == 0 {
		total = 1 // avoid NaN from ln(0/0) on a graph with no roots' mass
	}

	ic := make([]float64, n)
	for v := 0; v < n; v++ {
		if sub[v] <= 0 {
			ic[v] = math.Inf(1)
			continue
		}
		ic[v] = -math.Log(sub[v] / total)
	}

	depth := make([]int, n)
	for _, u := range order {
		row := m.Row(u)
		for {
			v, ok := row.Next()
			if !ok {
				break
			}
			if depth[u]+1 > depth[v] {
				depth[v] = depth[u] + 1
			}
		}
	}

	return &IC{m: m, sub: sub, ic: ic, depth: depth, total: total, topOrd: order}, nil
}

// Of returns the information content of node v.
func (c *IC) Of(v int) float64 {
	return c.ic[v]
}

// Depth returns the longest-path depth of node v from any root.
func (c *IC) Depth(v int) int {
	return c.depth[v]
}

// ancestors returns every node reachable from v via reverse edges,
// including v itself, via a BFS over the transposed matrix.
func (c *IC) ancestors(v int) []int {
	transposed := c.m.Transpose()
	n := transposed.N()
	visited := make([]bool, n)
	queue := []int{v}
	visited[v] = true
	var out []int
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		out = append(out, u)
		row := transposed.Row(u)
		for {
			w, ok := row.Next()
			if !ok {
				break
			}
			if !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	return out
}

// MICA returns the most informative common ancestor of a and b: the
// common ancestor with maximum information content, tie-broken by
// smallest node id. It returns -1 if a and b share no common ancestor —
// a valid outcome on a multi-root or disconnected DAG, since nothing in
// §4.7 requires every node pair to have one.
func (c *IC) MICA(a, b int) int {
	ancestorsA := make(map[int]bool)
	for _, x := range c.ancestors(a) {
		ancestorsA[x] = true
	}
	best := -1
	bestIC := math.Inf(-1)
	for _, x := range c.ancestors(b) {
		if !ancestorsA[x] {
			continue
		}
		if c.ic[x] > bestIC || (c.ic[x] == bestIC && x < best) {
			bestIC = c.ic[x]
			best = x
		}
	}
	return best
}

// ResnikResult carries a Resnik similarity score alongside the MICA node
// id it was computed from.
type ResnikResult struct {
	Score float64
	MICA  int
}

// Resnik returns sim(a,b) = IC(MICA(a,b)), or a zero score when a and b
// share no common ancestor.
func (c *IC) Resnik(a, b int) ResnikResult {
	mica := c.MICA(a, b)
	if mica == -1 {
		return ResnikResult{Score: 0, MICA: -1}
	}
	return ResnikResult{Score: c.ic[mica], MICA: mica}
}

// LinResult carries a Lin similarity score alongside the MICA node id it
// was computed from.
type LinResult struct {
	Score float64
	MICA  int
}

// Lin returns sim(a,b) = 2*IC(MICA(a,b)) / (IC(a)+IC(b)), or 1 when both
// IC(a) and IC(b) are zero and a == MICA == b, else 0 on a zero
// denominator or when a and b share no common ancestor.
func (c *IC) Lin(a, b int) LinResult {
	mica := c.MICA(a, b)
	if mica == -1 {
		return LinResult{Score: 0, MICA: -1}
	}
	denom := c.ic[a] + c.ic[b]
	if denom == 0 {
		if a == mica && mica == b {
			return LinResult{Score: 1, MICA: mica}
		}
		return LinResult{Score: 0, MICA: mica}
	}
	return LinResult{Score: 2 * c.ic[mica] / denom, MICA: mica}
}

// WuPalmerResult carries a Wu-Palmer similarity score alongside the MICA
// node id it was computed from.
type WuPalmerResult struct {
	Score float64
	MICA  int
}

// WuPalmer returns sim(a,b) = 2*depth(MICA) / (depth(a)+depth(b)), with
// the same zero-denominator rule as Lin, and the same zero score when a
// and b share no common ancestor.
func (c *IC) WuPalmer(a, b int) WuPalmerResult {
	mica := c.MICA(a, b)
	if mica == -1 {
		return WuPalmerResult{Score: 0, MICA: -1}
	}
	denom := c.depth[a] + c.depth[b]
	if denom == 0 {
		if a == mica && mica == b {
			return WuPalmerResult{Score: 1, MICA: mica}
		}
		return WuPalmerResult{Score: 0, MICA: mica}
	}
	return WuPalmerResult{Score: 2 * float64(c.depth[mica]) / float64(denom), MICA: mica}
}
