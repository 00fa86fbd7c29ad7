// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph composes a Vocabulary with a structural matrix wrapper
// into a monopartite graph, and provides a thin node/edge surface over
// it. The topo, traverse, and similarity packages take a *matrix.Square
// directly and do not use this package. The heavy lifting lives in
// csr2d and matrix; this package only adds identity and iteration
// conveniences on top.
package graph

import "github.com/csrkit/csrkit/matrix"

// Vocabulary is the external-collaborator contract from spec §6: an
// ordered mapping from a source symbol set to dense indices 0..n. The
// core treats it as a pure read-only index lookup.
type Vocabulary interface {
	// Len returns the number of symbols in the vocabulary.
	Len() int
	// Contains reports whether symbol is present.
	Contains(symbol string) bool
	// At returns the symbol at index, panicking if index is out of range.
	At(index int) string
	// IndexOf returns the dense index of symbol and whether it was found.
	IndexOf(symbol string) (index int, ok bool)
}

// IdentityVocabulary maps each node id to the caller-supplied name at
// that position, sufficient for every algorithm and test in this
// module since the full builder façade is out of scope.
type IdentityVocabulary struct {
	symbols []string
	index   map[string]int
}

// NewIdentityVocabulary builds a vocabulary over the n symbols in names,
// in the order given; names must be unique.
func NewIdentityVocabulary(names []string) *IdentityVocabulary {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	return &IdentityVocabulary{symbols: append([]string(nil), names...), index: idx}
}

// Len returns the number of symbols.
func (v *IdentityVocabulary) Len() int { return len(v.symbols) }

// Contains reports whether symbol is present.
func (v *IdentityVocabulary) Contains(symbol string) bool {
	_, ok := v.index[symbol]
	return ok
}

// At returns the symbol at index.
func (v *IdentityVocabulary) At(index int) string { return v.symbols[index] }

// IndexOf returns the dense index of symbol.
func (v *IdentityVocabulary) IndexOf(symbol string) (index int, ok bool) {
	index, ok = v.index[symbol]
	return index, ok
}

// Graph is a pair (Vocabulary, *matrix.Square): node identifier equals
// matrix row index equals matrix column index, i.e. the graph is
// monopartite. A Graph's lifetime owns its matrix; no shared mutable
// references are exposed beyond the read-only accessors below.
type Graph struct {
	vocab Vocabulary
	adj   *matrix.Square
}

// NewGraph pairs a vocabulary with an adjacency matrix. The caller must
// ensure vocab.Len() == adj.N(); NewGraph does not itself validate this
// since Vocabulary is an external collaborator contract.
func NewGraph(vocab Vocabulary, adj *matrix.Square) *Graph {
	return &Graph{vocab: vocab, adj: adj}
}

// Vocabulary returns the graph's node-id lookup.
func (g *Graph) Vocabulary() Vocabulary { return g.vocab }

// Matrix returns the graph's adjacency matrix.
func (g *Graph) Matrix() *matrix.Square { return g.adj }

// N returns the number of nodes.
func (g *Graph) N() int { return g.adj.N() }

// From returns the successor node ids of v, in ascending order.
func (g *Graph) From(v int) []int {
	it := g.adj.Row(v)
	var out []int
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, w)
	}
	return out
}

// HasEdge reports whether there is an edge from u to v.
func (g *Graph) HasEdge(u, v int) bool {
	return g.adj.Has(u, v)
}
