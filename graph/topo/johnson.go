// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import "github.com/csrkit/csrkit/matrix"

// JohnsonState names a position in the Cycles iterator's state machine:
// Idle before the first Next call, Scanning while searching for the next
// least vertex with a non-trivial SCC, Emitting while a caller holds a
// just-produced cycle, Exhausted once no non-trivial SCC remains.
type JohnsonState int

const (
	Idle JohnsonState = iota
	Scanning
	Emitting
	Exhausted
)

// johnsonFrame is one explicit recursion frame of Johnson's circuit
// procedure: the vertex v, its full successor list adj (ascending), the
// index of the next successor to process, and whether a cycle has been
// found through v so far.
type johnsonFrame struct {
	v   int
	adj []int
	pos int
	f   bool
}

// Cycles is a single-threaded, one-at-a-time iterator over the
// elementary cycles of a *matrix.Square, computed with Johnson's
// algorithm: restrict to the strongly connected subgraph induced by
// nodes >= s, run circuit(s, s) with a blocked set and a B back-list,
// increment s, and repeat until no non-trivial SCC remains. circuit's
// recursion is represented as an explicit frame stack rather than a Go
// call, so Next can suspend the search immediately after producing a
// cycle and resume it on the next call with no background goroutine and
// no channel, per the library's single-threaded, synchronous execution
// model.
type Cycles struct {
	m *matrix.Square
	n int

	state   JohnsonState
	current []int
	closed  bool

	s    int // next floor to scan from once the current root is exhausted
	root int

	inSCC   map[int]bool
	blocked map[int]bool
	B       map[int][]int
	frames  []johnsonFrame
	stack   []int
}

// JohnsonCycles returns a Cycles iterator over the elementary cycles of
// m.
func JohnsonCycles(m *matrix.Square) *Cycles {
	return &Cycles{m: m, n: m.N(), state: Idle}
}

// Next advances the iterator, returning the next elementary cycle (in
// DFS-discovery order) and true, or nil and false once exhausted.
func (c *Cycles) Next() (cycle []int, ok bool) {
	if c.state == Exhausted {
		return nil, false
	}
	c.state = Scanning
	if !c.advance() {
		c.state = Exhausted
		return nil, false
	}
	c.state = Emitting
	return c.current, true
}

// State reports the iterator's current position in its state machine.
func (c *Cycles) State() JohnsonState {
	return c.state
}

// Close abandons the iterator before exhaustion. It is safe to call
// Close after Next has already returned false, and safe to call more
// than once.
func (c *Cycles) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.state = Exhausted
	c.frames = nil
	c.stack = nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// adjOf returns the ascending successor list of v, read once from the
// underlying matrix so a frame can resume from an arbitrary position
// without re-iterating storage.
func (c *Cycles) adjOf(v int) []int {
	row := c.m.Row(v)
	var out []int
	for {
		w, ok := row.Next()
		if !ok {
			break
		}
		out = append(out, w)
	}
	return out
}

// startNextRoot finds the next least vertex with a non-trivial SCC at
// or above c.s and pushes the initial circuit frame for it. It returns
// false once no non-trivial SCC remains — by Johnson's monotonicity
// property, restricting to a higher floor never reveals a non-trivial
// SCC that a lower floor didn't already contain, so the search stops
// for good rather than advancing s further.
func (c *Cycles) startNextRoot() bool {
	if c.s >= c.n {
		return false
	}
	sccs := restrictedSCCs(c.m, c.s)
	scc, least, ok := leastNontrivialSCC(c.m, sccs)
	if !ok {
		c.s = c.n
		return false
	}

	c.root = least
	c.inSCC = make(map[int]bool, len(scc))
	for _, v := range scc {
		c.inSCC[v] = true
	}
	c.blocked = map[int]bool{least: true}
	c.B = make(map[int][]int, len(scc))
	c.stack = []int{least}
	c.frames = []johnsonFrame{{v: least, adj: c.adjOf(least)}}
	return true
}

// unblock is Johnson's cascading unblock: freeing u, then recursively
// freeing every vertex u's blockage had suppressed.
func (c *Cycles) unblock(u int) {
	c.blocked[u] = false
	for len(c.B[u]) > 0 {
		w := c.B[u][len(c.B[u])-1]
		c.B[u] = c.B[u][:len(c.B[u])-1]
		if c.blocked[w] {
			c.unblock(w)
		}
	}
}

// addToB records v against every in-SCC successor of v that didn't lead
// to a cycle this pass, so v is woken up if one of them is unblocked
// later.
func (c *Cycles) addToB(v int, adj []int) {
	for _, w := range adj {
		if !c.inSCC[w] {
			continue
		}
		if !containsInt(c.B[w], v) {
			c.B[w] = append(c.B[w], v)
		}
	}
}

// advance runs the explicit circuit state machine until it either has a
// cycle ready (returns true, with c.current set) or the whole search is
// exhausted (returns false).
func (c *Cycles) advance() bool {
	for {
		if len(c.frames) == 0 {
			if !c.startNextRoot() {
				return false
			}
		}

		top := &c.frames[len(c.frames)-1]
		if top.pos >= len(top.adj) {
			// Every successor of top.v has been processed: fold its
			// result into the B/blocked bookkeeping and pop the frame.
			if top.f {
				c.unblock(top.v)
			} else {
				c.addToB(top.v, top.adj)
			}
			found := top.f
			c.stack = c.stack[:len(c.stack)-1]
			c.frames = c.frames[:len(c.frames)-1]
			if len(c.frames) == 0 {
				// circuit(root, root) has returned: advance the floor.
				c.s = c.root + 1
			} else if found {
				c.frames[len(c.frames)-1].f = true
			}
			continue
		}

		w := top.adj[top.pos]
		top.pos++
		if !c.inSCC[w] {
			continue
		}
		if w == c.root {
			top.f = true
			c.current = append([]int(nil), c.stack...)
			return true
		}
		if !c.blocked[w] {
			c.blocked[w] = true
			c.stack = append(c.stack, w)
			c.frames = append(c.frames, johnsonFrame{v: w, adj: c.adjOf(w)})
		}
	}
}

// restrictedSCCs runs Tarjan's algorithm on the subgraph induced by
// nodes >= floor, treating any edge touching a node < floor as absent.
func restrictedSCCs(m *matrix.Square, floor int) [][]int {
	n := m.N()
	indexTable := make([]int, n)
	lowLink := make([]int, n)
	visited := make([]bool, n)
	onStack := make([]bool, n)
	var stack []int
	var sccs [][]int
	index := 0

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index++
		indexTable[v] = index
		lowLink[v] = index
		visited[v] = true
		stack = append(stack, v)
		onStack[v] = true

		row := m.Row(v)
		for {
			w, ok := row.Next()
			if !ok {
				break
			}
			if w < floor {
				continue
			}
			if !visited[w] {
				strongconnect(w)
				lowLink[v] = min(lowLink[v], lowLink[w])
			} else if onStack[w] {
				lowLink[v] = min(lowLink[v], indexTable[w])
			}
		}

		if lowLink[v] == indexTable[v] {
			var scc []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for v := floor; v < n; v++ {
		if !visited[v] {
			strongconnect(v)
		}
	}
	return sccs
}

// leastNontrivialSCC returns the SCC, among sccs, containing the overall
// smallest node id that belongs to a non-trivial component (size > 1, or
// a singleton with a self-loop), and that smallest id itself. ok is
// false if every SCC in sccs is a trivial singleton.
func leastNontrivialSCC(m *matrix.Square, sccs [][]int) (scc []int, least int, ok bool) {
	least = -1
	for _, candidate := range sccs {
		nontrivial := len(candidate) > 1
		if !nontrivial && len(candidate) == 1 && m.Has(candidate[0], candidate[0]) {
			nontrivial = true
		}
		if !nontrivial {
			continue
		}
		for _, v := range candidate {
			if least == -1 || v < least {
				least = v
				scc = candidate
			}
		}
	}
	return scc, least, least != -1
}
