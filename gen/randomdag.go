// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen provides deterministic, seedable random graph generation,
// in the shape of gonum's graphs/gen package (a plain value-returning
// function, no hidden global state) but producing a *matrix.Square
// directly rather than a generic graph.Graph, and using a fixed
// forward-edges-only contract rather than gonum's Markov-chain rewiring,
// per the randomized-DAG-generator collaborator contract.
package gen

import "github.com/csrkit/csrkit/matrix"

// xorshift64 is a 64-bit xorshift PRNG: fast, deterministic by seed, and
// sufficient for generating reproducible test fixtures — this package
// makes no cryptographic-strength claim.
type xorshift64 struct {
	state uint64
}

func newXorshift64(seed uint64) *xorshift64 {
	if seed == 0 {
		// A zero state is a fixed point of xorshift; perturb it so
		// RandomDAG(0, n) still produces a non-degenerate stream.
		seed = 0x9E3779B97F4A7C15
	}
	return &xorshift64{state: seed}
}

func (x *xorshift64) next() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// float64 returns a pseudo-random value in [0, 1).
func (x *xorshift64) float64() float64 {
	return float64(x.next()>>11) / (1 << 53)
}

// RandomDAG deterministically produces a DAG on n nodes: for every pair
// (i, j) with i < j, an edge i -> j is added with probability 0.5 drawn
// from a 64-bit xorshift stream seeded by seed. Repeated calls with the
// same (seed, n) produce identical outputs.
func RandomDAG(seed uint64, n int) *matrix.Square {
	rng := newXorshift64(seed)
	m := matrix.NewSquare(n, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.float64() < 0.5 {
				// Add is called in strictly ascending (i,j) lexicographic
				// order by construction (i, then ascending j), satisfying
				// CSR2D.Add's ordering discipline.
				if err := m.Add(i, j); err != nil {
					panic("gen: RandomDAG produced an out-of-order edge: " + err.Error())
				}
			}
		}
	}
	return m
}
