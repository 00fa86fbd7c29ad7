// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assignment

import (
	"errors"
	"math"
)

// JaqamanResult is the output of Jaqaman: Assignment[i] is the column
// assigned to row i of the original m*n cost matrix, or -1 if row i was
// matched to its own birth/death extension instead of a real column.
type JaqamanResult struct {
	Assignment []int
}

// Jaqaman solves the rectangular tracker-assignment problem (spec
// §4.10): given an m*n cost matrix (row-major), it builds the
// (m+n)*(m+n) augmented square matrix with birthCost on the extension
// diagonal blocks and a large sentinel elsewhere, solves with LAPJV, and
// returns the first m assignments. Composed the same way
// original_source's weighted_assignment/crouse module composes the
// rectangular case over the square solver.
func Jaqaman(cost []float64, m, n int, birthCost, maxCost float64) (*JaqamanResult, error) {
	if m == 0 || n == 0 {
		return nil, &CrouseError{Kind: EmptyMatrix}
	}
	if len(cost) != m*n {
		return nil, &CrouseError{Kind: NonSquareMatrix}
	}
	if math.IsNaN(maxCost) || math.IsInf(maxCost, 0) {
		return nil, &CrouseError{Kind: MaximalCostNotFinite}
	}
	if maxCost <= 0 {
		return nil, &CrouseError{Kind: MaximalCostNotPositive}
	}
	if math.IsNaN(birthCost) || math.IsInf(birthCost, 0) {
		return nil, &CrouseError{Kind: MaximalCostNotFinite}
	}
	if birthCost <= 0 {
		return nil, &CrouseError{Kind: MaximalCostNotPositive}
	}
	for _, c := range cost {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, &CrouseError{Kind: NonFiniteValues}
		}
		if c < 0 {
			return nil, &CrouseError{Kind: NegativeValues}
		}
		if c == 0 {
			return nil, &CrouseError{Kind: ZeroValues}
		}
		if c >= maxCost {
			return nil, &CrouseError{Kind: ValueTooLarge}
		}
	}
	if birthCost >= maxCost {
		return nil, &CrouseError{Kind: ValueTooLarge}
	}

	size := m + n
	dense := make([]float64, size*size)
	sentinel := maxCost / 2
	for i := range dense {
		dense[i] = sentinel
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			dense[i*size+j] = cost[i*n+j]
		}
	}
	// Birth/death extension blocks: row i's own extension column, and
	// column j's own extension row, each carrying birthCost; the
	// remaining bottom-right block stays at the sentinel fill above, so
	// an extension row matched to an extension column costs the sentinel.
	for i := 0; i < m; i++ {
		dense[i*size+(n+i)] = birthCost
	}
	for j := 0; j < n; j++ {
		dense[(m+j)*size+j] = birthCost
	}

	res, err := LAPJV(dense, size, maxCost)
	if err != nil {
		var lapErr *LAPJVError
		if errors.As(err, &lapErr) {
			return nil, &CrouseError{Kind: lapErr.Kind}
		}
		return nil, err
	}

	assignment := make([]int, m)
	for i := 0; i < m; i++ {
		j := res.RowAssignment[i]
		if j >= n {
			assignment[i] = -1
		} else {
			assignment[i] = j
		}
	}
	return &JaqamanResult{Assignment: assignment}, nil
}
