// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix implements the structural wrappers (Square,
// UpperTriangular, Symmetric, PaddedDiagonal, PaddedMatrix,
// ImplicitValued, BiMatrix) that enforce shape invariants on top of the
// csr2d storage substrate.
package matrix

import (
	"errors"
	"fmt"

	"github.com/csrkit/csrkit/csr2d"
)

// ErrDimensionMismatch is returned when a wrapper is asked to hold an
// inner matrix of a shape it cannot represent, e.g. a non-square matrix
// passed to NewSquare.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// liftMutabilityError re-exposes a *csr2d.MutabilityError returned by the
// inner storage, preserving its Kind verbatim per the "lifted ... into
// the enclosing wrapper's error kind" rule: a wrapper never reinterprets
// a lower-layer error, it only adds %w context.
func liftMutabilityError(wrapper string, err error) error {
	if err == nil {
		return nil
	}
	var me *csr2d.MutabilityError
	if errors.As(err, &me) {
		return fmt.Errorf("matrix: %s: %w", wrapper, me)
	}
	return fmt.Errorf("matrix: %s: %w", wrapper, err)
}
