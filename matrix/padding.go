// Copyright ©2024 The CSRKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

// padCoordinate reports whether (i, j) falls inside the padded region of
// a rectangular-to-square wrapper of shape (rows, cols): any coordinate
// with i >= rows or j >= cols, up to the logical square extent
// max(rows, cols), which it also returns. PaddedMatrix uses it for its
// logical extent; PaddedDiagonal does not call it and checks the
// diagonal against min(rows, cols) itself.
func padCoordinate(i, j, rows, cols int) (logicalN int, padded bool) {
	logicalN = rows
	if cols > logicalN {
		logicalN = cols
	}
	return logicalN, i >= rows || j >= cols
}
