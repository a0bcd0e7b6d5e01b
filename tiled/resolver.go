// SPDX-License-Identifier: MIT

// Package tiled - coordinate resolution: global element index → owning tile
// + local offset. Lookup goes through partition.Locate on the axis's
// partition list.

package tiled

import (
	"fmt"

	"github.com/katalvlaran/blockmat/partition"
)

// tiledErrorf wraps an error with a uniform Matrix context and callsite
// indices. Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func tiledErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// locateRow maps global row i to (tile row, local offset). Returns the bare
// ErrOutOfRange sentinel on a miss; public methods wrap it with coordinates
// and method name.
// Complexity: O(R).
func (t *Matrix) locateRow(i int) (ti, off int, err error) {
	ti = partition.Locate(t.rowParts, i)
	if ti < 0 {
		return 0, 0, ErrOutOfRange
	}

	// Local offset inside the owning tile.
	return ti, i - t.rowParts[ti].Start, nil
}

// locateCol maps global column j to (tile col, local offset), mirroring
// locateRow.
// Complexity: O(C).
func (t *Matrix) locateCol(j int) (tj, off int, err error) {
	tj = partition.Locate(t.colParts, j)
	if tj < 0 {
		return 0, 0, ErrOutOfRange
	}

	return tj, j - t.colParts[tj].Start, nil
}
