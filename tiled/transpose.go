// SPDX-License-Identifier: MIT

// Package tiled - the in-place transpose engine.
//
// Purpose:
//   - Reflect the container across its main diagonal without rebuilding it
//     from a source: tile pairs swap across the diagonal, each tile's
//     contents transpose, and the partition metadata swaps axes wholesale.
//   - Keep the emptiness pattern consistent: an absent (i,j) tile is absent
//     at (j,i) afterwards, with no storage materialized along the way.
//
// Precondition:
//   - The tile grid must be square (equal partition counts per axis). The
//     global shape may still be rectangular; after the transpose the row
//     partition list describes the old columns and vice versa.

package tiled

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/blockmat/matrix"
)

const ctxTransposeInPlace = "TransposeInPlace"

// TransposeInPlace reflects the container across its main diagonal.
// MAIN DESCRIPTION:
//   - Blocked transpose: metadata swap + pairwise tile swap-and-transpose.
//
// Implementation:
//   - Stage 1: precondition check: square tile grid, else
//     ErrNonSquareTiling with the container untouched.
//   - Stage 2: swap the partition slices and the global shape; flip the
//     orientation flag.
//   - Stage 3: for every pair (i, j) with i < j, transpose both tiles and
//     swap their slots (nil slots swap as nil); transpose diagonal tiles
//     in place.
//
// Behavior highlights:
//   - Involution: calling twice restores the container exactly, including
//     the absent/present pattern.
//   - Emptiness mirroring is implicit: nil slots travel with the swap, and
//     no tile is materialized or released by the transpose itself.
//
// Returns:
//   - error: ErrNonSquareTiling only; every other path succeeds.
//
// Complexity:
//   - Time O(rows*cols): every stored element moves exactly once; absent
//     tiles cost O(1) per pair.
func (t *Matrix) TransposeInPlace() error {
	n := len(t.rowParts)
	if n != len(t.colParts) {
		return fmt.Errorf("%s: %dx%d tile grid: %w",
			ctxTransposeInPlace, n, len(t.colParts), ErrNonSquareTiling)
	}

	// Metadata swap: partitions trade axes wholesale, shape follows.
	t.rowParts, t.colParts = t.colParts, t.rowParts
	t.rows, t.cols = t.cols, t.rows
	t.transposed = !t.transposed

	// Pairwise tile pass over the upper triangle, diagonal included. Stored
	// tiles are non-nil *Dense, so matrix.Transpose cannot fail on them.
	var a, b *matrix.Dense
	for i := 0; i < n; i++ {
		if d := t.tiles[i][i]; d != nil {
			t.tiles[i][i], _ = matrix.Transpose(d)
		}
		for j := i + 1; j < n; j++ {
			a, b = t.tiles[i][j], t.tiles[j][i]
			if a != nil {
				a, _ = matrix.Transpose(a)
			}
			if b != nil {
				b, _ = matrix.Transpose(b)
			}
			t.tiles[i][j], t.tiles[j][i] = b, a // swap across the diagonal
		}
	}

	t.log.Debug("transposed in place",
		zap.Int("tileGrid", n),
		zap.Bool("transposed", t.transposed),
	)

	return nil
}
