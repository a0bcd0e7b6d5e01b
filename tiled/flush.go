// SPDX-License-Identifier: MIT

// Package tiled - the empty-tile tracker: releasing tiles that hold only
// zeros. Flush runs after every mutating batch (Set once per call, SetRange
// once per batch) and keeps the structural invariant that no stored tile is
// all zero within the tolerance.

package tiled

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/blockmat/matrix"
)

// Flush rescans every stored tile and releases the ones that are all zero
// within the configured tolerance. Idempotent: a second call right after
// the first finds nothing to release.
// MAIN DESCRIPTION:
//   - Conservative whole-grid dematerialization pass.
//
// Implementation:
//   - Stage 1: row-major walk over the tile grid.
//   - Stage 2: per stored tile, an early-exit zero scan; zero tiles get
//     their slot reset to nil (storage dropped).
//
// Behavior highlights:
//   - Deterministic tile order; each release is logged at Debug level.
//
// Complexity:
//   - Time O(rows*cols) worst case; each tile scan exits at the first
//     non-zero element.
func (t *Matrix) Flush() {
	for ti := range t.tiles {
		for tj, tile := range t.tiles[ti] {
			if tile == nil {
				continue // already absent
			}
			if !t.tileAllZero(tile) {
				continue
			}
			t.tiles[ti][tj] = nil // release storage; slot reads as zero again
			t.log.Debug("released tile",
				zap.Int("tileRow", ti),
				zap.Int("tileCol", tj),
			)
		}
	}
}

// tileAllZero reports whether every element of the (non-nil) tile counts as
// zero under the configured tolerance. Exact mode delegates to the shared
// kernel; tolerance mode scans with early exit.
// Complexity: Time O(tile) worst case.
func (t *Matrix) tileAllZero(tile *matrix.Dense) bool {
	if t.zeroTol == 0 {
		zero, err := matrix.IsAllZero(tile)
		if err != nil {
			return false // tile is non-nil here; IsAllZero only fails on nil input
		}

		return zero
	}

	zero := true
	tile.Do(func(_, _ int, v float64) bool {
		// NaN compares false to every threshold; it is never zero.
		if math.Abs(v) > t.zeroTol || math.IsNaN(v) {
			zero = false
			return false // first offender decides; stop scanning
		}

		return true
	})

	return zero
}
