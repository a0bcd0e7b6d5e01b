// SPDX-License-Identifier: MIT

// Package tiled - construction: partitioning a source matrix into tiles.
//
// Purpose:
//   - Build the tile grid from any matrix.Matrix source.
//   - Detect all-zero blocks during the single ingestion pass and leave
//     their slots empty (no storage).
//   - Validate explicit partition lists before touching the source.
//
// Complexity quicksheet:
//   - New/NewWithPartitions: O(rows*cols) ingestion + O(R*C) grid setup.

package tiled

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/partition"
)

// ---------- error context tags ----------

const (
	ctxNew          = "New"
	ctxNewWithParts = "NewWithPartitions"
)

// New builds a tiled container from src, splitting each axis into `tiles`
// near-equal parts.
// MAIN DESCRIPTION:
//   - Canonical constructor: square tile grid, sizes differing by at most one.
//
// Implementation:
//   - Stage 1: validate src non-nil; split both axes via partition.Split.
//   - Stage 2: single ingestion pass per tile: copy the sub-block, leave
//     the slot empty when every element is zero within the tolerance.
//
// Behavior highlights:
//   - The source is read once and never retained; the container owns all
//     tile storage exclusively.
//   - An all-zero source yields a container with no stored tiles at all.
//
// Inputs:
//   - src  : non-nil source matrix (rows×cols, both > 0).
//   - tiles: parts per axis, in [1, min(rows, cols)].
//   - opts : functional options (tolerance, numeric policy, logger).
//
// Returns:
//   - *Matrix: fully built container.
//
// Errors:
//   - ErrNilSource; partition.ErrBadLength/ErrBadParts from splitting;
//     source At failures; matrix.ErrNaNInf under the numeric policy.
//
// Complexity:
//   - Time O(rows*cols), Space O(occupied cells).
func New(src matrix.Matrix, tiles int, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, ErrNilSource)
	}

	rows, cols := src.Rows(), src.Cols()
	rowParts, err := partition.Split(rows, tiles)
	if err != nil {
		return nil, fmt.Errorf("%s: split rows: %w", ctxNew, err)
	}
	colParts, err := partition.Split(cols, tiles)
	if err != nil {
		return nil, fmt.Errorf("%s: split cols: %w", ctxNew, err)
	}

	return build(src, rowParts, colParts, gatherOptions(opts...))
}

// NewWithPartitions builds a tiled container over explicit, caller-supplied
// partition lists.
// MAIN DESCRIPTION:
//   - Constructor for callers that need uneven or asymmetric tile layouts.
//
// Implementation:
//   - Stage 1: validate src non-nil; validate both lists as exact covers of
//     the source shape (fail fast, before any ingestion).
//   - Stage 2: same ingestion pass as New.
//
// Behavior highlights:
//   - The partition slices are copied; later caller mutation cannot corrupt
//     the container.
//
// Inputs:
//   - src              : non-nil source matrix.
//   - rowParts, colParts: ordered contiguous exact covers of [0, rows) and
//     [0, cols) respectively.
//   - opts             : functional options.
//
// Returns:
//   - *Matrix: fully built container.
//
// Errors:
//   - ErrNilSource; ErrPartition when either list is not an exact cover;
//     source At failures; matrix.ErrNaNInf under the numeric policy.
//
// Complexity:
//   - Time O(rows*cols), Space O(occupied cells).
func NewWithPartitions(src matrix.Matrix, rowParts, colParts []partition.Range, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxNewWithParts, ErrNilSource)
	}

	rows, cols := src.Rows(), src.Cols()
	if err := partition.Validate(rowParts, rows); err != nil {
		return nil, fmt.Errorf("%s: row partitions: %v: %w", ctxNewWithParts, err, ErrPartition)
	}
	if err := partition.Validate(colParts, cols); err != nil {
		return nil, fmt.Errorf("%s: col partitions: %v: %w", ctxNewWithParts, err, ErrPartition)
	}

	// The container owns its partition metadata; copy the caller's lists.
	rp := make([]partition.Range, len(rowParts))
	copy(rp, rowParts)
	cp := make([]partition.Range, len(colParts))
	copy(cp, colParts)

	return build(src, rp, cp, gatherOptions(opts...))
}

// build runs the ingestion pass: one sub-block copy per tile coordinate,
// leaving all-zero blocks unstored. Partition lists are already validated
// and owned by the caller.
// Complexity: Time O(rows*cols), Space O(occupied cells).
func build(src matrix.Matrix, rowParts, colParts []partition.Range, o Options) (*Matrix, error) {
	t := &Matrix{
		tiles:          make([][]*matrix.Dense, len(rowParts)),
		rowParts:       rowParts,
		colParts:       colParts,
		rows:           src.Rows(),
		cols:           src.Cols(),
		zeroTol:        o.zeroTol,
		validateNaNInf: o.validateNaNInf,
		log:            o.log,
	}

	var present int // stored-tile count for the construction log
	for ti := range rowParts {
		t.tiles[ti] = make([]*matrix.Dense, len(colParts))
		for tj := range colParts {
			tile, zero, err := extractTile(src, rowParts[ti], colParts[tj], o)
			if err != nil {
				return nil, fmt.Errorf("tile (%d,%d): %w", ti, tj, err)
			}
			if zero {
				continue // slot stays nil: no storage for all-zero blocks
			}
			t.tiles[ti][tj] = tile
			present++
		}
	}

	t.log.Debug("built tiled matrix",
		zap.Int("rows", t.rows),
		zap.Int("cols", t.cols),
		zap.Int("tileRows", len(rowParts)),
		zap.Int("tileCols", len(colParts)),
		zap.Int("presentTiles", present),
	)

	return t, nil
}

// extractTile copies the sub-block (rs × cs) of src into a fresh Dense and
// reports whether every element was zero within o.zeroTol. The caller
// discards the copy when zero is true.
// Complexity: Time O(rs.Len()*cs.Len()).
func extractTile(src matrix.Matrix, rs, cs partition.Range, o Options) (*matrix.Dense, bool, error) {
	tile, err := matrix.NewDenseWithPolicy(rs.Len(), cs.Len(), o.validateNaNInf)
	if err != nil {
		return nil, false, err
	}

	zero := true
	var v float64
	for i := 0; i < rs.Len(); i++ {
		for j := 0; j < cs.Len(); j++ {
			v, err = src.At(rs.Start+i, cs.Start+j)
			if err != nil {
				return nil, false, err
			}
			if err = tile.Set(i, j, v); err != nil {
				return nil, false, err // numeric policy rejection surfaces here
			}
			// NaN compares false to every threshold; it is never zero.
			if math.Abs(v) > o.zeroTol || math.IsNaN(v) {
				zero = false
			}
		}
	}

	return tile, zero, nil
}
