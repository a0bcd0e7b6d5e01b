// SPDX-License-Identifier: MIT

// Package tiled - element and block access.
//
// Purpose:
//   - Element reads that treat absent tiles as zero without allocating.
//   - Element writes that materialize the owning tile on demand, then run
//     the flush pass so no stored tile stays all zero.
//   - Block reads returning independent copies; block writes applying all
//     elements with a single flush at the end.
//
// AI-Hints:
//   - Set runs a whole-grid flush per call; for bulk updates prefer
//     SetRange, which writes all elements first and flushes once.
//   - A zero write into an absent tile materializes the tile, writes, and
//     lets the flush release it again. The write is observable only
//     through the (absent, still absent) round trip, never as storage.

package tiled

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/partition"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAtRange  = "AtRange"
	ctxSetRange = "SetRange"
)

// At returns the element at global (i, j). Reads from an absent tile cost
// no allocation and return 0, the additive identity.
// MAIN DESCRIPTION:
//   - Safe element read through the tile layout.
//
// Implementation:
//   - Stage 1: resolve both axes (linear scan, bounds check).
//   - Stage 2: nil slot → 0; stored slot → tile read at the local offset.
//
// Errors:
//   - ErrOutOfRange when no partition range contains i or j.
//
// Complexity:
//   - Time O(R+C) for resolution, O(1) for the read.
func (t *Matrix) At(i, j int) (float64, error) {
	ti, ri, err := t.locateRow(i)
	if err != nil {
		return 0, tiledErrorf(ctxAt, i, j, err)
	}
	tj, cj, err := t.locateCol(j)
	if err != nil {
		return 0, tiledErrorf(ctxAt, i, j, err)
	}

	tile := t.tiles[ti][tj]
	if tile == nil {
		return matrix.ZeroValue, nil // absent tile: every element is zero
	}

	return tile.At(ri, cj)
}

// Set writes v at global (i, j), materializing the owning tile when absent,
// then reruns the whole-grid flush so any tile that became all zero is
// released.
// MAIN DESCRIPTION:
//   - Safe element write with demand materialization and conservative flush.
//
// Implementation:
//   - Stage 1: raw write (resolve, materialize if needed, tile Set).
//   - Stage 2: Flush() over the whole grid.
//
// Behavior highlights:
//   - Materialization happens regardless of v: writing 0 into an absent
//     tile allocates, writes, and the flush releases the tile again.
//   - On error nothing is flushed and no new tile is retained with the
//     failed value.
//
// Errors:
//   - ErrOutOfRange for bad coordinates; matrix.ErrNaNInf under the
//     numeric policy.
//
// Complexity:
//   - Time O(R+C) resolve + O(tile) materialize + O(rows*cols) flush.
func (t *Matrix) Set(i, j int, v float64) error {
	if err := t.setRaw(i, j, v); err != nil {
		return err
	}
	t.Flush()

	return nil
}

// setRaw performs the resolve/materialize/write step without flushing.
// Shared by Set (flushes after one write) and SetRange (flushes after the
// whole batch).
// Complexity: Time O(R+C) + O(tile) on materialization.
func (t *Matrix) setRaw(i, j int, v float64) error {
	ti, ri, err := t.locateRow(i)
	if err != nil {
		return tiledErrorf(ctxSet, i, j, err)
	}
	tj, cj, err := t.locateCol(j)
	if err != nil {
		return tiledErrorf(ctxSet, i, j, err)
	}

	if tile := t.tiles[ti][tj]; tile != nil {
		if err = tile.Set(ri, cj, v); err != nil {
			return tiledErrorf(ctxSet, i, j, err)
		}

		return nil
	}

	// Demand materialization: a zero-filled tile of the slot's shape. The
	// slot is committed only after the write succeeds, so a rejected value
	// leaves the container untouched.
	fresh, err := matrix.NewDenseWithPolicy(t.rowParts[ti].Len(), t.colParts[tj].Len(), t.validateNaNInf)
	if err != nil {
		return tiledErrorf(ctxSet, i, j, err)
	}
	if err = fresh.Set(ri, cj, v); err != nil {
		return tiledErrorf(ctxSet, i, j, err)
	}
	t.tiles[ti][tj] = fresh
	t.log.Debug("materialized tile",
		zap.Int("tileRow", ti),
		zap.Int("tileCol", tj),
	)

	return nil
}

// AtRange returns an independent dense copy of the sub-block addressed by
// the half-open ranges rs × cs. Mutating the copy never affects the
// container. The ranges need not align with tile boundaries.
// MAIN DESCRIPTION:
//   - Block read with copy semantics.
//
// Implementation:
//   - Stage 1: validate both ranges against the shape.
//   - Stage 2: allocate the result and fill it element by element through At.
//
// Errors:
//   - ErrOutOfRange when a range is empty or exceeds the shape.
//
// Complexity:
//   - Time O(h*w*(R+C)) for an h×w block, Space O(h*w).
func (t *Matrix) AtRange(rs, cs partition.Range) (*matrix.Dense, error) {
	if err := t.validateRanges(rs, cs); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%s,%s): %w", ctxAtRange, rs, cs, err)
	}

	out, err := matrix.NewDenseWithPolicy(rs.Len(), cs.Len(), t.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("Matrix.%s(%s,%s): %w", ctxAtRange, rs, cs, err)
	}

	var v float64
	for i := 0; i < rs.Len(); i++ {
		for j := 0; j < cs.Len(); j++ {
			v, err = t.At(rs.Start+i, cs.Start+j)
			if err != nil {
				return nil, fmt.Errorf("Matrix.%s(%s,%s): %w", ctxAtRange, rs, cs, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Matrix.%s(%s,%s): %w", ctxAtRange, rs, cs, err)
			}
		}
	}

	return out, nil
}

// SetRange writes the block vals into the sub-block addressed by rs × cs.
// All elements are applied through the raw write path; the flush runs once
// at the end of the batch, so intermediate states never release tiles.
// MAIN DESCRIPTION:
//   - Block write with single-flush batch semantics.
//
// Implementation:
//   - Stage 1: validate vals non-nil, ranges in bounds, shapes matching,
//     all before the first write (no partial commit on validation errors).
//   - Stage 2: elementwise raw writes in row-major order.
//   - Stage 3: Flush() once.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange; ErrDimensionMismatch when vals shape ≠
//     (rs.Len(), cs.Len()); matrix.ErrNaNInf under the numeric policy.
//     A write error partway keeps the elements already applied; the flush
//     still runs, so no all-zero tile is ever retained.
//
// Complexity:
//   - Time O(h*w*(R+C)) + one O(rows*cols) flush.
func (t *Matrix) SetRange(rs, cs partition.Range, vals matrix.Matrix) error {
	if vals == nil {
		return fmt.Errorf("Matrix.%s(%s,%s): %w", ctxSetRange, rs, cs, ErrNilMatrix)
	}
	if err := t.validateRanges(rs, cs); err != nil {
		return fmt.Errorf("Matrix.%s(%s,%s): %w", ctxSetRange, rs, cs, err)
	}
	if vals.Rows() != rs.Len() || vals.Cols() != cs.Len() {
		return fmt.Errorf("Matrix.%s(%s,%s): vals %dx%d: %w",
			ctxSetRange, rs, cs, vals.Rows(), vals.Cols(), ErrDimensionMismatch)
	}

	var v float64
	var err error
	for i := 0; i < rs.Len(); i++ {
		for j := 0; j < cs.Len(); j++ {
			v, err = vals.At(i, j)
			if err == nil {
				err = t.setRaw(rs.Start+i, cs.Start+j, v)
			}
			if err != nil {
				t.Flush() // release tiles the failed batch materialized with zeros

				return fmt.Errorf("Matrix.%s(%s,%s): %w", ctxSetRange, rs, cs, err)
			}
		}
	}
	t.Flush()

	return nil
}

// validateRanges checks that rs and cs are non-empty and fall inside the
// container shape. Returns the bare sentinel; callers wrap with context.
// Complexity: O(1).
func (t *Matrix) validateRanges(rs, cs partition.Range) error {
	if rs.Len() <= 0 || rs.Start < 0 || rs.End > t.rows {
		return ErrOutOfRange
	}
	if cs.Len() <= 0 || cs.Start < 0 || cs.End > t.cols {
		return ErrOutOfRange
	}

	return nil
}
