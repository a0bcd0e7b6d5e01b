// SPDX-License-Identifier: MIT

// Package tiled: the container type and its structural invariants.
//
// Invariants maintained by every operation:
//   - rowParts covers [0, rows) exactly; colParts covers [0, cols) exactly.
//   - tiles is a len(rowParts) × len(colParts) grid of slots.
//   - A nil slot means the tile is entirely zero (Absent) and holds no
//     storage; a non-nil slot holds a Dense of exactly
//     (rowParts[ti].Len(), colParts[tj].Len()).
//   - After every public mutating operation, no stored tile is all zero
//     within zeroTol (the flush pass restores this).
package tiled

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/katalvlaran/blockmat/partition"
)

// Axis selectors for Dim.
const (
	// AxisRows selects the row dimension.
	AxisRows = 1
	// AxisCols selects the column dimension.
	AxisCols = 2
)

// Matrix is a tile-partitioned 2-D float64 container. The global shape is
// fixed at construction; tile storage comes and goes as values are written
// and zeroed. The zero value is not usable; construct via New,
// NewWithPartitions, or NewFromGonum.
type Matrix struct {
	tiles [][]*matrix.Dense // R×C tile slots; nil slot == all-zero tile

	rowParts []partition.Range // R contiguous ranges covering [0, rows)
	colParts []partition.Range // C contiguous ranges covering [0, cols)

	rows, cols int // global element shape

	transposed bool // flipped by each TransposeInPlace; informational

	zeroTol        float64 // |v| <= zeroTol counts as zero for tile emptiness
	validateNaNInf bool    // forwarded to materialized tiles

	log *zap.Logger // structural event logging; Nop unless WithLogger
}
