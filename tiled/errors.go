// SPDX-License-Identifier: MIT
// Package tiled: sentinel error set. All operations return these sentinels
// (wrapped with operation context via %w) and tests match them with
// errors.Is. Public surfaces never panic on user input.

package tiled

import "errors"

// Sentinel errors for tiled operations.
var (
	// ErrAxis indicates a dimension query for an axis outside {AxisRows, AxisCols}.
	ErrAxis = errors.New("tiled: axis must be 1 (rows) or 2 (cols)")

	// ErrOutOfRange indicates element or block coordinates outside the
	// container's shape (no partition range contains the index).
	ErrOutOfRange = errors.New("tiled: index out of range")

	// ErrNonSquareTiling indicates an in-place transpose on a container whose
	// row and column partition counts differ. The container is not modified.
	ErrNonSquareTiling = errors.New("tiled: transpose requires a square tile grid")

	// ErrNilSource indicates a nil source matrix passed to a constructor.
	ErrNilSource = errors.New("tiled: source matrix is nil")

	// ErrPartition indicates an explicit partition list that is not an
	// ordered, contiguous, exact cover of the source dimension.
	ErrPartition = errors.New("tiled: invalid partition list")

	// ErrDimensionMismatch indicates a block write whose value shape differs
	// from the target range shape.
	ErrDimensionMismatch = errors.New("tiled: dimension mismatch")

	// ErrNilMatrix indicates a nil matrix argument (block write values).
	ErrNilMatrix = errors.New("tiled: nil matrix argument")

	// ErrReadOnly indicates a write through an adapter whose underlying
	// source does not support mutation.
	ErrReadOnly = errors.New("tiled: source is read-only")
)
