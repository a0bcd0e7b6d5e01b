// Package tiled partitions a 2-D float64 matrix into rectangular tiles and
// tracks which tiles are entirely zero, so downstream code can skip whole
// blocks of zeros while still addressing the matrix element by element.
//
// What:
//
//   - Matrix wraps an R×C grid of dense tiles over a fixed global shape.
//   - All-zero tiles hold no storage; reads from them return 0.
//   - Writes materialize the owning tile on demand; a flush pass releases
//     tiles that became all zero again.
//   - In-place transpose swaps tile pairs and partition metadata together,
//     so the blocked layout stays consistent with the element layout.
//
// Why:
//
//   - Block-banded and block-sparse data: store only the occupied blocks.
//   - Cache-friendly sub-block access: tiles are contiguous row-major buffers.
//   - Cheap structural queries: per-tile emptiness without scanning elements.
//
// Complexity:
//
//   - At/Set resolve tile coordinates by linear scan over the partition
//     lists: O(R+C) per element access (partition counts are small).
//   - Set additionally reruns the whole-grid flush: O(rows×cols) worst case.
//   - TransposeInPlace: O(rows×cols) moving every stored element once.
//
// Options:
//
//   - WithZeroTolerance: magnitude at or below which a value counts as zero
//     for tile emptiness (default 0, exact).
//   - WithNoValidateNaNInf: allow NaN/±Inf values into tiles.
//   - WithLogger: structured zap logging of materialize/release/transpose
//     events (default no-op).
//
// Errors:
//
//   - ErrOutOfRange: element or block coordinates outside the shape.
//   - ErrAxis: dimension query for an axis other than rows/cols.
//   - ErrNonSquareTiling: in-place transpose on a non-square tile grid.
//   - ErrNilSource, ErrPartition, ErrDimensionMismatch, ErrNilMatrix:
//     construction and block-write validation.
//
// The container is synchronous and not safe for concurrent mutation: every
// operation runs on the caller's goroutine and completes before returning.
// Guard it externally if shared. Tiles are exclusively owned: block reads
// return independent copies, and Clone never shares tile storage.
package tiled
