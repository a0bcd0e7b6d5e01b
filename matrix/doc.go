// Package matrix offers the element storage used by the tiled container.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) that all tile
//     payloads and ingestion sources implement.
//   - Dense, a row-major float64 buffer with safe, error-returning
//     accessors and an optional finite-only numeric policy.
//   - DOK, a dictionary-of-keys sparse matrix convenient for building
//     mostly-zero inputs cell by cell.
//   - Element-wise helpers (Transpose, IsAllZero, Equal) shared by the
//     tiled layer and by tests.
//
// Dense is best when most cells are populated; DOK when only a few are.
// Both are interchangeable anywhere a Matrix is accepted.
//
// See the examples in the tiled package for usage patterns.
package matrix
