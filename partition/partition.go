// Package partition splits one matrix dimension into an ordered list of
// contiguous, non-overlapping index ranges and answers "which range owns
// index i" lookups. It is the boundary layout used by the tiled container
// in github.com/katalvlaran/blockmat/tiled, but carries no tile logic of
// its own.
//
// All indices are 0-based; ranges are half-open [Start, End).
package partition

import (
	"errors"
	"fmt"
)

// Sentinel errors for partition operations.
var (
	// ErrBadLength indicates a non-positive dimension length.
	ErrBadLength = errors.New("partition: length must be > 0")

	// ErrBadParts indicates a part count outside [1, length].
	ErrBadParts = errors.New("partition: parts must be in [1, length]")

	// ErrCoverage indicates a range list that is not an ordered, contiguous,
	// exact cover of [0, length).
	ErrCoverage = errors.New("partition: ranges must cover the dimension exactly")
)

// Range is a half-open index interval [Start, End) along one dimension.
type Range struct {
	Start int // first index inside the range
	End   int // first index past the range
}

// Len returns the number of indices in r.
// Complexity: O(1).
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether index i falls inside r.
// Complexity: O(1).
func (r Range) Contains(i int) bool { return r.Start <= i && i < r.End }

// String renders r as "[start:end)" for diagnostics.
func (r Range) String() string { return fmt.Sprintf("[%d:%d)", r.Start, r.End) }

// Split divides [0, length) into parts contiguous ranges of near-equal
// size. Sizes differ by at most one; the leading length%parts ranges take
// the extra element. The result is sorted by Start, covers the dimension
// exactly, and contains no empty range.
//
// Errors:
//   - ErrBadLength when length <= 0.
//   - ErrBadParts when parts <= 0 or parts > length (an exact cover with
//     non-empty ranges would be impossible).
//
// Complexity: O(parts) time, O(parts) memory.
func Split(length, parts int) ([]Range, error) {
	if length <= 0 {
		return nil, ErrBadLength
	}
	if parts <= 0 || parts > length {
		return nil, ErrBadParts
	}

	base := length / parts // minimum range size
	rem := length % parts  // ranges that receive one extra index

	out := make([]Range, parts)
	start := 0
	for k := 0; k < parts; k++ {
		size := base
		if k < rem {
			size++
		}
		out[k] = Range{Start: start, End: start + size}
		start += size
	}

	return out, nil
}

// Validate checks that rs is an ordered, contiguous, exact cover of
// [0, length) with no empty ranges: the invariant every consumer of a
// partition list relies on.
//
// Errors: ErrBadLength, ErrCoverage.
// Complexity: O(len(rs)).
func Validate(rs []Range, length int) error {
	if length <= 0 {
		return ErrBadLength
	}
	if len(rs) == 0 {
		return fmt.Errorf("partition: empty range list: %w", ErrCoverage)
	}
	if rs[0].Start != 0 {
		return fmt.Errorf("partition: first range %s does not start at 0: %w", rs[0], ErrCoverage)
	}
	for k, r := range rs {
		if r.Len() <= 0 {
			return fmt.Errorf("partition: range %d %s is empty: %w", k, r, ErrCoverage)
		}
		if k > 0 && rs[k-1].End != r.Start {
			return fmt.Errorf("partition: gap or overlap between %s and %s: %w", rs[k-1], r, ErrCoverage)
		}
	}
	if last := rs[len(rs)-1]; last.End != length {
		return fmt.Errorf("partition: last range %s does not end at %d: %w", last, length, ErrCoverage)
	}

	return nil
}

// Locate returns the index of the first range in rs containing i, or -1
// when no range does. Lookup is a linear scan over the range list.
//
// Complexity: O(len(rs)).
func Locate(rs []Range, i int) int {
	for k, r := range rs {
		if r.Contains(i) {
			return k
		}
	}

	return -1
}
