// SPDX-License-Identifier: MIT

// Package tiled: functional configuration for container construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package tiled

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/blockmat/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultZeroTolerance is the magnitude at or below which a value counts
	// as zero when deciding tile emptiness. 0 means exact comparison.
	DefaultZeroTolerance = 0.0

	// DefaultValidateNaNInf mirrors the matrix package policy: materialized
	// tiles reject NaN/±Inf writes unless relaxed via WithNoValidateNaNInf.
	DefaultValidateNaNInf = matrix.DefaultValidateNaNInf
)

// ---------- Internal panic messages (no magic strings) ----------

const panicZeroTolInvalid = "tiled: WithZeroTolerance: tol must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported state; public entry points accept
// `...Option` and resolve them via gatherOptions.
type Options struct {
	zeroTol        float64     // >= 0; DefaultZeroTolerance
	validateNaNInf bool        // DefaultValidateNaNInf
	log            *zap.Logger // nil until finalize; then zap.NewNop()
}

// WithZeroTolerance sets the emptiness tolerance: a tile whose every element
// has magnitude at or below tol is released during construction and flush.
// Panics with a stable message when tol is NaN, ±Inf, or negative.
// Complexity: O(1).
func WithZeroTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicZeroTolInvalid)
	}

	// Assign validated tolerance.
	return func(o *Options) { o.zeroTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation on tile writes.
// This is the default; use WithNoValidateNaNInf to relax.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on tile writes (use with
// care: a non-finite value never counts as zero, so its tile is never
// released).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLogger attaches a zap logger for structural events (tile materialize,
// tile release, transpose). A nil logger is replaced by zap.NewNop().
// Complexity: O(1).
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.log = l }
}

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants. Canonical internal entry for constructors.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		zeroTol:        DefaultZeroTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
// Called after applying all Option setters.
// Complexity: O(1).
func finalizeOptions(o *Options) {
	// Logging must always be callable; absent or nil loggers become no-ops.
	if o.log == nil {
		o.log = zap.NewNop()
	}
}
