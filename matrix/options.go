// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - The default value of a matrix is NOT an option; it is the mandatory
//     first argument of New and fixed for the matrix lifetime.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the initial size hint of the occupied-cell map.
	// Zero lets the runtime pick its own starting size.
	DefaultCapacity = 0

	// DefaultCellSeparator separates values inside one FormatWindow row.
	DefaultCellSeparator = " "
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "matrix: WithCapacity: capacity must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	capacity  int    // >= 0; DefaultCapacity
	separator string // DefaultCellSeparator
}

// ---------- Constructors (WithX) ----------

// WithCapacity pre-sizes the occupied-cell map for about n entries.
// Panics when n < 0.
//
// Complexity: O(1). The hint only affects the first allocation; the map still
// grows past n on demand.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithCellSeparator sets the string placed between values in FormatWindow.
// An empty separator is legal and concatenates values.
func WithCellSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// NewOptions resolves the given setters on top of the defaults.
// Exposed mainly for tests and diagnostics; New calls gatherOptions directly.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Capacity reports the resolved map size hint.
func (o Options) Capacity() int { return o.capacity }

// CellSeparator reports the resolved FormatWindow separator.
func (o Options) CellSeparator() string { return o.separator }

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		capacity:  DefaultCapacity,
		separator: DefaultCellSeparator,
	}
	for _, set := range user {
		if set == nil {
			continue // tolerate nil entries in option slices
		}
		set(&o)
	}

	return o
}
