// SPDX-License-Identifier: MIT

// Package mat: functional configuration for the row-parallel kernels.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package mat

import "runtime"

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultMinParallelRows is the row count below which the parallel
	// kernels stay sequential: for small matrices the fork-join overhead
	// outweighs any speedup from extra cores.
	DefaultMinParallelRows = 64
)

// parallelOpts carries the resolved execution policy for one kernel call.
// Fields are unexported; public APIs consume ...Option.
type parallelOpts struct {
	workers int // number of fork-join workers (≥1)
	minRows int // sequential below this many destination rows (≥0)
}

// Option mutates the per-call execution policy of a parallel kernel.
type Option func(*parallelOpts)

// WithWorkers fixes the number of fork-join workers.
// Panics if n < 1 (programmer error — a kernel cannot run with no workers).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("mat: WithWorkers requires n >= 1")
	}

	return func(o *parallelOpts) { o.workers = n }
}

// WithMinParallelRows overrides the sequential-execution threshold.
// Pass 0 to force the fork-join path regardless of size.
// Panics if n < 0 (programmer error).
func WithMinParallelRows(n int) Option {
	if n < 0 {
		panic("mat: WithMinParallelRows requires n >= 0")
	}

	return func(o *parallelOpts) { o.minRows = n }
}

// gatherOptions folds opts over the documented defaults.
// Default worker count is runtime.NumCPU(), resolved per call so the policy
// tracks the machine the code actually runs on.
func gatherOptions(opts ...Option) parallelOpts {
	o := parallelOpts{
		workers: runtime.NumCPU(),
		minRows: DefaultMinParallelRows,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
