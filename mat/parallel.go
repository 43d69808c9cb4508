// SPDX-License-Identifier: MIT

// Package mat: fork-join row scheduler shared by the heavy kernels.
//
// Scheduling model: data-parallel fork-join over destination rows. Each
// worker owns a contiguous, disjoint row range of the output buffer and
// reads only from already-fully-populated inputs, so no synchronization
// beyond the final join is required — disjoint-write safety is a structural
// invariant of row-major layout combined with fixed row ownership.
package mat

import "sync"

// forEachRow invokes fn(i) for every destination row i in [0, rows).
//
// Implementation:
//   - Stage 1: fall back to a plain loop when rows < po.minRows or only one
//     worker is configured — the fork-join overhead is not worth paying.
//   - Stage 2: split [0, rows) into contiguous ranges, one goroutine per
//     worker, and join on a WaitGroup.
//
// Determinism:
//   - fn must write only to row i of the output; under that contract the
//     result is identical to the sequential loop regardless of scheduling.
//
// Complexity: O(rows) scheduling overhead on top of the per-row work.
func forEachRow(rows int, po parallelOpts, fn func(i int)) {
	// Sequential path: small work or explicitly single-threaded.
	if rows < po.minRows || po.workers <= 1 {
		for i := 0; i < rows; i++ {
			fn(i)
		}

		return
	}

	workers := po.workers
	if workers > rows {
		workers = rows // never spawn more workers than rows
	}
	chunk := rows / workers // base rows per worker; remainder goes to the last

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = rows // last worker takes the remainder
		}
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
