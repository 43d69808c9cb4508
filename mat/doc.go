// SPDX-License-Identifier: MIT

// Package mat implements a dense, row-major float64 matrix engine.
//
// The package provides:
//
//   - Dense storage with zero-indexed access, cloning and a fixed
//     two-decimal diagnostic rendering (dense.go).
//   - Arithmetic operators over any Matrix: add/sub, scalar forms in both
//     directions, negation, matrix product, scaling and division
//     (impl_arithmetic.go). Mul and the scalar kernels split destination
//     rows across fork-join workers.
//   - Relational comparisons against a scalar producing 0/1 truth tables,
//     plus value equality, tolerance comparison and fingerprinting
//     (impl_compare.go).
//   - Generic element-wise and reduction frameworks with the named
//     specializations built on them: broadcasted ElementOp variants
//     (ops_elementwise.go), accumulator reductions (impl_reduce.go) and
//     whole-vector statistics from Mean through StdDev
//     (impl_statistics.go).
//   - Transpose and the fused products A·Bᵗ, Aᵗ·B, Aᵗ·A that never
//     materialize the transpose (impl_transpose.go).
//   - Gauss-Jordan inversion with row-swap pivoting (impl_inverse.go).
//   - Structural utilities: extraction, removal, join, bias column,
//     polynomial feature expansion, reshape (impl_structural.go).
//   - Magic square generation for every valid order and the IsMagic
//     verifier (impl_magic.go).
//
// All operations validate eagerly, wrap failures around the package
// sentinel errors (errors.go) so callers can match them with errors.Is,
// and return fresh results without mutating their operands. The only
// mutating surface is the small method set on Dense itself (Set, Fill,
// SetRow, SwapRows).
package mat
