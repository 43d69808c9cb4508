// SPDX-License-Identifier: MIT

// Package nummat is a dense, row-major numeric matrix toolkit.
//
// The module is organised as focused sub-packages:
//
//	mat/        — the matrix engine: storage & indexing, arithmetic and
//	              comparison operators, generic element-wise and
//	              dimension-reduction frameworks with statistical
//	              specializations, fused transpose products, Gauss-Jordan
//	              inversion, structural utilities, magic-square generation.
//	regression/ — thin numeric-method helpers (cost function, gradient
//	              descent, sigmoid) composed entirely from mat's public
//	              operations.
//	cmd/matdemo — a small demo binary that exercises the library with
//	              fixture matrices and renders a gradient-descent cost
//	              history plot.
//
// nummat is a computational library, not an application: callers supply
// matrices and receive new matrices or scalars. There is no persistence,
// networking, or process lifecycle. All operations are synchronous and
// re-entrant; the only internal parallelism is a fork-join split over
// destination rows in the heavy kernels.
//
// See the runnable examples in mat and regression for usage patterns.
package nummat
