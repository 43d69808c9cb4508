// SPDX-License-Identifier: MIT
// Package mat: arithmetic operators over any Matrix implementation —
// element-wise addition/subtraction, scalar forms, negation, matrix product,
// scaling and division in both scalar directions. All functions perform
// strict fail-fast validation, return a fresh *Dense and never mutate their
// operands.
//
// Concurrency:
//   - Mul, Scale, DivScalar and ScalarDiv are row-parallel: destination rows
//     are split across fork-join workers (see parallel.go). Every other
//     operator is a single flat pass and stays sequential.

package mat

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opScalarSub = "ScalarSub"
	opNeg       = "Neg"
	opMul       = "Mul"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opScalarDiv = "ScalarDiv"
)

// matErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
func matErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation, allocation and fast path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate the result.
//   - Stage 2: fast path if both are *Dense — single flat loop 0..n-1;
//     otherwise fall back to At with a fixed i→j order.
//
// Complexity: O(r*c) time and space.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matErrorf(opTag, err)
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B into a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// scalarMap applies fn to every element of m into a fresh Dense.
// Internal helper shared by the scalar operators. O(r*c).
func scalarMap(m Matrix, opTag string, fn func(x float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opTag, err)
	}
	src, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opTag, err)
	}
	for i := range src.data {
		src.data[i] = fn(src.data[i])
	}

	return src, nil
}

// AddScalar returns m + s applied to every element. Addition against a
// scalar is commutative, so there is no scalar-first variant.
// Complexity: O(r*c).
func AddScalar(m Matrix, s float64) (*Dense, error) {
	return scalarMap(m, opAddScalar, func(x float64) float64 { return x + s })
}

// SubScalar returns m − s applied to every element. O(r*c).
func SubScalar(m Matrix, s float64) (*Dense, error) {
	return scalarMap(m, opSubScalar, func(x float64) float64 { return x - s })
}

// ScalarSub returns s − m applied to every element: each result is the
// negation of the SubScalar counterpart. O(r*c).
func ScalarSub(s float64, m Matrix) (*Dense, error) {
	return scalarMap(m, opScalarSub, func(x float64) float64 { return s - x })
}

// Neg returns the unary negation −m. O(r*c).
func Neg(m Matrix) (*Dense, error) {
	return scalarMap(m, opNeg, func(x float64) float64 { return -x })
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimensions
//     (A.Cols == B.Rows); allocate C.
//   - Stage 2: materialize both operands as Dense and run the row-major
//     i→k→j kernel; destination rows are computed independently and split
//     across fork-join workers (each row of C depends only on row i of A
//     and all of B, so ownership is disjoint).
//
// Inputs:
//   - a: left matrix (r×n); b: right matrix (n×c).
//   - opts: optional execution policy (WithWorkers, WithMinParallelRows).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matErrorf(opMul, err)
	}

	po := gatherOptions(opts...)
	forEachRow(aRows, po, func(i int) {
		rowA := da.data[i*aCols : (i+1)*aCols]
		rowR := res.data[i*bCols : (i+1)*bCols]
		for k := 0; k < aCols; k++ {
			av := rowA[k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB := db.data[k*bCols : (k+1)*bCols]
			for j := 0; j < bCols; j++ {
				rowR[j] += av * rowB[j]
			}
		}
	})

	return res, nil
}

// rowParallelMap applies fn to every element, splitting destination rows
// across workers. Internal helper for the row-parallel scalar operators.
func rowParallelMap(m Matrix, opTag string, po parallelOpts, fn func(x float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opTag, err)
	}
	src, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opTag, err)
	}

	rows, cols := src.r, src.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matErrorf(opTag, err)
	}
	forEachRow(rows, po, func(i int) {
		base := i * cols
		for j := 0; j < cols; j++ {
			res.data[base+j] = fn(src.data[base+j])
		}
	})

	return res, nil
}

// Scale returns alpha * m[i,j] for every element. Multiplication against a
// scalar is commutative. Row-parallel.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64, opts ...Option) (*Dense, error) {
	return rowParallelMap(m, opScale, gatherOptions(opts...), func(x float64) float64 { return x * alpha })
}

// DivScalar returns m[i,j] / s for every element. Row-parallel.
// Division by zero follows IEEE-754 (±Inf, NaN). O(r*c).
func DivScalar(m Matrix, s float64, opts ...Option) (*Dense, error) {
	return rowParallelMap(m, opDivScalar, gatherOptions(opts...), func(x float64) float64 { return x / s })
}

// ScalarDiv returns s / m[i,j] for every element — the scalar is divided by
// each element, not the reverse. Row-parallel.
// Division by zero follows IEEE-754 (±Inf, NaN). O(r*c).
func ScalarDiv(s float64, m Matrix, opts ...Option) (*Dense, error) {
	return rowParallelMap(m, opScalarDiv, gatherOptions(opts...), func(x float64) float64 { return s / x })
}
