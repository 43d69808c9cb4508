// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//   - Provide the generic element-wise framework: a unary map (Apply), a
//     binary map against a scalar (ElementOpScalar) and a binary map against
//     a second matrix with broadcast support (ElementOp).
//   - Every named element operation (ElementAdd/Sub/Mul/Div/Pow/Sqrt/Abs/
//     Exp/Log) is a fixed instantiation of these frameworks with no
//     additional logic.
//
// Broadcast policy (ElementOp), checked in priority order:
//  1. Exact shape match — plain element-wise application.
//  2. Column counts match and b has fewer rows — b's rows are reused
//     cyclically down a's rows (row-vector broadcast down columns).
//  3. Row counts match and b is a single column — b[i] is broadcast across
//     the whole destination row i (column-vector broadcast across rows).
//  4. Anything else fails with ErrDimensionMismatch before any allocation.
//
// Determinism & Performance:
//   - Fixed i→j traversal; one output allocation per call (immutability).

package mat

import "math"

const (
	opApply      = "Apply"
	opElementOp  = "ElementOp"
	opElementAdd = "ElementAdd"
	opElementSub = "ElementSub"
	opElementMul = "ElementMul"
	opElementDiv = "ElementDiv"
	opElementPow = "ElementPow"
)

// Apply returns fn mapped over every element of m.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Apply(m Matrix, fn func(x float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opApply, err)
	}
	out, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opApply, err)
	}
	for i := range out.data {
		out.data[i] = fn(out.data[i])
	}

	return out, nil
}

// ElementOpScalar returns fn(m[i,j], s) mapped over every element.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ElementOpScalar(m Matrix, s float64, fn func(x, y float64) float64) (*Dense, error) {
	return Apply(m, func(x float64) float64 { return fn(x, s) })
}

// ElementOp applies a binary function across a and b element-by-element,
// broadcasting b when the shapes differ but are compatible (see the package
// policy above).
//
// Implementation:
//   - Stage 1: validate operands; classify the shape relation eagerly.
//   - Stage 2: single i→j pass; the b read index is selected by the
//     broadcast mode resolved in Stage 1 (no per-element branching on shape).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when no broadcast rule fits.
//
// Complexity: Time O(r*c) over a's shape, Space O(r*c).
func ElementOp(a, b Matrix, fn func(x, y float64) float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf(opElementOp, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matErrorf(opElementOp, err)
	}

	da, err := denseOf(a)
	if err != nil {
		return nil, matErrorf(opElementOp, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matErrorf(opElementOp, err)
	}

	rows, cols := da.r, da.c
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matErrorf(opElementOp, err)
	}

	switch {
	case db.r == rows && db.c == cols:
		// Exact match takes priority: flat element-wise pass.
		for idx := range out.data {
			out.data[idx] = fn(da.data[idx], db.data[idx])
		}
	case db.c == cols && db.r < rows:
		// Row-vector broadcast down columns: b's rows reused cyclically.
		for i := 0; i < rows; i++ {
			base := i * cols
			bBase := (i % db.r) * cols
			for j := 0; j < cols; j++ {
				out.data[base+j] = fn(da.data[base+j], db.data[bBase+j])
			}
		}
	case db.r == rows && db.c == 1:
		// Column-vector broadcast across rows: b[i] spans destination row i.
		for i := 0; i < rows; i++ {
			base := i * cols
			bv := db.data[i]
			for j := 0; j < cols; j++ {
				out.data[base+j] = fn(da.data[base+j], bv)
			}
		}
	default:
		return nil, matErrorf(opElementOp, ErrDimensionMismatch)
	}

	return out, nil
}

// ElementAdd is ElementOp specialized to addition (broadcast applies).
func ElementAdd(a, b Matrix) (*Dense, error) {
	out, err := ElementOp(a, b, func(x, y float64) float64 { return x + y })
	if err != nil {
		return nil, matErrorf(opElementAdd, err)
	}

	return out, nil
}

// ElementSub is ElementOp specialized to subtraction (broadcast applies).
func ElementSub(a, b Matrix) (*Dense, error) {
	out, err := ElementOp(a, b, func(x, y float64) float64 { return x - y })
	if err != nil {
		return nil, matErrorf(opElementSub, err)
	}

	return out, nil
}

// ElementMul is ElementOp specialized to the Hadamard product (broadcast
// applies). This is element-wise multiplication, not the matrix product —
// use Mul for A×B.
func ElementMul(a, b Matrix) (*Dense, error) {
	out, err := ElementOp(a, b, func(x, y float64) float64 { return x * y })
	if err != nil {
		return nil, matErrorf(opElementMul, err)
	}

	return out, nil
}

// ElementDiv is ElementOp specialized to division (broadcast applies).
// Division by zero follows IEEE-754.
func ElementDiv(a, b Matrix) (*Dense, error) {
	out, err := ElementOp(a, b, func(x, y float64) float64 { return x / y })
	if err != nil {
		return nil, matErrorf(opElementDiv, err)
	}

	return out, nil
}

// ElementPow raises every element of m to the power p.
func ElementPow(m Matrix, p float64) (*Dense, error) {
	out, err := ElementOpScalar(m, p, math.Pow)
	if err != nil {
		return nil, matErrorf(opElementPow, err)
	}

	return out, nil
}

// ElementSqrt maps math.Sqrt over m. Negative inputs yield NaN per IEEE-754.
func ElementSqrt(m Matrix) (*Dense, error) { return Apply(m, math.Sqrt) }

// ElementAbs maps math.Abs over m.
func ElementAbs(m Matrix) (*Dense, error) { return Apply(m, math.Abs) }

// ElementExp maps math.Exp over m.
func ElementExp(m Matrix) (*Dense, error) { return Apply(m, math.Exp) }

// ElementLog maps math.Log (natural logarithm) over m. Non-positive inputs
// yield -Inf or NaN per IEEE-754.
func ElementLog(m Matrix) (*Dense, error) { return Apply(m, math.Log) }
