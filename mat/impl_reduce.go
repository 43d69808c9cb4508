// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//   - Provide the dimension-reduction framework: Reduce collapses every row
//     or every column to a single number through an order-independent
//     accumulator seeded at zero (suitable for sums); ReduceVec (see
//     impl_statistics.go) handles order-sensitive statistics.
//
// Dim resolution (shared by both frameworks):
//   - DimAuto on a row or column vector collapses the whole vector into a
//     1×1 scalar; on any other matrix it defaults to DimCols.
//   - DimRows produces one value per row (r×1); DimCols one per column (1×c).

package mat

const (
	opReduce = "Reduce"
	opSum    = "Sum"
)

// resolveDim maps DimAuto to the effective axis for the shape of m.
// A vector (single row or single column) reduces along its only extent, so
// the result of either axis is the same 1×1 scalar; we pick the axis that
// yields it directly.
func resolveDim(m Matrix, dim Dim) Dim {
	if dim != DimAuto {
		return dim
	}
	if m.Rows() == 1 {
		return DimRows // 1×c row vector → single value
	}
	if m.Cols() == 1 {
		return DimCols // r×1 column vector → single value
	}

	return DimCols // default: collapse each column
}

// Reduce collapses rows or columns of m to single numbers using fn as an
// order-independent accumulator seeded at zero.
//
// Implementation:
//   - Stage 1: validate m; resolve DimAuto per the package policy.
//   - Stage 2: fixed i→j (DimRows) or j→i (DimCols) accumulation into the
//     output vector.
//
// Inputs:
//   - fn: accumulator step, next = fn(acc, x); it must be insensitive to
//     element order (e.g. addition). For order-sensitive statistics use
//     ReduceVec.
//
// Returns:
//   - *Dense: r×1 for DimRows, 1×c for DimCols, 1×1 for DimAuto on vectors.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r) or O(c).
func Reduce(m Matrix, dim Dim, fn func(acc, x float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opReduce, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opReduce, err)
	}

	rows, cols := d.r, d.c
	switch resolveDim(d, dim) {
	case DimRows:
		out, err := NewDense(rows, 1)
		if err != nil {
			return nil, matErrorf(opReduce, err)
		}
		for i := 0; i < rows; i++ {
			acc := 0.0 // accumulation is seeded at zero
			base := i * cols
			for j := 0; j < cols; j++ {
				acc = fn(acc, d.data[base+j])
			}
			out.data[i] = acc
		}

		return out, nil
	default: // DimCols
		out, err := NewDense(1, cols)
		if err != nil {
			return nil, matErrorf(opReduce, err)
		}
		for j := 0; j < cols; j++ {
			acc := 0.0
			for i := 0; i < rows; i++ {
				acc = fn(acc, d.data[i*cols+j])
			}
			out.data[j] = acc
		}

		return out, nil
	}
}

// Sum collapses rows or columns to their element sums; the canonical
// instantiation of Reduce. Sum(M, DimRows) then Sum(result, DimAuto) equals
// Sum(M, DimAuto): the scalar sum of all elements.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Sum(m Matrix, dim Dim) (*Dense, error) {
	out, err := Reduce(m, dim, func(acc, x float64) float64 { return acc + x })
	if err != nil {
		return nil, matErrorf(opSum, err)
	}

	return out, nil
}
