// SPDX-License-Identifier: MIT
// Package mat: structural utilities — row/column extraction, column removal,
// concatenation, bias-column insertion, polynomial feature expansion and
// flat-window reshape. Everything here returns a fresh *Dense; the input is
// never modified.

package mat

import "math"

const (
	opRow               = "Row"
	opCol               = "Col"
	opRemoveColumn      = "RemoveColumn"
	opJoin              = "Join"
	opPrependConstant   = "PrependConstant"
	opExpandPolynomials = "ExpandPolynomials"
	opReshape           = "Reshape"
)

// Row extracts row i of m as a fresh 1×c matrix.
// Errors: ErrNilMatrix, ErrOutOfRange.
func Row(m Matrix, i int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opRow, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matErrorf(opRow, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opRow, err)
	}
	out, err := NewDense(1, d.c)
	if err != nil {
		return nil, matErrorf(opRow, err)
	}
	copy(out.data, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// Col extracts column j of m as a fresh r×1 matrix.
// Errors: ErrNilMatrix, ErrOutOfRange.
func Col(m Matrix, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opCol, err)
	}
	if err := ValidateColIndex(m, j); err != nil {
		return nil, matErrorf(opCol, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opCol, err)
	}
	out, err := NewDense(d.r, 1)
	if err != nil {
		return nil, matErrorf(opCol, err)
	}
	for i := 0; i < d.r; i++ {
		out.data[i] = d.data[i*d.c+j]
	}

	return out, nil
}

// RemoveColumn returns m without column j as a fresh r×(c−1) matrix.
// Errors: ErrNilMatrix; ErrBadShape when m has a single column (removal
// would leave an empty matrix); ErrOutOfRange for a bad index.
func RemoveColumn(m Matrix, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opRemoveColumn, err)
	}
	if err := ValidateColIndex(m, j); err != nil {
		return nil, matErrorf(opRemoveColumn, err)
	}
	if m.Cols() == 1 {
		return nil, matErrorf(opRemoveColumn, ErrBadShape)
	}

	d, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opRemoveColumn, err)
	}
	out, err := NewDense(d.r, d.c-1)
	if err != nil {
		return nil, matErrorf(opRemoveColumn, err)
	}
	for i := 0; i < d.r; i++ {
		src := d.data[i*d.c : (i+1)*d.c]
		dst := out.data[i*out.c : (i+1)*out.c]
		copy(dst[:j], src[:j])
		copy(dst[j:], src[j+1:])
	}

	return out, nil
}

// Join concatenates a and b into a fresh matrix.
//
// Behavior highlights:
//   - DimCols places b to the right of a; the row counts must agree.
//   - DimRows stacks b below a; the column counts must agree.
//   - DimAuto picks DimCols when the row counts already agree, else DimRows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (incompatible on the resolved
// axis). Complexity: O(r*c) over the result.
func Join(a, b Matrix, dim Dim) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf(opJoin, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matErrorf(opJoin, err)
	}

	if dim == DimAuto {
		if a.Rows() == b.Rows() {
			dim = DimCols
		} else {
			dim = DimRows
		}
	}

	da, err := denseOf(a)
	if err != nil {
		return nil, matErrorf(opJoin, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matErrorf(opJoin, err)
	}

	switch dim {
	case DimCols:
		if da.r != db.r {
			return nil, matErrorf(opJoin, ErrDimensionMismatch)
		}
		out, err := NewDense(da.r, da.c+db.c)
		if err != nil {
			return nil, matErrorf(opJoin, err)
		}
		for i := 0; i < da.r; i++ {
			dst := out.data[i*out.c : (i+1)*out.c]
			copy(dst[:da.c], da.data[i*da.c:(i+1)*da.c])
			copy(dst[da.c:], db.data[i*db.c:(i+1)*db.c])
		}

		return out, nil
	default: // DimRows
		if da.c != db.c {
			return nil, matErrorf(opJoin, ErrDimensionMismatch)
		}
		out, err := NewDense(da.r+db.r, da.c)
		if err != nil {
			return nil, matErrorf(opJoin, err)
		}
		copy(out.data[:len(da.data)], da.data)
		copy(out.data[len(da.data):], db.data)

		return out, nil
	}
}

// PrependConstant returns m with a constant-value column inserted at index 0,
// the usual way to add a bias/identity column before regression.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func PrependConstant(m Matrix, v float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opPrependConstant, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opPrependConstant, err)
	}
	out, err := NewDense(d.r, d.c+1)
	if err != nil {
		return nil, matErrorf(opPrependConstant, err)
	}
	for i := 0; i < d.r; i++ {
		dst := out.data[i*out.c : (i+1)*out.c]
		dst[0] = v
		copy(dst[1:], d.data[i*d.c:(i+1)*d.c])
	}

	return out, nil
}

// ExpandPolynomials replaces two selected columns of m with the full monomial
// basis built from them, keeping every untouched column.
//
// Behavior highlights:
//   - The monomial block comes first: c1^(i−j) * c2^j for 0 ≤ j ≤ i ≤ degree,
//     emitted in ascending (i, j) order; i = j = 0 yields the constant 1.
//   - The remaining columns follow in their original relative order.
//   - The result has (degree+1)(degree+2)/2 + (cols−2) columns.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (column selectors).
//   - ErrInvalidDimensions when degree < 1 or col1 == col2.
//
// Complexity: Time O(r * degree²), Space O(r * outCols).
func ExpandPolynomials(m Matrix, col1, col2, degree int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opExpandPolynomials, err)
	}
	if err := ValidateColIndex(m, col1); err != nil {
		return nil, matErrorf(opExpandPolynomials, err)
	}
	if err := ValidateColIndex(m, col2); err != nil {
		return nil, matErrorf(opExpandPolynomials, err)
	}
	if degree < 1 || col1 == col2 {
		return nil, matErrorf(opExpandPolynomials, ErrInvalidDimensions)
	}

	d, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opExpandPolynomials, err)
	}
	monomials := (degree + 1) * (degree + 2) / 2
	out, err := NewDense(d.r, monomials+d.c-2)
	if err != nil {
		return nil, matErrorf(opExpandPolynomials, err)
	}

	for r := 0; r < d.r; r++ {
		src := d.data[r*d.c : (r+1)*d.c]
		dst := out.data[r*out.c : (r+1)*out.c]
		x1, x2 := src[col1], src[col2]

		k := 0
		for i := 0; i <= degree; i++ {
			for j := 0; j <= i; j++ {
				dst[k] = math.Pow(x1, float64(i-j)) * math.Pow(x2, float64(j))
				k++
			}
		}
		for j := 0; j < d.c; j++ {
			if j == col1 || j == col2 {
				continue
			}
			dst[k] = src[j]
			k++
		}
	}

	return out, nil
}

// Reshape reads rows*cols elements of m's flat row-major storage starting at
// offset and fills a fresh rows×cols matrix column-major: each destination
// column is filled top to bottom before moving right.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for non-positive target dimensions.
//   - ErrOutOfRange when the window [offset, offset+rows*cols) does not fit
//     inside the source storage.
//
// Complexity: O(rows*cols).
func Reshape(m Matrix, rows, cols, offset int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opReshape, err)
	}
	if rows < 1 || cols < 1 {
		return nil, matErrorf(opReshape, ErrInvalidDimensions)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opReshape, err)
	}
	need := rows * cols
	if offset < 0 || offset+need > len(d.data) {
		return nil, matErrorf(opReshape, ErrOutOfRange)
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matErrorf(opReshape, err)
	}
	k := offset
	for j := 0; j < cols; j++ { // column-major fill of the destination
		for i := 0; i < rows; i++ {
			out.data[i*cols+j] = d.data[k]
			k++
		}
	}

	return out, nil
}
