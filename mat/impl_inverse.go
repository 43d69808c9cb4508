// SPDX-License-Identifier: MIT
// Package mat: square-matrix inversion.
//
// Inverse runs Gauss-Jordan elimination on a working copy of the input and
// an identity accumulator in lockstep: every row swap and every elimination
// step hits both buffers with the same multipliers. Elimination uses
// cross-multiplication (row_r = row_r*pivot − row_d*factor), deferring all
// division to a single normalization pass at the end; this keeps the main
// loop division-free and makes the singularity checks exact comparisons
// against zero rather than epsilon thresholds.

package mat

const opInverse = "Inverse"

// swapPivotRows restores a non-zero pivot at diagonal d by swapping row d
// with a row i where both w[i,d] and w[d,i] are non-zero, in the working
// matrix and the accumulator alike. Reports false when no such row exists.
func swapPivotRows(w, acc *Dense, d int) bool {
	n := w.r
	for i := 0; i < n; i++ {
		if i == d {
			continue
		}
		if w.data[i*n+d] != 0 && w.data[d*n+i] != 0 {
			w.swapRowsUnchecked(d, i)
			acc.swapRowsUnchecked(d, i)

			return true
		}
	}

	return false
}

// swapRowsUnchecked exchanges rows a and b of the flat buffer without index
// validation. Elimination-internal; indices come from loop counters.
func (d *Dense) swapRowsUnchecked(a, b int) {
	ra := d.data[a*d.c : (a+1)*d.c]
	rb := d.data[b*d.c : (b+1)*d.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// Inverse computes the multiplicative inverse of a square matrix so that
// Mul(m, Inverse(m)) is the identity within floating tolerance.
//
// Implementation:
//   - Stage 1: validate squareness; materialize the working copy w and the
//     identity accumulator acc.
//   - Stage 2: for each diagonal d ascending — restore a non-zero pivot by
//     row swap if needed, then eliminate column d from every other row r via
//     row_r = row_r*w[d,d] − row_d*w[r,d] applied to w and acc in lockstep.
//   - Stage 3: divide each accumulator row by the surviving diagonal value
//     w[i,i], yielding the true inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when no pivot swap can restore a non-zero diagonal, or a
//     diagonal value is still zero at normalization.
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matErrorf(opInverse, err)
	}

	w, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opInverse, err)
	}
	n := w.r
	acc, err := NewIdentity(n)
	if err != nil {
		return nil, matErrorf(opInverse, err)
	}

	for d := 0; d < n; d++ {
		if w.data[d*n+d] == 0 && !swapPivotRows(w, acc, d) {
			return nil, matErrorf(opInverse, ErrSingular)
		}
		pivot := w.data[d*n+d]
		rowWD := w.data[d*n : (d+1)*n]
		rowAD := acc.data[d*n : (d+1)*n]
		for r := 0; r < n; r++ {
			if r == d {
				continue
			}
			factor := w.data[r*n+d] // capture before the row is rewritten
			rowW := w.data[r*n : (r+1)*n]
			rowA := acc.data[r*n : (r+1)*n]
			for j := 0; j < n; j++ {
				rowW[j] = rowW[j]*pivot - rowWD[j]*factor
				rowA[j] = rowA[j]*pivot - rowAD[j]*factor
			}
		}
	}

	// Normalization: the working matrix is now diagonal; scale each
	// accumulator row by the inverse of its surviving diagonal value.
	for i := 0; i < n; i++ {
		diag := w.data[i*n+i]
		if diag == 0 {
			return nil, matErrorf(opInverse, ErrSingular)
		}
		rowA := acc.data[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			rowA[j] /= diag
		}
	}

	return acc, nil
}
