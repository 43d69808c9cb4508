// SPDX-License-Identifier: MIT
// Package mat: transposition and fused transpose-products.
//
// Transpose materializes Aᵗ. The fused kernels MulTransposeOf (A·Bᵗ),
// TransposeMul (Aᵗ·B) and the Gram specializations never build the
// intermediate transpose: they re-index the operands directly, which keeps
// the memory footprint at the size of the result and the access pattern
// sequential on at least one operand.
//
// Concurrency:
//   - All products here are row-parallel over destination rows, same policy
//     as Mul (see parallel.go).

package mat

const (
	opTranspose      = "Transpose"
	opMulTransposeOf = "MulTransposeOf"
	opTransposeMul   = "TransposeMul"
	opGram           = "Gram"
	opGramT          = "GramT"
)

// Transpose returns Aᵗ as a fresh c×r Dense.
//
// Implementation:
//   - Fast path for *Dense: single i→j pass writing out[j*r+i] from the flat
//     backing slice.
//   - Fallback: interface path via At with a fixed i→j order.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, matErrorf(opTranspose, err)
	}

	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				out.data[j*rows+i] = d.data[base+j]
			}
		}

		return out, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matErrorf(opTranspose, err)
			}
			out.data[j*rows+i] = v
		}
	}

	return out, nil
}

// MulTransposeOf computes C = A × Bᵗ without materializing Bᵗ.
// A is r×n and B is c×n (the column counts must agree); C is r×c, with
// C[i,j] the dot product of row i of A and row j of B. Both operands are
// walked along contiguous rows, so the kernel is cache-friendly on each.
//
// Inputs:
//   - opts: optional execution policy (WithWorkers, WithMinParallelRows).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Cols).
// Complexity: Time O(r*n*c), Space O(r*c).
func MulTransposeOf(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf(opMulTransposeOf, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matErrorf(opMulTransposeOf, err)
	}
	if a.Cols() != b.Cols() {
		return nil, matErrorf(opMulTransposeOf, ErrDimensionMismatch)
	}

	da, err := denseOf(a)
	if err != nil {
		return nil, matErrorf(opMulTransposeOf, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matErrorf(opMulTransposeOf, err)
	}

	rows, inner, cols := da.r, da.c, db.r
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matErrorf(opMulTransposeOf, err)
	}
	forEachRow(rows, gatherOptions(opts...), func(i int) {
		rowA := da.data[i*inner : (i+1)*inner]
		rowR := res.data[i*cols : (i+1)*cols]
		for j := 0; j < cols; j++ {
			rowB := db.data[j*inner : (j+1)*inner]
			dot := 0.0
			for k := 0; k < inner; k++ {
				dot += rowA[k] * rowB[k]
			}
			rowR[j] = dot
		}
	})

	return res, nil
}

// TransposeMul computes C = Aᵗ × B without materializing Aᵗ.
// A is n×r and B is n×c (the row counts must agree); C is r×c, with
// C[i,j] the dot product of column i of A and column j of B.
//
// Implementation:
//   - Destination rows are split across workers; each worker accumulates
//     rowR[j] += A[k,i] * B[k,j] over k, reading B along contiguous rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (A.Rows != B.Rows).
// Complexity: Time O(n*r*c), Space O(r*c).
func TransposeMul(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf(opTransposeMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matErrorf(opTransposeMul, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matErrorf(opTransposeMul, ErrDimensionMismatch)
	}

	da, err := denseOf(a)
	if err != nil {
		return nil, matErrorf(opTransposeMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matErrorf(opTransposeMul, err)
	}

	inner, rows, cols := da.r, da.c, db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matErrorf(opTransposeMul, err)
	}
	forEachRow(rows, gatherOptions(opts...), func(i int) {
		rowR := res.data[i*cols : (i+1)*cols]
		for k := 0; k < inner; k++ {
			av := da.data[k*rows+i]
			if av == 0 {
				continue
			}
			rowB := db.data[k*cols : (k+1)*cols]
			for j := 0; j < cols; j++ {
				rowR[j] += av * rowB[j]
			}
		}
	})

	return res, nil
}

// GramT returns A × Aᵗ, the r×r matrix of pairwise row dot products.
// Errors: ErrNilMatrix. Complexity: O(r²·c).
func GramT(a Matrix, opts ...Option) (*Dense, error) {
	out, err := MulTransposeOf(a, a, opts...)
	if err != nil {
		return nil, matErrorf(opGramT, err)
	}

	return out, nil
}

// Gram returns Aᵗ × A, the c×c matrix of pairwise column dot products.
// Errors: ErrNilMatrix. Complexity: O(c²·r).
func Gram(a Matrix, opts ...Option) (*Dense, error) {
	out, err := TransposeMul(a, a, opts...)
	if err != nil {
		return nil, matErrorf(opGram, err)
	}

	return out, nil
}
