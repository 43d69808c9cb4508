// SPDX-License-Identifier: MIT
// Package mat: comparison surface.
//
// Two distinct notions live here and must not be confused:
//   - Relational operators against a scalar (EqScalar, LtScalar, ...) produce
//     a same-shape truth-table matrix of 1.0/0.0 values, row-parallel.
//   - Equal/AllClose/Fingerprint compare two matrices by value: shape
//     mismatch is simply "not equal", never an error.

package mat

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

const (
	opEqScalar = "EqScalar"
	opNeScalar = "NeScalar"
	opLtScalar = "LtScalar"
	opGtScalar = "GtScalar"
	opLeScalar = "LeScalar"
	opGeScalar = "GeScalar"
	opAllClose = "AllClose"
)

// Truth values used by the relational operators.
const (
	truthTrue  = 1.0
	truthFalse = 0.0
)

// compareScalar builds the 1.0/0.0 truth table for pred over m.
// Internal helper shared by the six relational operators; row-parallel.
// Complexity: O(r*c).
func compareScalar(m Matrix, opTag string, po parallelOpts, pred func(x float64) bool) (*Dense, error) {
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
			if pred(src.data[base+j]) {
				res.data[base+j] = truthTrue
			} else {
				res.data[base+j] = truthFalse
			}
		}
	})

	return res, nil
}

// EqScalar returns the truth table of m[i,j] == s. Row-parallel. O(r*c).
func EqScalar(m Matrix, s float64, opts ...Option) (*Dense, error) {
	return compareScalar(m, opEqScalar, gatherOptions(opts...), func(x float64) bool { return x == s })
}

// NeScalar returns the truth table of m[i,j] != s. Row-parallel. O(r*c).
func NeScalar(m Matrix, s float64, opts ...Option) (*Dense, error) {
	return compareScalar(m, opNeScalar, gatherOptions(opts...), func(x float64) bool { return x != s })
}

// LtScalar returns the truth table of m[i,j] < s. Row-parallel. O(r*c).
func LtScalar(m Matrix, s float64, opts ...Option) (*Dense, error) {
	return compareScalar(m, opLtScalar, gatherOptions(opts...), func(x float64) bool { return x < s })
}

// GtScalar returns the truth table of m[i,j] > s. Row-parallel. O(r*c).
func GtScalar(m Matrix, s float64, opts ...Option) (*Dense, error) {
	return compareScalar(m, opGtScalar, gatherOptions(opts...), func(x float64) bool { return x > s })
}

// LeScalar returns the truth table of m[i,j] <= s. Row-parallel. O(r*c).
func LeScalar(m Matrix, s float64, opts ...Option) (*Dense, error) {
	return compareScalar(m, opLeScalar, gatherOptions(opts...), func(x float64) bool { return x <= s })
}

// GeScalar returns the truth table of m[i,j] >= s. Row-parallel. O(r*c).
func GeScalar(m Matrix, s float64, opts ...Option) (*Dense, error) {
	return compareScalar(m, opGeScalar, gatherOptions(opts...), func(x float64) bool { return x >= s })
}

// Equal reports strict value equality of a and b across all elements at
// matching shape. Matrices of different shape are never equal — a shape
// mismatch is "false", not an error. Nil operands are equal only to nil.
// Complexity: O(r*c), early exit on first difference.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast path: flat slice comparison.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	// Fallback: interface path with fixed i→j order. At cannot fail after
	// the shape agreement above.
	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true, nil) if all elements satisfy the relation. Negative
// tolerances are normalized to their absolute values.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), early exit on first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matErrorf(opAllClose, err)
	}

	da, err := denseOf(a)
	if err != nil {
		return false, matErrorf(opAllClose, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return false, matErrorf(opAllClose, err)
	}
	for idx := range da.data {
		diff := math.Abs(da.data[idx] - db.data[idx])
		if diff > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// Fingerprint returns a value-based FNV-1a hash of m: shape first, then the
// IEEE-754 bit pattern of every element in row-major order. Two matrices
// that are Equal always fingerprint identically; intended for test dedup and
// map keys, not cryptography.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Fingerprint(m Matrix) (uint64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matErrorf("Fingerprint", err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matErrorf("Fingerprint", err)
	}

	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(d.r))
	_, _ = h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(d.c))
	_, _ = h.Write(buf[:])
	for _, v := range d.data {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64(), nil
}
