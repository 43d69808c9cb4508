// SPDX-License-Identifier: MIT

// Package mat: Dense is the concrete, row-major implementation of the Matrix
// interface, storing elements in a flat slice for performance and cache
// friendliness. Element (r, c) lives at linear offset r*cols + c.
package mat

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
//
// A Dense is immutable from the outside except through the explicitly
// documented in-place mutators (Fill, SetRow, SwapRows); every package-level
// operator returns a newly allocated result and never aliases input storage.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions before any allocation.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a literal 2-D array.
// Stage 1 (Validate): the literal must be non-empty and rectangular.
// Stage 2 (Execute): copy row by row into the flat buffer.
//
// Errors:
//   - ErrBadShape: empty literal, empty first row, or ragged rows.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	// Reject empty literals up front.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])

	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		// Every row must carry exactly c values.
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// CopyOf returns a Dense copy of any Matrix implementation.
// A *Dense input is copied flat; other implementations are read via At.
// Complexity: O(r*c).
func CopyOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("CopyOf: %w", err)
	}

	return denseOf(m)
}

// denseOf converts m into a *Dense, reusing nothing: the result always owns
// fresh storage. Internal helper shared by kernels that need flat access.
func denseOf(m Matrix) (*Dense, error) {
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	// Fast path: flat copy between Dense buffers.
	if d, ok := m.(*Dense); ok {
		copy(out.data, d.data)
		return out, nil
	}

	// Fallback: interface path with fixed i→j order.
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Rows returns the number of rows in the matrix. O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. O(1).
func (m *Dense) Cols() int { return m.c }

// Dims returns (rows, cols) in one call. O(1).
func (m *Dense) Dims() (int, int) { return m.r, m.c }

// IsSquare reports whether the matrix has as many rows as columns. O(1).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped) for invalid indices. O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange (wrapped) for invalid indices. O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix. O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Fill overwrites every element with v. Documented in-place mutator. O(r*c).
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// SetRow overwrites row i in place with values from vals.
// Only min(len(vals), Cols()) leading entries are written; the remainder of
// the row is left untouched. Documented in-place mutator.
//
// Errors:
//   - ErrOutOfRange: row index outside [0, Rows()).
//
// Complexity: O(c).
func (m *Dense) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf("SetRow", i, 0, ErrOutOfRange)
	}
	n := len(vals)
	if n > m.c {
		n = m.c
	}
	copy(m.data[i*m.c:i*m.c+n], vals[:n])

	return nil
}

// SwapRows exchanges rows i and j in place. Documented in-place mutator;
// this is the row-swap primitive used by the Gauss-Jordan pivoting.
//
// Errors:
//   - ErrOutOfRange: either row index outside [0, Rows()).
//
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf("SwapRows", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil // nothing to move
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// String implements fmt.Stringer: a fixed two-decimal-place, row-per-line
// rendering used for diagnostic display, not for round-tripping.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.2f", m.data[i*m.c+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
