// SPDX-License-Identifier: MIT

// Package mat: domain-facing types shared across the package. Errors and
// options live in dedicated files (errors.go, options.go) per the package
// conventions.
package mat

// Matrix represents a two-dimensional array of float64 values.
//
// All package-level kernels accept any Matrix implementation and return a
// fresh *Dense; a *Dense operand unlocks the flat-slice fast paths.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Dim selects the axis along which a reduction or join operates.
//
//   - DimRows collapses (or stacks along) rows: a reduction produces one value
//     per row, i.e. an r×1 column.
//   - DimCols collapses (or joins along) columns: a reduction produces one
//     value per column, i.e. a 1×c row.
//   - DimAuto infers the axis: a row or column vector collapses to a single
//     1×1 scalar; any other matrix defaults to DimCols. For Join, DimAuto
//     picks DimCols when row counts already match, else DimRows.
type Dim int

const (
	// DimAuto infers the axis from the operand shape (see type docs).
	DimAuto Dim = iota
	// DimRows operates across each row (reduction output: r×1).
	DimRows
	// DimCols operates across each column (reduction output: 1×c).
	DimCols
)

// String implements fmt.Stringer for diagnostics and test names.
func (d Dim) String() string {
	switch d {
	case DimRows:
		return "Rows"
	case DimCols:
		return "Cols"
	default:
		return "Auto"
	}
}
