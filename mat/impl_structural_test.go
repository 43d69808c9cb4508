// SPDX-License-Identifier: MIT

package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nummat/mat"
)

func TestRowCol_Extraction(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	r, err := mat.Row(m, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 5, 6}}, rowsOf(t, r))

	c, err := mat.Col(m, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3}, {6}}, rowsOf(t, c))

	// Extraction is a copy: mutating the result leaves the source alone.
	require.NoError(t, r.Set(0, 0, 99))
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rowsOf(t, m))

	_, err = mat.Row(m, 2)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
	_, err = mat.Col(m, -1)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
}

func TestRemoveColumn(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	first, err := mat.RemoveColumn(m, 0)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 3}, {5, 6}}, rowsOf(t, first))

	mid, err := mat.RemoveColumn(m, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {4, 6}}, rowsOf(t, mid))

	last, err := mat.RemoveColumn(m, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {4, 5}}, rowsOf(t, last))

	_, err = mat.RemoveColumn(m, 3)
	require.ErrorIs(t, err, mat.ErrOutOfRange)

	single := mustFromRows(t, [][]float64{{1}, {2}})
	_, err = mat.RemoveColumn(single, 0)
	require.ErrorIs(t, err, mat.ErrBadShape)
}

func TestJoin_Axes(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5}, {6}})

	side, err := mat.Join(a, b, mat.DimCols)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 5}, {3, 4, 6}}, rowsOf(t, side))

	c := mustFromRows(t, [][]float64{{7, 8}})
	stacked, err := mat.Join(a, c, mat.DimRows)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {7, 8}}, rowsOf(t, stacked))
}

func TestJoin_Auto(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	// Matching row counts: Auto resolves to side-by-side.
	b := mustFromRows(t, [][]float64{{5}, {6}})
	side, err := mat.Join(a, b, mat.DimAuto)
	require.NoError(t, err)
	require.Equal(t, 2, side.Rows())
	require.Equal(t, 3, side.Cols())

	// Different row counts: Auto resolves to stacking.
	c := mustFromRows(t, [][]float64{{7, 8}})
	stacked, err := mat.Join(a, c, mat.DimAuto)
	require.NoError(t, err)
	require.Equal(t, 3, stacked.Rows())
	require.Equal(t, 2, stacked.Cols())
}

func TestJoin_Errors(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{1, 2, 3}})

	_, err := mat.Join(a, b, mat.DimCols)
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
	_, err = mat.Join(a, b, mat.DimRows)
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
	_, err = mat.Join(nil, b, mat.DimAuto)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

// A −1 row vector joined above the order-3 magic square must yield a 4×3
// matrix whose first row is all −1 and whose remainder is the square.
func TestJoin_RowAboveMagicSquare(t *testing.T) {
	top := mustFromRows(t, [][]float64{{-1, -1, -1}})
	square, err := mat.Magic(3)
	require.NoError(t, err)

	joined, err := mat.Join(top, square, mat.DimRows)
	require.NoError(t, err)
	require.Equal(t, 4, joined.Rows())
	require.Equal(t, 3, joined.Cols())
	require.Equal(t, []float64{-1, -1, -1}, rowsOf(t, joined)[0])
	require.Equal(t, rowsOf(t, square), rowsOf(t, joined)[1:])
}

func TestPrependConstant(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 3}, {4, 5}})
	out, err := mat.PrependConstant(m, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {1, 4, 5}}, rowsOf(t, out))
}

func TestExpandPolynomials_Degree2(t *testing.T) {
	// Columns: bias, x1, x2. Expand x1 and x2 to degree 2.
	m := mustFromRows(t, [][]float64{{1, 2, 3}})
	out, err := mat.ExpandPolynomials(m, 1, 2, 2)
	require.NoError(t, err)

	// Monomials in (i, j) order: 1, x1, x2, x1², x1·x2, x2²; then the bias.
	require.Equal(t, 1, out.Rows())
	require.Equal(t, 7, out.Cols()) // (2+1)(2+2)/2 + (3−2) = 6 + 1
	require.Equal(t, [][]float64{{1, 2, 3, 4, 6, 9, 1}}, rowsOf(t, out))
}

func TestExpandPolynomials_Errors(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}})
	_, err := mat.ExpandPolynomials(m, 0, 3, 2)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
	_, err = mat.ExpandPolynomials(m, 1, 1, 2)
	require.ErrorIs(t, err, mat.ErrInvalidDimensions)
	_, err = mat.ExpandPolynomials(m, 0, 1, 0)
	require.ErrorIs(t, err, mat.ErrInvalidDimensions)
}

func TestReshape_ColumnMajorFill(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	// Full window: flat storage 1..6 filled down columns of a 2×3 target.
	out, err := mat.Reshape(m, 2, 3, 0)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, rowsOf(t, out))

	// Offset window: elements 3..6 into a 2×2 target.
	out, err = mat.Reshape(m, 2, 2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 5}, {4, 6}}, rowsOf(t, out))
}

// Every structural operation must reject a nil operand with ErrNilMatrix,
// including the index-taking ones where the index check runs after.
func TestStructural_NilOperand(t *testing.T) {
	_, err := mat.Row(nil, 0)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
	_, err = mat.Col(nil, 0)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
	_, err = mat.RemoveColumn(nil, 0)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
	_, err = mat.ExpandPolynomials(nil, 0, 1, 2)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
	_, err = mat.PrependConstant(nil, 1)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
	_, err = mat.Reshape(nil, 1, 1, 0)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

func TestReshape_Errors(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := mat.Reshape(m, 2, 3, 1) // window spills past the storage
	require.ErrorIs(t, err, mat.ErrOutOfRange)
	_, err = mat.Reshape(m, 0, 3, 0)
	require.ErrorIs(t, err, mat.ErrInvalidDimensions)
	_, err = mat.Reshape(m, 2, 2, -1)
	require.ErrorIs(t, err, mat.ErrOutOfRange)
}
