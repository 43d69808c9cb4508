// SPDX-License-Identifier: MIT

package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nummat/mat"
)

func TestApply(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, -2}, {-3, 4}})
	res, err := mat.Apply(m, func(x float64) float64 { return x * x })
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {9, 16}}, rowsOf(t, res))

	_, err = mat.Apply(nil, math.Abs)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

func TestElementOp_ExactShape(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})
	res, err := mat.ElementMul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{10, 40}, {90, 160}}, rowsOf(t, res))
}

func TestElementOp_RowBroadcast(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}})
	rowVec := mustFromRows(t, [][]float64{{100, 200, 300}})

	res, err := mat.ElementAdd(a, rowVec)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{101, 202, 303},
		{104, 205, 306},
		{107, 208, 309},
		{110, 211, 312},
	}, rowsOf(t, res))

	// Two broadcast rows reused cyclically down four destination rows.
	twoRows := mustFromRows(t, [][]float64{{1, 1, 1}, {2, 2, 2}})
	res, err = mat.ElementAdd(a, twoRows)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{2, 3, 4},
		{6, 7, 8},
		{8, 9, 10},
		{12, 13, 14},
	}, rowsOf(t, res))
}

func TestElementOp_ColumnBroadcast(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	colVec := mustFromRows(t, [][]float64{{10}, {20}})

	res, err := mat.ElementAdd(a, colVec)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 12, 13}, {24, 25, 26}}, rowsOf(t, res))
}

func TestElementOp_IncompatibleShapes(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	_, err := mat.ElementAdd(a, b)
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestElementDivSub(t *testing.T) {
	a := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})
	b := mustFromRows(t, [][]float64{{2, 4}, {5, 8}})

	div, err := mat.ElementDiv(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 5}, {6, 5}}, rowsOf(t, div))

	sub, err := mat.ElementSub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{8, 16}, {25, 32}}, rowsOf(t, sub))
}

func TestElementUnaryMaps(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 9}})

	sq, err := mat.ElementSqrt(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 3}}, rowsOf(t, sq))

	pow, err := mat.ElementPow(m, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{16, 81}}, rowsOf(t, pow))

	abs, err := mat.ElementAbs(mustFromRows(t, [][]float64{{-4, 9}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 9}}, rowsOf(t, abs))

	exp, err := mat.ElementExp(mustFromRows(t, [][]float64{{0, 1}}))
	require.NoError(t, err)
	got := rowsOf(t, exp)[0]
	require.Equal(t, 1.0, got[0])
	require.InDelta(t, math.E, got[1], 1e-12)

	lg, err := mat.ElementLog(mustFromRows(t, [][]float64{{1, math.E}}))
	require.NoError(t, err)
	got = rowsOf(t, lg)[0]
	require.Equal(t, 0.0, got[0])
	require.InDelta(t, 1.0, got[1], 1e-12)
}

func TestElementOpScalar(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	res, err := mat.ElementOpScalar(m, 3, math.Max)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 3}, {3, 4}}, rowsOf(t, res))
}
