// SPDX-License-Identifier: MIT

package mat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nummat/mat"
)

// scalarStat collapses a vector-shaped matrix through fn and returns the
// single resulting value.
func scalarStat(t *testing.T, fn func(mat.Matrix, mat.Dim) (*mat.Dense, error), vals []float64) float64 {
	t.Helper()
	m := mustFromRows(t, [][]float64{vals})
	res, err := fn(m, mat.DimAuto)
	require.NoError(t, err)
	require.Equal(t, 1, res.Rows())
	require.Equal(t, 1, res.Cols())

	return rowsOf(t, res)[0][0]
}

func TestMean_Axes(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	byRows, err := mat.Mean(m, mat.DimRows)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2}, {5}}, rowsOf(t, byRows))

	byCols, err := mat.Mean(m, mat.DimCols)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2.5, 3.5, 4.5}}, rowsOf(t, byCols))
}

func TestMeanSquare(t *testing.T) {
	got := scalarStat(t, mat.MeanSquare, []float64{1, 2, 3})
	require.InDelta(t, 14.0/3.0, got, 1e-12)
}

func TestMinMaxAndIndices(t *testing.T) {
	vals := []float64{3, 1, 3, 1}
	require.Equal(t, 3.0, scalarStat(t, mat.Max, vals))
	require.Equal(t, 1.0, scalarStat(t, mat.Min, vals))
	// First occurrence wins for both argmax and argmin.
	require.Equal(t, 0.0, scalarStat(t, mat.MaxIndex, vals))
	require.Equal(t, 1.0, scalarStat(t, mat.MinIndex, vals))
	require.Equal(t, 2.0, scalarStat(t, mat.Range, vals))
}

func TestMedian(t *testing.T) {
	require.Equal(t, 2.0, scalarStat(t, mat.Median, []float64{1, 2, 3}))
	// Even length: average of the two central sorted elements.
	require.Equal(t, 2.5, scalarStat(t, mat.Median, []float64{1, 2, 3, 4}))
	// Unsorted input must be sorted internally.
	require.Equal(t, 3.0, scalarStat(t, mat.Median, []float64{5, 1, 3, 2, 4}))
	require.Equal(t, 7.0, scalarStat(t, mat.Median, []float64{7}))
}

func TestQuartiles(t *testing.T) {
	// Even count: each quartile is the median of its half.
	require.Equal(t, 1.5, scalarStat(t, mat.Quartile1, []float64{1, 2, 3, 4}))
	require.Equal(t, 3.5, scalarStat(t, mat.Quartile3, []float64{1, 2, 3, 4}))
	require.Equal(t, 2.0, scalarStat(t, mat.IQR, []float64{1, 2, 3, 4}))

	// n = 4k+1: 0.25/0.75 blend.
	require.InDelta(t, 1.75, scalarStat(t, mat.Quartile1, []float64{1, 2, 3, 4, 5}), 1e-12)
	require.InDelta(t, 4.25, scalarStat(t, mat.Quartile3, []float64{1, 2, 3, 4, 5}), 1e-12)

	// n = 4k+3: 0.75/0.25 blend.
	require.InDelta(t, 2.25, scalarStat(t, mat.Quartile1, []float64{1, 2, 3, 4, 5, 6, 7}), 1e-12)
	require.InDelta(t, 5.75, scalarStat(t, mat.Quartile3, []float64{1, 2, 3, 4, 5, 6, 7}), 1e-12)
}

func TestMode(t *testing.T) {
	require.Equal(t, 1.0, scalarStat(t, mat.Mode, []float64{1, 1, 2, 3}))
	require.Equal(t, 2.0, scalarStat(t, mat.Mode, []float64{3, 2, 2, 2, 1}))
	// Tied cardinality resolves to the smallest value.
	require.Equal(t, 1.0, scalarStat(t, mat.Mode, []float64{2, 2, 1, 1, 3}))
}

func TestVarianceStdDev(t *testing.T) {
	// Constant vector has zero spread.
	require.Equal(t, 0.0, scalarStat(t, mat.Variance, []float64{5, 5, 5, 5}))

	// Sample variance of 1..4: mean 2.5, squared deviations sum 5, n−1 = 3.
	require.InDelta(t, 5.0/3.0, scalarStat(t, mat.Variance, []float64{1, 2, 3, 4}), 1e-12)
	require.InDelta(t, math.Sqrt(5.0/3.0), scalarStat(t, mat.StdDev, []float64{1, 2, 3, 4}), 1e-12)

	// A single observation has variance 0 by convention.
	require.Equal(t, 0.0, scalarStat(t, mat.Variance, []float64{42}))
}

func TestStatistics_ByRowsShape(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 1, 3}, {9, 7, 8}})
	med, err := mat.Median(m, mat.DimRows)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3}, {8}}, rowsOf(t, med))
}

// ReduceVec must hand each kernel an independent copy: a sorting statistic
// applied column-wise may not disturb the source matrix.
func TestReduceVec_DoesNotMutateSource(t *testing.T) {
	m := mustFromRows(t, [][]float64{{3, 6}, {1, 4}, {2, 5}})
	_, err := mat.Median(m, mat.DimCols)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 6}, {1, 4}, {2, 5}}, rowsOf(t, m))
}

func TestStatistics_NilOperand(t *testing.T) {
	_, err := mat.Mean(nil, mat.DimAuto)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
	_, err = mat.ReduceVec(nil, mat.DimAuto, func(v []float64) float64 { return 0 })
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}
