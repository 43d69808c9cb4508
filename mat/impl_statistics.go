// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//   - Provide the statistical reduction framework: ReduceVec extracts each
//     row or column as an independent vector and applies a whole-vector
//     function, enabling order-sensitive statistics that a pairwise
//     accumulator cannot express (median, quartiles, mode, argmin/argmax).
//   - Every named statistic (Mean, MeanSquare, Max, Min, MaxIndex, MinIndex,
//     Range, Median, Quartile1, Quartile3, IQR, Mode, Variance, StdDev) is a
//     fixed instantiation of ReduceVec over a private vector kernel.
//
// Numeric semantics:
//   - MaxIndex/MinIndex return the index of the FIRST occurrence of the
//     extremum scanning forward.
//   - Median uses the canonical definition: middle sorted element for odd
//     length, average of the two central sorted elements for even length.
//   - Quartiles sort ascending and branch on count: even → nested-midpoint
//     (median of each half); count ≡ 1 (mod 4) → 0.25/0.75 weighted blend of
//     the neighbors; count ≡ 3 (mod 4) → the symmetric 0.75/0.25 blend.
//   - Mode groups by exact value equality; on tied cardinality the smallest
//     value wins.
//   - Variance is the sample variance (divisor n−1); a single-element vector
//     has variance 0 by convention.

package mat

import (
	"math"
	"sort"
)

const opReduceVec = "ReduceVec"

// ReduceVec collapses rows or columns of m by applying fn to each extracted
// row/column vector. The vector passed to fn is a private copy; fn may
// reorder it freely.
//
// Returns:
//   - *Dense: r×1 for DimRows, 1×c for DimCols, 1×1 for DimAuto on vectors.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c) + the cost of fn per vector, Space O(max(r,c)).
func ReduceVec(m Matrix, dim Dim, fn func(v []float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf(opReduceVec, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matErrorf(opReduceVec, err)
	}

	rows, cols := d.r, d.c
	switch resolveDim(d, dim) {
	case DimRows:
		out, err := NewDense(rows, 1)
		if err != nil {
			return nil, matErrorf(opReduceVec, err)
		}
		vec := make([]float64, cols) // reused scratch, copied per row
		for i := 0; i < rows; i++ {
			copy(vec, d.data[i*cols:(i+1)*cols])
			out.data[i] = fn(vec)
		}

		return out, nil
	default: // DimCols
		out, err := NewDense(1, cols)
		if err != nil {
			return nil, matErrorf(opReduceVec, err)
		}
		vec := make([]float64, rows)
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				vec[i] = d.data[i*cols+j]
			}
			out.data[j] = fn(vec)
		}

		return out, nil
	}
}

// statistic is the shared facade body for all named statistics.
func statistic(m Matrix, dim Dim, tag string, fn func(v []float64) float64) (*Dense, error) {
	out, err := ReduceVec(m, dim, fn)
	if err != nil {
		return nil, matErrorf(tag, err)
	}

	return out, nil
}

// ---------- vector kernels (private; input may be reordered) ----------

func vecMean(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s / float64(len(v))
}

func vecMeanSquare(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}

	return s / float64(len(v))
}

func vecMax(v []float64) float64 {
	best := v[0]
	for _, x := range v[1:] {
		if x > best {
			best = x
		}
	}

	return best
}

func vecMin(v []float64) float64 {
	best := v[0]
	for _, x := range v[1:] {
		if x < best {
			best = x
		}
	}

	return best
}

// vecMaxIndex returns the index of the first occurrence of the maximum.
func vecMaxIndex(v []float64) float64 {
	best, at := v[0], 0
	for i, x := range v {
		if x > best { // strict: first occurrence wins
			best, at = x, i
		}
	}

	return float64(at)
}

// vecMinIndex returns the index of the first occurrence of the minimum.
func vecMinIndex(v []float64) float64 {
	best, at := v[0], 0
	for i, x := range v {
		if x < best {
			best, at = x, i
		}
	}

	return float64(at)
}

func vecRange(v []float64) float64 { return vecMax(v) - vecMin(v) }

// vecMedian sorts v ascending and returns the canonical median.
func vecMedian(v []float64) float64 {
	n := len(v)
	switch n {
	case 1:
		return v[0]
	case 2:
		return (v[0] + v[1]) / 2
	}
	sort.Float64s(v)
	if n%2 == 1 {
		return v[n/2]
	}

	return (v[n/2-1] + v[n/2]) / 2
}

// vecQuartile computes Q1 (lower=true) or Q3 (lower=false) of v.
// Branches on the count per the package quartile policy.
func vecQuartile(v []float64, lower bool) float64 {
	n := len(v)
	if n == 1 {
		return v[0]
	}
	sort.Float64s(v)

	if n%2 == 0 {
		// Even count: nested midpoint — the quartile is the median of the
		// corresponding half.
		half := n / 2
		if lower {
			return vecMedian(v[:half])
		}

		return vecMedian(v[half:])
	}

	k := n / 4
	if n%4 == 1 {
		// n = 4k+1: 0.25/0.75 weighted blend of the neighbors.
		if lower {
			return 0.25*v[k-1] + 0.75*v[k]
		}

		return 0.75*v[3*k] + 0.25*v[3*k+1]
	}

	// n = 4k+3: symmetric 0.75/0.25 blend.
	if lower {
		return 0.75*v[k] + 0.25*v[k+1]
	}

	return 0.25*v[3*k+1] + 0.75*v[3*k+2]
}

// vecMode groups by exact value equality, takes the group(s) with maximum
// cardinality, and on ties returns the smallest value among tied groups.
func vecMode(v []float64) float64 {
	sort.Float64s(v) // equal values become adjacent runs; runs ascend
	mode, bestLen := v[0], 1
	runStart := 0
	for i := 1; i <= len(v); i++ {
		if i == len(v) || v[i] != v[runStart] {
			// Strictly-greater keeps the earliest (smallest) tied run.
			if i-runStart > bestLen {
				mode, bestLen = v[runStart], i-runStart
			}
			runStart = i
		}
	}

	return mode
}

// vecVariance is the sample variance with divisor (n−1).
func vecVariance(v []float64) float64 {
	n := len(v)
	if n < 2 {
		return 0 // a single observation carries no spread
	}
	mean := vecMean(v)
	s := 0.0
	for _, x := range v {
		d := x - mean
		s += d * d
	}

	return s / float64(n-1)
}

func vecStdDev(v []float64) float64 { return math.Sqrt(vecVariance(v)) }

// ---------- named statistics (fixed ReduceVec instantiations) ----------

// Mean reduces each row/column to its arithmetic mean.
func Mean(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "Mean", vecMean) }

// MeanSquare reduces each row/column to the mean of its squared elements.
func MeanSquare(m Matrix, dim Dim) (*Dense, error) {
	return statistic(m, dim, "MeanSquare", vecMeanSquare)
}

// Max reduces each row/column to its largest element.
func Max(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "Max", vecMax) }

// Min reduces each row/column to its smallest element.
func Min(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "Min", vecMin) }

// MaxIndex reduces each row/column to the index of the first occurrence of
// its maximum, scanning forward.
func MaxIndex(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "MaxIndex", vecMaxIndex) }

// MinIndex reduces each row/column to the index of the first occurrence of
// its minimum, scanning forward.
func MinIndex(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "MinIndex", vecMinIndex) }

// Range reduces each row/column to max − min.
func Range(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "Range", vecRange) }

// Median reduces each row/column to its canonical median (see package docs).
func Median(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "Median", vecMedian) }

// Quartile1 reduces each row/column to its lower quartile.
func Quartile1(m Matrix, dim Dim) (*Dense, error) {
	return statistic(m, dim, "Quartile1", func(v []float64) float64 { return vecQuartile(v, true) })
}

// Quartile3 reduces each row/column to its upper quartile.
func Quartile3(m Matrix, dim Dim) (*Dense, error) {
	return statistic(m, dim, "Quartile3", func(v []float64) float64 { return vecQuartile(v, false) })
}

// IQR reduces each row/column to the interquartile range Q3 − Q1.
func IQR(m Matrix, dim Dim) (*Dense, error) {
	return statistic(m, dim, "IQR", func(v []float64) float64 {
		q3 := vecQuartile(v, false)
		q1 := vecQuartile(v, true)

		return q3 - q1
	})
}

// Mode reduces each row/column to its most frequent value; ties resolve to
// the smallest tied value.
func Mode(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "Mode", vecMode) }

// Variance reduces each row/column to its sample variance (divisor n−1).
func Variance(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "Variance", vecVariance) }

// StdDev reduces each row/column to the square root of its sample variance.
func StdDev(m Matrix, dim Dim) (*Dense, error) { return statistic(m, dim, "StdDev", vecStdDev) }
