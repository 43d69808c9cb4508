// SPDX-License-Identifier: MIT

package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	gmat "gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/nummat/mat"
)

func TestInverse_Known2x2(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := mat.Inverse(m)
	require.NoError(t, err)
	// det = 10; inverse = [[0.6, -0.7], [-0.2, 0.4]].
	want := mustFromRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	ok, err := mat.AllClose(inv, want, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInverse_ProductIsIdentity(t *testing.T) {
	m := diagonallyDominant(t, 6, 17)
	inv, err := mat.Inverse(m)
	require.NoError(t, err)

	prod, err := mat.Mul(m, inv)
	require.NoError(t, err)
	id, err := mat.NewIdentity(6)
	require.NoError(t, err)

	ok, err := mat.AllClose(prod, id, 1e-9, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInverse_ZeroPivotSwap(t *testing.T) {
	// Permutation matrix: every leading pivot is zero until a swap.
	m := mustFromRows(t, [][]float64{{0, 1}, {1, 0}})
	inv, err := mat.Inverse(m)
	require.NoError(t, err)
	require.True(t, mat.Equal(m, inv)) // a permutation is its own inverse here
}

func TestInverse_Errors(t *testing.T) {
	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := mat.Inverse(rect)
	require.ErrorIs(t, err, mat.ErrNonSquare)

	_, err = mat.Inverse(nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)

	// Rank-deficient: the second row is a multiple of the first.
	singular := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err = mat.Inverse(singular)
	require.ErrorIs(t, err, mat.ErrSingular)

	zeroRow := mustFromRows(t, [][]float64{{1, 2}, {0, 0}})
	_, err = mat.Inverse(zeroRow)
	require.ErrorIs(t, err, mat.ErrSingular)
}

// Cross-check the elimination against the gonum reference implementation.
func TestInverse_AgainstGonum(t *testing.T) {
	m := diagonallyDominant(t, 8, 23)
	inv, err := mat.Inverse(m)
	require.NoError(t, err)

	ref := gmat.NewDense(8, 8, flatten(t, m))
	var refInv gmat.Dense
	require.NoError(t, refInv.Inverse(ref))

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			got, err := inv.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, refInv.At(i, j), got, 1e-9)
		}
	}
}

// diagonallyDominant builds a deterministic, comfortably invertible matrix.
func diagonallyDominant(t *testing.T, n int, seed int64) *mat.Dense {
	t.Helper()
	r, err := mat.NewRandom(n, n, seed)
	require.NoError(t, err)
	scaledID, err := mat.Scale(mustIdentity(t, n), float64(n))
	require.NoError(t, err)
	m, err := mat.Add(r, scaledID)
	require.NoError(t, err)

	return m
}

func mustIdentity(t *testing.T, n int) *mat.Dense {
	t.Helper()
	id, err := mat.NewIdentity(n)
	require.NoError(t, err)

	return id
}

// flatten reads m into the row-major layout gonum constructors expect.
func flatten(t *testing.T, m mat.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range rowsOf(t, m) {
		out = append(out, row...)
	}

	return out
}
