// SPDX-License-Identifier: MIT

package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nummat/mat"
)

// mustFromRows builds a Dense from a literal, failing the test on error.
func mustFromRows(t *testing.T, rows [][]float64) *mat.Dense {
	t.Helper()
	m, err := mat.FromRows(rows)
	require.NoError(t, err)

	return m
}

// rowsOf reads m back into a 2-D literal through the public At accessor.
func rowsOf(t *testing.T, m mat.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// opaque hides a Dense behind the plain Matrix interface so tests can force
// the At/Set fallback paths of the kernels.
type opaque struct{ d *mat.Dense }

func (o opaque) Rows() int                     { return o.d.Rows() }
func (o opaque) Cols() int                     { return o.d.Cols() }
func (o opaque) At(i, j int) (float64, error)  { return o.d.At(i, j) }
func (o opaque) Set(i, j int, v float64) error { return o.d.Set(i, j, v) }
func (o opaque) Clone() mat.Matrix             { return opaque{d: o.d.Clone().(*mat.Dense)} }
