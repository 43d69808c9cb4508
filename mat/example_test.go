// SPDX-License-Identifier: MIT

package mat_test

import (
	"fmt"

	"github.com/katalvlaran/nummat/mat"
)

// Multiply two small matrices and print the fixed two-decimal rendering.
func ExampleMul() {
	a, _ := mat.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := mat.FromRows([][]float64{{2, 0}, {1, 2}})
	c, _ := mat.Mul(a, b)
	fmt.Print(c)
	// Output:
	// 4.00 4.00
	// 10.00 8.00
}

// Generate the classic order-3 magic square.
func ExampleMagic() {
	square, _ := mat.Magic(3)
	fmt.Print(square)
	// Output:
	// 8.00 1.00 6.00
	// 3.00 5.00 7.00
	// 4.00 9.00 2.00
}

// Collapse a matrix to per-column means.
func ExampleMean() {
	m, _ := mat.FromRows([][]float64{{1, 2, 3}, {3, 4, 5}})
	avg, _ := mat.Mean(m, mat.DimCols)
	fmt.Print(avg)
	// Output:
	// 2.00 3.00 4.00
}

// Broadcast a row vector across every row of a matrix.
func ExampleElementAdd() {
	m, _ := mat.FromRows([][]float64{{1, 2}, {3, 4}})
	bias, _ := mat.FromRows([][]float64{{10, 20}})
	out, _ := mat.ElementAdd(m, bias)
	fmt.Print(out)
	// Output:
	// 11.00 22.00
	// 13.00 24.00
}
