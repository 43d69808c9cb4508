// SPDX-License-Identifier: MIT
// Package mat: magic square generation and verification.
//
// Magic dispatches on the order: 1 is trivial, 2 has no magic square, odd
// orders use the Siamese diagonal-stepping method, orders divisible by 4 use
// the block-pattern complement method, and the remaining even orders use
// Strachey's quadrant construction on top of the odd generator plus AddScalar
// and Join. IsMagic verifies the output contract: the values are exactly
// 1..n² and every row, column and both main diagonals share one sum.

package mat

const (
	opMagic   = "Magic"
	opIsMagic = "IsMagic"
)

// Magic builds the n×n magic square for any valid order.
//
// Behavior highlights:
//   - n == 1 returns the 1×1 matrix [1]; n == 2 fails (no order-2 magic
//     square exists); n < 1 fails.
//   - Odd n: Siamese method, starting at (0, n/2), stepping up-right with
//     wraparound, dropping straight down on collision.
//   - n ≡ 0 (mod 4): natural row-major values, complemented to n²+1−v on
//     cells outside the 4×4 block diagonal/anti-diagonal pattern.
//   - Other even n: Strachey's method from four shifted odd-order quadrants.
//
// Errors: ErrInvalidDimensions (n < 1 or n == 2).
// Determinism: the square for a given n is identical across calls.
// Complexity: Time O(n²), Space O(n²).
func Magic(n int) (*Dense, error) {
	switch {
	case n < 1 || n == 2:
		return nil, matErrorf(opMagic, ErrInvalidDimensions)
	case n == 1:
		out, _ := NewDense(1, 1)
		out.data[0] = 1

		return out, nil
	case n%2 == 1:
		return magicOdd(n)
	case n%4 == 0:
		return magicDoublyEven(n)
	default:
		return magicSinglyEven(n)
	}
}

// magicOdd builds an odd-order square with the Siamese method: place 1 at
// (0, n/2), then step to (row−1, col+1) with wraparound; when the target
// cell is occupied, move straight down from the last-filled cell instead.
func magicOdd(n int) (*Dense, error) {
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matErrorf(opMagic, err)
	}

	row, col := 0, n/2
	out.data[row*n+col] = 1
	for v := 2; v <= n*n; v++ {
		nr, nc := (row-1+n)%n, (col+1)%n
		if out.data[nr*n+nc] != 0 {
			nr, nc = (row+1)%n, col // collision: drop down instead
		}
		out.data[nr*n+nc] = float64(v)
		row, col = nr, nc
	}

	return out, nil
}

// magicDoublyEven builds an order ≡ 0 (mod 4) square: each cell keeps its
// natural row-major value v = i*n+j+1 when its 4×4 block-relative coordinate
// lies on the block diagonal or anti-diagonal, and takes the point-reflected
// complement n²+1−v otherwise.
func magicDoublyEven(n int) (*Dense, error) {
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matErrorf(opMagic, err)
	}

	total := n*n + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := i*n + j + 1
			if i%4 == j%4 || i%4+j%4 == 3 {
				out.data[i*n+j] = float64(v)
			} else {
				out.data[i*n+j] = float64(total - v)
			}
		}
	}

	return out, nil
}

// magicSinglyEven builds an order ≡ 2 (mod 4) square with Strachey's method.
//
// Implementation:
//   - Stage 1: q = n/2 (odd); A = Magic(q); B, C, D are A shifted by q², 2q²
//     and 3q².
//   - Stage 2: swap the leftmost n/4 columns between A and D across all rows,
//     and the rightmost n/4 − 1 columns between B and C.
//   - Stage 3: on the middle row of A/D, swap back the first-column cell and
//     swap the middle-column cell.
//   - Stage 4: assemble Join(Join(A,C), Join(D,B)) into the full square.
func magicSinglyEven(n int) (*Dense, error) {
	q := n / 2
	a, err := magicOdd(q)
	if err != nil {
		return nil, err
	}
	shift := float64(q * q)
	b, err := AddScalar(a, shift)
	if err != nil {
		return nil, matErrorf(opMagic, err)
	}
	c, err := AddScalar(a, 2*shift)
	if err != nil {
		return nil, matErrorf(opMagic, err)
	}
	d, err := AddScalar(a, 3*shift)
	if err != nil {
		return nil, matErrorf(opMagic, err)
	}

	k := n / 4
	for i := 0; i < q; i++ {
		for j := 0; j < k; j++ {
			a.data[i*q+j], d.data[i*q+j] = d.data[i*q+j], a.data[i*q+j]
		}
		for j := q - (k - 1); j < q; j++ {
			b.data[i*q+j], c.data[i*q+j] = c.data[i*q+j], b.data[i*q+j]
		}
	}

	mid := q / 2
	a.data[mid*q], d.data[mid*q] = d.data[mid*q], a.data[mid*q]
	a.data[mid*q+mid], d.data[mid*q+mid] = d.data[mid*q+mid], a.data[mid*q+mid]

	top, err := Join(a, c, DimCols)
	if err != nil {
		return nil, matErrorf(opMagic, err)
	}
	bottom, err := Join(d, b, DimCols)
	if err != nil {
		return nil, matErrorf(opMagic, err)
	}
	out, err := Join(top, bottom, DimRows)
	if err != nil {
		return nil, matErrorf(opMagic, err)
	}

	return out, nil
}

// IsMagic reports whether m is a magic square: square shape, values exactly
// the integers 1..n² each appearing once, and every row sum, column sum and
// both main diagonal sums equal to n(n²+1)/2. Non-square matrices are simply
// not magic, never an error.
// Errors: ErrNilMatrix.
// Complexity: Time O(n²), Space O(n²).
func IsMagic(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matErrorf(opIsMagic, err)
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}

	d, err := denseOf(m)
	if err != nil {
		return false, matErrorf(opIsMagic, err)
	}
	n := d.r

	// Every integer 1..n² exactly once.
	seen := make([]bool, n*n+1)
	for _, v := range d.data {
		iv := int(v)
		if float64(iv) != v || iv < 1 || iv > n*n || seen[iv] {
			return false, nil
		}
		seen[iv] = true
	}

	target := n * (n*n + 1) / 2
	diag, anti := 0, 0
	for i := 0; i < n; i++ {
		rowSum, colSum := 0, 0
		for j := 0; j < n; j++ {
			rowSum += int(d.data[i*n+j])
			colSum += int(d.data[j*n+i])
		}
		if rowSum != target || colSum != target {
			return false, nil
		}
		diag += int(d.data[i*n+i])
		anti += int(d.data[i*n+(n-1-i)])
	}

	return diag == target && anti == target, nil
}
