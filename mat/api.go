// SPDX-License-Identifier: MIT
// Package mat — public factory facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors for common matrices.
//   - Avoid any logic duplication — each facade delegates to NewDense.
//
// Determinism & Policy:
//   - NewRandom takes an explicit seed and uses a private source, so repeated
//     calls with the same arguments produce the same matrix; there is no
//     package-wide random state.

package mat

import (
	"fmt"
	"math/rand"
)

// NewZeros returns a new zero-initialized rows×cols matrix.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zeroing by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols matrix with every element set to 1.
// Complexity: O(r*c).
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(1.0)

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewRandom returns a rows×cols matrix with elements drawn uniformly from
// [0, 1) using a deterministic source seeded with seed.
// Complexity: O(r*c).
func NewRandom(rows, cols int, seed int64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range m.data {
		m.data[i] = rng.Float64()
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy for staging buffers. Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ZerosLike: %w", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square input.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("IdentityLike: %w", err)
	}

	return NewIdentity(m.Rows())
}
