// SPDX-License-Identifier: MIT
// Package mat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mat
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (invalid option values).

package mat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat: ..." for consistency and easy grepping
// across logs. Do not %w-wrap these sentinels when returning directly; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive, or that no construction exists for the requested order
	// (e.g. a 2×2 magic square).
	ErrInvalidDimensions = errors.New("mat: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index (or a flat window)
	// is outside valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, a join
	// along an axis whose counts differ, or a broadcast that fits no rule.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular (inversion, identity-like factories).
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrSingular is returned when Gauss-Jordan elimination cannot find a
	// usable pivot for some diagonal: the matrix has no inverse.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrBadShape is returned when a structural transform would produce a
	// degenerate matrix (removing the only column) or when a 2-D literal is
	// ragged or empty.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrNilMatrix indicates that a required Matrix argument is absent.
	ErrNilMatrix = errors.New("mat: nil matrix")
)
