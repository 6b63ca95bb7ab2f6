// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the kernel boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows <= 0
	// or cols <= 0). Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an element index (row, column, or flat
	// offset) is outside valid bounds. Public indexers (At/Set/AtFlat/
	// SetFlat) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub on different shapes, or Mul where
	// a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (identity,
	// trace, in-place transpose/multiply, determinant, inversion, rotation)
	// but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a zero pivot with no viable row exchange
	// is encountered during inversion: the input has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrTooManyValues is returned by Fill/Filler when the supplied value
	// sequence exceeds Rows*Cols elements.
	ErrTooManyValues = errors.New("matrix: too many fill values")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was
	// passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
