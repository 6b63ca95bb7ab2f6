// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/squareness checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with their operation tag.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "github.com/katalvlaran/gauss"

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T gauss.Scalar](m *Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix // single source of truth for "nil argument"
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch on any axis disagreement. Complexity: O(1).
func ValidateSameShape[T gauss.Scalar](a, b *Matrix[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Returns ErrNonSquare otherwise. Complexity: O(1).
func ValidateSquare[T gauss.Scalar](m *Matrix[T]) error {
	if m.rows != m.cols {
		return ErrNonSquare
	}

	return nil
}

// ValidateMulShapes checks the inner-dimension contract of matrix
// multiplication: a.Cols() == b.Rows().
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
func ValidateMulShapes[T gauss.Scalar](a, b *Matrix[T]) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// validateBinary is the canonical NotNil → SameShape sequence used by the
// element-wise kernels.
func validateBinary[T gauss.Scalar](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}
