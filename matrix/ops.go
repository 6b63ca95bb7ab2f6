// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels over Matrix values — element-wise
// addition and subtraction, scalar scaling, and matrix multiplication.
// All kernels perform strict fail-fast validation via validators.go and
// return sentinel errors wrapped with a stable operation tag.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gauss"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opScale      = "Scale"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opTrace      = "Trace"
	opIdentity   = "LoadIdentity"
	opFill       = "Fill"
	opDet        = "Determinant"
	opInverse    = "Inverse"
	opRotateFree = "RotateFree"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is still matches the sentinel.
// Use only when err != nil; wrapping nil would manufacture a non-nil error.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Matrix is allocated; operands
// are not mutated. Shared by Add and Sub to keep validation and the flat
// fast loop in one place.
// Complexity: O(rows*cols) time and space.
func addSub[T gauss.Scalar](a, b *Matrix[T], sign T, opTag string) (*Matrix[T], error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := New[T](a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	// Operands share one layout, so a single flat walk is shape-correct.
	for i := range res.data {
		res.data[i] = a.data[i] + sign*b.data[i]
	}

	return res, nil
}

// Add returns the element-wise sum a + b as a freshly allocated matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T gauss.Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSub(a, b, T(1), opAdd)
}

// Sub returns the element-wise difference a - b as a freshly allocated matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T gauss.Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSub(a, b, 0-T(1), opSub)
}

// AddInPlace accumulates src into dst element-wise (the += form).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AddInPlace[T gauss.Scalar](dst, src *Matrix[T]) error {
	if err := validateBinary(dst, src); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for i := range dst.data {
		dst.data[i] += src.data[i]
	}

	return nil
}

// SubInPlace subtracts src from dst element-wise (the -= form).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func SubInPlace[T gauss.Scalar](dst, src *Matrix[T]) error {
	if err := validateBinary(dst, src); err != nil {
		return matrixErrorf(opSub, err)
	}
	for i := range dst.data {
		dst.data[i] -= src.data[i]
	}

	return nil
}

// Scale returns m scaled by s as a freshly allocated matrix. Scalar
// multiplication commutes, so there is no separate scalar-left form.
// Errors: ErrNilMatrix.
func Scale[T gauss.Scalar](m *Matrix[T], s T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := m.Clone()
	for i := range res.data {
		res.data[i] *= s
	}

	return res, nil
}

// ScaleInPlace multiplies every element of m by s (the *= scalar form).
// Errors: ErrNilMatrix.
func ScaleInPlace[T gauss.Scalar](m *Matrix[T], s T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	for i := range m.data {
		m.data[i] *= s
	}

	return nil
}

// Mul returns the matrix product a*b.
// Stage 1 (Validate): NotNil for both, inner dimensions a.Cols == b.Rows.
// Stage 2 (Execute): standard triple-loop accumulation into an Uninit
// result buffer, result(r,c) = Σ_i a(r,i)*b(i,c).
// Stage 3 (Finalize): return (a.Rows × b.Cols) result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(a.Rows * a.Cols * b.Cols).
func Mul[T gauss.Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShapes(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewUninit[T](a.rows, b.cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	inner := a.cols
	for r := 0; r < a.rows; r++ {
		for c := 0; c < b.cols; c++ {
			var sum T
			for i := 0; i < inner; i++ {
				sum += a.data[a.offset(r, i)] * b.data[b.offset(i, c)]
			}
			res.data[res.offset(r, c)] = sum
		}
	}

	return res, nil
}

// MulInPlace replaces dst with dst*rhs (the *= form). Both operands must
// be square matrices of the same order; rectangular in-place multiply is
// impossible because the product changes shape.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func MulInPlace[T gauss.Scalar](dst, rhs *Matrix[T]) error {
	if err := validateBinary(dst, rhs); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err := ValidateSquare(dst); err != nil {
		return matrixErrorf(opMul, err)
	}

	res, err := Mul(dst, rhs)
	if err != nil {
		return err
	}
	copy(dst.data, res.data)

	return nil
}

// Equal reports whether a and b have identical shape and identical
// elements. Exact comparison — intended for integer element types; use
// EqualApprox for floats.
func Equal[T gauss.Scalar](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether a and b have identical shape and all
// elements within eps of each other (absolute difference, compared in
// float64). Pass gauss.Epsilon for the library default tolerance.
func EqualApprox[T gauss.Scalar](a, b *Matrix[T], eps float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if math.Abs(float64(a.data[i])-float64(b.data[i])) > eps {
			return false
		}
	}

	return true
}
