// SPDX-License-Identifier: MIT
// Package matrix: inversion kernel.
//
// Inversion divides by pivots, so the surface constrains to floating-point
// element types. Singular inputs are ALWAYS reported: both the fresh-result
// and the in-place form return ErrSingular rather than leaving a silently
// garbage matrix behind. Closed adjugate forms serve orders 1–3; larger
// orders run Gauss–Jordan elimination with partial pivoting on an
// augmented scratch buffer.

package matrix

import (
	"math"

	"github.com/katalvlaran/gauss"
)

// Inverse returns the multiplicative inverse of a square matrix as a
// fresh allocation; m is left untouched.
// Stage 1 (Validate): NotNil, Square.
// Stage 2 (Execute): adjugate closed forms for n ≤ 3, pivoted
// Gauss–Jordan beyond.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(1) for n ≤ 3, O(n³) beyond.
func Inverse[T gauss.Float](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	switch m.rows {
	case 1:
		return inverse1(m)
	case 2:
		return inverse2(m)
	case 3:
		return inverse3(m)
	default:
		return inverseGaussJordan(m)
	}
}

// Invert replaces m with its inverse in place (the MakeInverse form).
// On ErrSingular the receiver is left unchanged.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func Invert[T gauss.Float](m *Matrix[T]) error {
	inv, err := Inverse(m)
	if err != nil {
		return err
	}
	copy(m.data, inv.data)

	return nil
}

// inverse1 inverts a 1×1 matrix: [1/a].
func inverse1[T gauss.Float](m *Matrix[T]) (*Matrix[T], error) {
	if m.data[0] == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	res, _ := NewUninit[T](1, 1)
	res.data[0] = 1 / m.data[0]

	return res, nil
}

// inverse2 inverts a 2×2 matrix by the adjugate: [d -b; -c a] / det.
func inverse2[T gauss.Float](m *Matrix[T]) (*Matrix[T], error) {
	det := det2(m)
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	a, b := m.data[m.offset(0, 0)], m.data[m.offset(0, 1)]
	c, d := m.data[m.offset(1, 0)], m.data[m.offset(1, 1)]

	res, _ := NewUninit[T](2, 2)
	res.data[res.offset(0, 0)] = d / det
	res.data[res.offset(0, 1)] = -b / det
	res.data[res.offset(1, 0)] = -c / det
	res.data[res.offset(1, 1)] = a / det

	return res, nil
}

// inverse3 inverts a 3×3 matrix via the transposed cofactor matrix.
func inverse3[T gauss.Float](m *Matrix[T]) (*Matrix[T], error) {
	det := det3(m)
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	at := func(r, c int) T { return m.data[m.offset(r, c)] }
	res, _ := NewUninit[T](3, 3)

	// Cofactor(c, r) / det lands at result(r, c): adjugate = cofactorᵀ.
	res.data[res.offset(0, 0)] = (at(1, 1)*at(2, 2) - at(1, 2)*at(2, 1)) / det
	res.data[res.offset(0, 1)] = (at(0, 2)*at(2, 1) - at(0, 1)*at(2, 2)) / det
	res.data[res.offset(0, 2)] = (at(0, 1)*at(1, 2) - at(0, 2)*at(1, 1)) / det
	res.data[res.offset(1, 0)] = (at(1, 2)*at(2, 0) - at(1, 0)*at(2, 2)) / det
	res.data[res.offset(1, 1)] = (at(0, 0)*at(2, 2) - at(0, 2)*at(2, 0)) / det
	res.data[res.offset(1, 2)] = (at(0, 2)*at(1, 0) - at(0, 0)*at(1, 2)) / det
	res.data[res.offset(2, 0)] = (at(1, 0)*at(2, 1) - at(1, 1)*at(2, 0)) / det
	res.data[res.offset(2, 1)] = (at(0, 1)*at(2, 0) - at(0, 0)*at(2, 1)) / det
	res.data[res.offset(2, 2)] = (at(0, 0)*at(1, 1) - at(0, 1)*at(1, 0)) / det

	return res, nil
}

// inverseGaussJordan inverts an n×n matrix by row-reducing [m | I] to
// [I | m⁻¹] with partial pivoting (largest-magnitude pivot per column).
// A column with no nonzero pivot candidate means m is singular.
// Complexity: O(n³) time, O(n²) scratch.
func inverseGaussJordan[T gauss.Float](m *Matrix[T]) (*Matrix[T], error) {
	n := m.rows
	// Augmented scratch rows in logical row-major order: [m | I].
	w := make([]T, n*2*n)
	width := 2 * n
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			w[r*width+c] = m.data[m.offset(r, c)]
		}
		w[r*width+n+r] = 1
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: pick the largest-magnitude candidate in column.
		pivRow := col
		pivAbs := math.Abs(float64(w[col*width+col]))
		for r := col + 1; r < n; r++ {
			if a := math.Abs(float64(w[r*width+col])); a > pivAbs {
				pivRow, pivAbs = r, a
			}
		}
		if pivAbs == 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if pivRow != col {
			for c := 0; c < width; c++ {
				w[col*width+c], w[pivRow*width+c] = w[pivRow*width+c], w[col*width+c]
			}
		}

		// Normalize the pivot row.
		pivot := w[col*width+col]
		for c := 0; c < width; c++ {
			w[col*width+c] /= pivot
		}

		// Eliminate the column from every other row.
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := w[r*width+col]
			if factor == 0 {
				continue
			}
			for c := 0; c < width; c++ {
				w[r*width+c] -= factor * w[col*width+c]
			}
		}
	}

	res, _ := NewUninit[T](n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			res.data[res.offset(r, c)] = w[r*width+n+c]
		}
	}

	return res, nil
}
