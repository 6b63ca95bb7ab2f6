// SPDX-License-Identifier: MIT
// Package matrix: determinant kernel.
//
// Closed cofactor forms cover the sizes the library is built around
// (1×1 through 4×4, exact in the element type). Larger orders fall back to
// fraction-free Bareiss elimination, whose interior divisions are exact in
// integer arithmetic, so Determinant stays correct for signed integer
// element types instead of degrading to float-only. Unsigned element
// types compute modulo 2^n throughout (every subtraction and the final
// sign flip wrap), the language's native semantics for those types — a
// negative determinant is unrepresentable there to begin with.

package matrix

import "github.com/katalvlaran/gauss"

// Determinant returns the determinant of a square matrix.
// Stage 1 (Validate): NotNil, Square.
// Stage 2 (Execute): dispatch on order — closed forms for n ≤ 4,
// Bareiss elimination beyond.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1) for n ≤ 4, O(n³) beyond.
func Determinant[T gauss.Scalar](m *Matrix[T]) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}

	switch m.rows {
	case 1:
		return m.data[0], nil
	case 2:
		return det2(m), nil
	case 3:
		return det3(m), nil
	case 4:
		return det4(m), nil
	default:
		return detBareiss(m), nil
	}
}

// Det is the method convenience form of Determinant.
func (m *Matrix[T]) Det() (T, error) {
	return Determinant(m)
}

// det2 computes the 2×2 determinant ad - bc.
func det2[T gauss.Scalar](m *Matrix[T]) T {
	return m.data[m.offset(0, 0)]*m.data[m.offset(1, 1)] -
		m.data[m.offset(0, 1)]*m.data[m.offset(1, 0)]
}

// det3 computes the 3×3 determinant by the rule of Sarrus.
func det3[T gauss.Scalar](m *Matrix[T]) T {
	a, b, c := m.data[m.offset(0, 0)], m.data[m.offset(0, 1)], m.data[m.offset(0, 2)]
	d, e, f := m.data[m.offset(1, 0)], m.data[m.offset(1, 1)], m.data[m.offset(1, 2)]
	g, h, i := m.data[m.offset(2, 0)], m.data[m.offset(2, 1)], m.data[m.offset(2, 2)]

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// minor3 computes the 3×3 determinant of nine explicit scalars, used by
// the 4×4 Laplace expansion.
func minor3[T gauss.Scalar](a, b, c, d, e, f, g, h, i T) T {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// det4 computes the 4×4 determinant by Laplace expansion along row 0.
func det4[T gauss.Scalar](m *Matrix[T]) T {
	at := func(r, c int) T { return m.data[m.offset(r, c)] }

	d0 := minor3(at(1, 1), at(1, 2), at(1, 3), at(2, 1), at(2, 2), at(2, 3), at(3, 1), at(3, 2), at(3, 3))
	d1 := minor3(at(1, 0), at(1, 2), at(1, 3), at(2, 0), at(2, 2), at(2, 3), at(3, 0), at(3, 2), at(3, 3))
	d2 := minor3(at(1, 0), at(1, 1), at(1, 3), at(2, 0), at(2, 1), at(2, 3), at(3, 0), at(3, 1), at(3, 3))
	d3 := minor3(at(1, 0), at(1, 1), at(1, 2), at(2, 0), at(2, 1), at(2, 2), at(3, 0), at(3, 1), at(3, 2))

	return at(0, 0)*d0 - at(0, 1)*d1 + at(0, 2)*d2 - at(0, 3)*d3
}

// detBareiss runs fraction-free Bareiss elimination on a scratch copy.
// Every interior division is exact in exact arithmetic, which keeps the
// result correct for signed integer element types (unsigned ones wrap
// modulo 2^n, see the file header). Row exchanges (needed when a pivot
// is zero) flip the determinant's sign; a zero pivot with no exchange
// candidate means the determinant is zero.
// Complexity: O(n³) time, O(n²) scratch.
func detBareiss[T gauss.Scalar](m *Matrix[T]) T {
	n := m.rows
	// Scratch copy in logical row-major order, independent of build layout.
	w := make([]T, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			w[r*n+c] = m.data[m.offset(r, c)]
		}
	}

	var zero T
	neg := false
	prev := T(1)
	for k := 0; k < n-1; k++ {
		// Secure a nonzero pivot at (k, k), exchanging rows if required.
		if w[k*n+k] == zero {
			swapped := false
			for r := k + 1; r < n; r++ {
				if w[r*n+k] != zero {
					for c := 0; c < n; c++ {
						w[k*n+c], w[r*n+c] = w[r*n+c], w[k*n+c]
					}
					neg = !neg
					swapped = true
					break
				}
			}
			if !swapped {
				return zero // whole column zero below the diagonal
			}
		}

		pivot := w[k*n+k]
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				w[i*n+j] = (w[i*n+j]*pivot - w[i*n+k]*w[k*n+j]) / prev
			}
		}
		prev = pivot
	}

	det := w[(n-1)*n+(n-1)]
	if neg {
		det = zero - det
	}

	return det
}
