// Package matrix: structural operations — zeroing, identity loading,
// transposition, trace. These reshape or rewrite a matrix without any
// numeric policy beyond element copies and swaps.

package matrix

import "github.com/katalvlaran/gauss"

// Reset sets every element of m to the zero value, preserving shape.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Reset() {
	var zero T
	for i := range m.data {
		m.data[i] = zero
	}
}

// LoadIdentity overwrites a square matrix with the identity: ones on the
// diagonal, zeros elsewhere.
// Errors: ErrNonSquare for rectangular receivers.
// Complexity: O(rows*cols).
func (m *Matrix[T]) LoadIdentity() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opIdentity, err)
	}

	m.Reset()
	for i := 0; i < m.rows; i++ {
		m.data[m.offset(i, i)] = T(1)
	}

	return nil
}

// Transpose transposes a square matrix in place, swapping element (i, j)
// with (j, i) for all i != j. Rectangular matrices cannot transpose in
// place (the shape would change); use Transposed instead.
// Errors: ErrNonSquare.
// Complexity: O(rows²).
func (m *Matrix[T]) Transpose() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ { // strict upper triangle only
			a, b := m.offset(i, j), m.offset(j, i)
			m.data[a], m.data[b] = m.data[b], m.data[a]
		}
	}

	return nil
}

// Transposed returns a freshly allocated cols×rows matrix with
// result(c, r) = m(r, c). Works for any shape; the receiver is unchanged.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Transposed() *Matrix[T] {
	res := &Matrix[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			res.data[res.offset(c, r)] = m.data[m.offset(r, c)]
		}
	}

	return res
}

// Trace returns the sum of the diagonal elements of a square matrix.
// Errors: ErrNonSquare.
// Complexity: O(rows).
func (m *Matrix[T]) Trace() (T, error) {
	var sum T
	if err := ValidateSquare(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}

	for i := 0; i < m.rows; i++ {
		sum += m.data[m.offset(i, i)]
	}

	return sum, nil
}

// Transposed is the package-function form of (*Matrix).Transposed with a
// nil guard, for symmetry with the other kernels.
// Errors: ErrNilMatrix.
func Transposed[T gauss.Scalar](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transposed(), nil
}
