// Package matrix_test contains unit tests for the structural operations:
// Reset, LoadIdentity, Transpose/Transposed, Trace.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/stretchr/testify/require"
)

// TestReset verifies that Reset zeroes every element and keeps the shape.
func TestReset(t *testing.T) {
	m := mustFilled[float64](t, 2, 3, 1, 2, 3, 4, 5, 6)

	m.Reset()
	zero, err := matrix.New[float64](2, 3)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, zero)) // all elements back to zero
}

// TestLoadIdentity verifies identity loading and its squareness contract.
func TestLoadIdentity(t *testing.T) {
	m := mustFilled[float64](t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	require.NoError(t, m.LoadIdentity())
	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, id))

	rect, err := matrix.New[float64](2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, rect.LoadIdentity(), matrix.ErrNonSquare)
}

// TestTransposeInPlace verifies the square in-place swap.
func TestTransposeInPlace(t *testing.T) {
	m := mustFilled[int](t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	require.NoError(t, m.Transpose())
	require.True(t, matrix.Equal(m, mustFilled[int](t, 3, 3, 1, 4, 7, 2, 5, 8, 3, 6, 9)))

	rect, err := matrix.New[int](2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, rect.Transpose(), matrix.ErrNonSquare) // shape would change
}

// TestTransposedRectangular checks result(c,r) == m(r,c) and the
// double-transpose identity for a rectangular matrix.
func TestTransposedRectangular(t *testing.T) {
	m := mustFilled[int](t, 2, 3, 1, 2, 3, 4, 5, 6)

	tr := m.Transposed()
	require.Equal(t, 3, tr.Rows()) // dimensions swapped
	require.Equal(t, 2, tr.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			orig, err := m.At(r, c)
			require.NoError(t, err)
			swapped, err := tr.At(c, r)
			require.NoError(t, err)
			require.Equal(t, orig, swapped) // tr(c,r) == m(r,c)
		}
	}

	require.True(t, matrix.Equal(m, tr.Transposed())) // Transposed twice is identity
}

// TestTrace verifies the diagonal sum and its squareness contract.
func TestTrace(t *testing.T) {
	m := mustFilled[int](t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, 15, tr) // 1 + 5 + 9

	rect, err := matrix.New[int](2, 3)
	require.NoError(t, err)
	_, err = rect.Trace()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
