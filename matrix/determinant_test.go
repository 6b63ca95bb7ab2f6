// Package matrix_test contains unit tests for the determinant kernel:
// closed forms through 4x4, Bareiss elimination beyond, integer exactness.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/stretchr/testify/require"
)

// TestDeterminantClosedForms checks the 1x1 through 4x4 specializations.
func TestDeterminantClosedForms(t *testing.T) {
	d1 := mustFilled[float64](t, 1, 1, 7)
	det, err := matrix.Determinant(d1)
	require.NoError(t, err)
	require.Equal(t, 7.0, det)

	d2 := mustFilled[float64](t, 2, 2, 1, 2, 3, 4)
	det, err = matrix.Determinant(d2)
	require.NoError(t, err)
	require.Equal(t, -2.0, det) // 1*4 - 2*3

	d3 := mustFilled[float64](t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 10)
	det, err = matrix.Determinant(d3)
	require.NoError(t, err)
	require.Equal(t, -3.0, det)

	// Block-diagonal 4x4: det == det([[1,2],[3,4]]) * det([[5,6],[7,8]]).
	d4 := mustFilled[float64](t, 4, 4,
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 5, 6,
		0, 0, 7, 8)
	det, err = matrix.Determinant(d4)
	require.NoError(t, err)
	require.Equal(t, 4.0, det) // (-2) * (-2)
}

// TestDeterminantInteger checks exactness over an integer element type.
func TestDeterminantInteger(t *testing.T) {
	m := mustFilled[int](t, 3, 3, 2, 0, 1, 1, 3, 2, 1, 1, 5)
	det, err := m.Det() // method convenience form
	require.NoError(t, err)
	require.Equal(t, 24, det) // 2*(15-2) - 0 + 1*(1-3)
}

// TestDeterminantBareiss checks the general path on a 5x5 triangular
// matrix (determinant is the diagonal product) over ints — exactness is
// the point of the fraction-free scheme.
func TestDeterminantBareiss(t *testing.T) {
	m, err := matrix.New[int](5, 5)
	require.NoError(t, err)
	require.NoError(t, m.Fill(
		2, 1, 4, -3, 7,
		0, 3, 1, 2, -5,
		0, 0, 1, 8, 6,
		0, 0, 0, 4, -1,
		0, 0, 0, 0, 5))

	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 120, det) // 2*3*1*4*5
}

// TestDeterminantBareissPivoting forces a row exchange (zero leading
// pivot) and checks the sign flip.
func TestDeterminantBareissPivoting(t *testing.T) {
	m, err := matrix.New[int](5, 5)
	require.NoError(t, err)
	require.NoError(t, m.Fill(
		0, 1, 0, 0, 0,
		1, 0, 0, 0, 0,
		0, 0, 2, 0, 0,
		0, 0, 0, 3, 0,
		0, 0, 0, 0, 4))

	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, -24, det) // one transposition flips the sign of 24
}

// TestDeterminantSingularAndShape checks zero determinants and the
// squareness contract.
func TestDeterminantSingularAndShape(t *testing.T) {
	zero, err := matrix.New[float64](3, 3)
	require.NoError(t, err)
	det, err := matrix.Determinant(zero)
	require.NoError(t, err)
	require.Zero(t, det) // all-zero matrix has zero determinant

	zero5, err := matrix.New[float64](5, 5)
	require.NoError(t, err)
	det, err = matrix.Determinant(zero5) // Bareiss path, no pivot at all
	require.NoError(t, err)
	require.Zero(t, det)

	rect, err := matrix.New[float64](2, 3)
	require.NoError(t, err)
	_, err = matrix.Determinant(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
