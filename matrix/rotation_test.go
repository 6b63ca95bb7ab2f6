// Package matrix_test contains unit tests for free-axis rotation:
// MakeFreeRotation block construction and RotateFree composition.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gauss"
	"github.com/katalvlaran/gauss/matrix"
	"github.com/katalvlaran/gauss/vector"
	"github.com/stretchr/testify/require"
)

// TestMakeFreeRotationAboutZ checks the quarter-turn about the z axis
// against the textbook rotation matrix.
func TestMakeFreeRotationAboutZ(t *testing.T) {
	rot, err := matrix.New[float64](3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.MakeFreeRotation(rot, vector.New(0.0, 0.0, 1.0), math.Pi/2))

	want := mustFilled[float64](t, 3, 3,
		0, -1, 0,
		1, 0, 0,
		0, 0, 1)
	require.True(t, matrix.EqualApprox(rot, want, gauss.Epsilon))
}

// TestMakeFreeRotationHomogeneous checks that a 4x4 receiver gets the
// 3x3 block plus identity elsewhere.
func TestMakeFreeRotationHomogeneous(t *testing.T) {
	rot, err := matrix.New[float64](4, 4)
	require.NoError(t, err)
	require.NoError(t, matrix.MakeFreeRotation(rot, vector.New(0.0, 0.0, 1.0), math.Pi/2))

	want := mustFilled[float64](t, 4, 4,
		0, -1, 0, 0,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1)
	require.True(t, matrix.EqualApprox(rot, want, gauss.Epsilon))
}

// TestRotationIsOrthonormal checks R * Rᵀ ≈ I for a skew axis — the
// defining property of a rotation, independent of sign conventions.
func TestRotationIsOrthonormal(t *testing.T) {
	rot, err := matrix.New[float64](3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.MakeFreeRotation(rot, vector.New(1.0, 2.0, 3.0), 0.7))

	prod, err := matrix.Mul(rot, rot.Transposed())
	require.NoError(t, err)
	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(prod, id, gauss.Epsilon))

	det, err := matrix.Determinant(rot)
	require.NoError(t, err)
	require.InDelta(t, 1.0, det, gauss.Epsilon) // proper rotation, not a reflection
}

// TestRotateFreeComposition checks m *= R against an explicit multiply.
func TestRotateFreeComposition(t *testing.T) {
	m := mustFilled[float64](t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 10)
	axis := vector.New(1.0, 1.0, 0.0)
	angle := 0.3

	rot, err := matrix.New[float64](3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.MakeFreeRotation(rot, axis, angle))
	want, err := matrix.Mul(m, rot)
	require.NoError(t, err)

	require.NoError(t, matrix.RotateFree(m, axis, angle))
	require.True(t, matrix.EqualApprox(m, want, gauss.Epsilon))
}

// TestRotationShapeContract checks the order and squareness guards.
func TestRotationShapeContract(t *testing.T) {
	small, err := matrix.New[float64](2, 2)
	require.NoError(t, err)
	err = matrix.MakeFreeRotation(small, vector.New(0.0, 0.0, 1.0), 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // order < 3

	rect, err := matrix.New[float64](3, 4)
	require.NoError(t, err)
	err = matrix.MakeFreeRotation(rect, vector.New(0.0, 0.0, 1.0), 1)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	err = matrix.RotateFree[float64](nil, vector.New(0.0, 0.0, 1.0), 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
