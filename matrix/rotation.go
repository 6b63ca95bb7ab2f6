// Package matrix: free-axis rotation.
//
// MakeFreeRotation populates the upper-left 3×3 block of a square matrix
// with the rotation around an arbitrary 3D axis (Rodrigues form) and the
// identity elsewhere, so the same construction serves 3×3 linear and 4×4
// homogeneous transforms alike. RotateFree composes that rotation onto an
// existing matrix in place.

package matrix

import (
	"math"

	"github.com/katalvlaran/gauss"
	"github.com/katalvlaran/gauss/vector"
)

// rotationRank is the minimum square order carrying a 3D rotation block.
const rotationRank = 3

// MakeFreeRotation overwrites dst with the rotation by angle (radians)
// around axis. dst must be square of order ≥ 3; the axis is normalized
// internally and is assumed nonzero (a zero axis propagates IEEE NaNs,
// matching the unguarded division policy of the vector package).
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (order < 3).
// Complexity: O(rows²) for the identity pass, O(1) for the block.
func MakeFreeRotation[T gauss.Float](dst *Matrix[T], axis vector.Vector3[T], angle T) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opRotateFree, err)
	}
	if err := ValidateSquare(dst); err != nil {
		return matrixErrorf(opRotateFree, err)
	}
	if dst.rows < rotationRank {
		return matrixErrorf(opRotateFree, ErrDimensionMismatch)
	}

	a := vector.Normalized(axis)
	s := T(math.Sin(float64(angle)))
	c := T(math.Cos(float64(angle)))
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z

	// Identity outside the rotation block (order already validated).
	_ = dst.LoadIdentity()

	// Rodrigues rotation: R = I + sinθ·K + (1-cosθ)·K².
	dst.data[dst.offset(0, 0)] = c + x*x*t
	dst.data[dst.offset(0, 1)] = x*y*t - z*s
	dst.data[dst.offset(0, 2)] = x*z*t + y*s
	dst.data[dst.offset(1, 0)] = x*y*t + z*s
	dst.data[dst.offset(1, 1)] = c + y*y*t
	dst.data[dst.offset(1, 2)] = y*z*t - x*s
	dst.data[dst.offset(2, 0)] = x*z*t - y*s
	dst.data[dst.offset(2, 1)] = y*z*t + x*s
	dst.data[dst.offset(2, 2)] = c + z*z*t

	return nil
}

// RotateFree composes m with the rotation by angle around axis, in place:
// m = m * R(axis, angle).
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (order < 3).
// Complexity: O(rows³) for the composition multiply.
func RotateFree[T gauss.Float](m *Matrix[T], axis vector.Vector3[T], angle T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRotateFree, err)
	}

	rot, err := New[T](m.rows, m.cols)
	if err != nil {
		return matrixErrorf(opRotateFree, err)
	}
	if err = MakeFreeRotation(rot, axis, angle); err != nil {
		return err
	}

	return MulInPlace(m, rot)
}
