// SPDX-License-Identifier: MIT
// Package vector: geometric helpers over Vector3.
//
// Scalar-agnostic products (Dot, Cross, DistanceSq) accept any element
// type and stay exact for integers. Anything that takes a square root or
// divides (Length, Normalize, Resize, Angle, Distance, Lerp) constrains
// to floating-point element types. Normalizing or resizing a zero vector
// divides by zero and yields IEEE ±Inf/NaN components — the unguarded
// policy documented in doc.go.

package vector

import (
	"math"

	"github.com/katalvlaran/gauss"
)

// Dot returns the dot product a · b.
func Dot[T gauss.Scalar](a, b Vector3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func Cross[T gauss.Scalar](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length √(x² + y² + z²).
func Length[T gauss.Float](v Vector3[T]) T {
	return T(math.Sqrt(float64(v.LengthSq())))
}

// Normalize rescales v in place to unit length.
func Normalize[T gauss.Float](v *Vector3[T]) {
	v.DivScalarAssign(Length(*v))
}

// Normalized returns a unit-length copy of v; v itself is unchanged.
func Normalized[T gauss.Float](v Vector3[T]) Vector3[T] {
	Normalize(&v)
	return v
}

// Resize rescales v in place to the given length.
func Resize[T gauss.Float](v *Vector3[T], length T) {
	v.ScaleAssign(length / Length(*v))
}

// DistanceSq returns the squared Euclidean distance between a and b.
// Exact for integer element types.
func DistanceSq[T gauss.Scalar](a, b Vector3[T]) T {
	return a.Sub(b).LengthSq()
}

// Distance returns the Euclidean distance between a and b.
func Distance[T gauss.Float](a, b Vector3[T]) T {
	return Length(a.Sub(b))
}

// Angle returns the angle between a and b in radians, in [0, π].
// The cosine is clamped into [-1, 1] before acos so that rounding in the
// dot product cannot produce NaN for (anti)parallel inputs.
func Angle[T gauss.Float](a, b Vector3[T]) T {
	cos := float64(Dot(a, b)) / (float64(Length(a)) * float64(Length(b)))
	cos = math.Max(-1, math.Min(1, cos))

	return T(math.Acos(cos))
}

// Lerp returns the linear interpolation a + t*(b - a); t outside [0, 1]
// extrapolates.
func Lerp[T gauss.Float](a, b Vector3[T], t T) Vector3[T] {
	return a.Add(b.Sub(a).Scale(t))
}
