// Package vector: Vector3 is a plain 3-component value type with named
// X, Y, Z fields in declared (contiguous) order. No heap resources, no
// identity beyond value equality; copies are always independent.
package vector

import (
	"fmt"

	"github.com/katalvlaran/gauss"
)

// Components is the number of vector components.
const Components = 3

// Vector3 is a 3-component vector of T values. The zero value is the
// zero vector.
type Vector3[T gauss.Scalar] struct {
	X, Y, Z T
}

// New builds a vector from its three components.
func New[T gauss.Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Splat builds a vector with every component set to s.
func Splat[T gauss.Scalar](s T) Vector3[T] {
	return Vector3[T]{X: s, Y: s, Z: s}
}

// At returns the component selected by index: 0 → X, 1 → Y, 2 → Z.
// An explicit switch replaces field-address arithmetic; the mapping is
// the contract, not the memory layout.
// Errors: ErrOutOfRange.
func (v Vector3[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	default:
		var zero T
		return zero, fmt.Errorf("Vector3.At(%d): %w", i, ErrOutOfRange)
	}
}

// Set assigns value to the component selected by index: 0 → X, 1 → Y, 2 → Z.
// Errors: ErrOutOfRange.
func (v *Vector3[T]) Set(i int, value T) error {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		return fmt.Errorf("Vector3.Set(%d): %w", i, ErrOutOfRange)
	}

	return nil
}

// Array returns the components as a fixed-size array in X, Y, Z order —
// the bulk hand-off view for external numeric routines.
func (v Vector3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// Add returns v + w component-wise.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w component-wise.
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// MulVec returns the component-wise (Hadamard) product v ∘ w.
func (v Vector3[T]) MulVec(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// DivVec returns the component-wise quotient. Division is unguarded:
// IEEE ±Inf/NaN for float element types, runtime panic for integer /0.
func (v Vector3[T]) DivVec(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z}
}

// Scale returns v with every component multiplied by s. Scalar
// multiplication commutes, so there is no separate scalar-left form.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns v with every component divided by s (unguarded, see DivVec).
func (v Vector3[T]) Div(s T) Vector3[T] {
	return Vector3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// AddAssign accumulates w into v (the += form).
func (v *Vector3[T]) AddAssign(w Vector3[T]) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
}

// SubAssign subtracts w from v (the -= form).
func (v *Vector3[T]) SubAssign(w Vector3[T]) {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
}

// MulAssign multiplies v by w component-wise (the *= vector form).
func (v *Vector3[T]) MulAssign(w Vector3[T]) {
	v.X *= w.X
	v.Y *= w.Y
	v.Z *= w.Z
}

// DivAssign divides v by w component-wise (unguarded, the /= vector form).
func (v *Vector3[T]) DivAssign(w Vector3[T]) {
	v.X /= w.X
	v.Y /= w.Y
	v.Z /= w.Z
}

// ScaleAssign multiplies every component by s (the *= scalar form).
func (v *Vector3[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivScalarAssign divides every component by s (unguarded, the /= scalar form).
func (v *Vector3[T]) DivScalarAssign(s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// LengthSq returns the squared Euclidean length x² + y² + z².
// Exact for integer element types; no square root involved.
func (v Vector3[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// String implements fmt.Stringer for easy debugging.
func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Cast returns v with every component independently converted to U via a
// direct numeric conversion, so integer values (including 64-bit ones
// beyond float precision) pass through exactly when U can hold them; the
// usual truncation/narrowing rules of the target type apply per component.
func Cast[U, T gauss.Scalar](v Vector3[T]) Vector3[U] {
	return Vector3[U]{
		X: U(v.X),
		Y: U(v.Y),
		Z: U(v.Z),
	}
}
