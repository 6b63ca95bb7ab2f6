// Package vector provides a generic 3-component vector value type and the
// geometric helpers built on it.
//
// The vector package provides:
//
//   - Vector3[T] — named X/Y/Z fields over any arithmetic scalar, with
//     value semantics throughout (methods take and return values; only the
//     *Assign forms mutate through a pointer receiver).
//   - Validated component indexing (At/Set) mapping 0/1/2 to X/Y/Z.
//   - Element-wise and scalar arithmetic in both value and in-place forms.
//   - Geometry: squared length, length, normalization, resizing, dot and
//     cross products, angle, distance, linear interpolation.
//   - Cast — per-component numeric conversion between element types.
//
// Division is deliberately unguarded: floating-point division by zero
// yields ±Inf/NaN and integer division by zero panics, exactly as the
// language defines for the underlying operation.
//
// The only sentinel error is ErrOutOfRange, returned by the component
// indexers and matched via errors.Is.
package vector
