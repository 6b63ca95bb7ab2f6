// Package matrix provides a generic dense fixed-shape matrix and the
// linear-algebra kernels that operate on it.
//
// The matrix package provides:
//
//   - Matrix[T] — a flat-storage rectangular matrix over any arithmetic
//     scalar, with value semantics and validated element access.
//   - Arithmetic kernels (Add, Sub, Scale, Mul and their in-place forms)
//     with strict fail-fast shape validation.
//   - Structural operations: Reset, identity loading, transposition (both
//     in-place square and shape-swapping), trace.
//   - Row-major bulk fill (Fill, Filler) replacing ad-hoc element loops.
//   - Determinant with closed forms up to 4×4 and fraction-free Bareiss
//     elimination beyond (exact for integer element types).
//   - Inversion (Inverse, Invert) reporting singular inputs as ErrSingular.
//   - Free-axis rotation composition for square matrices of rank ≥ 3.
//
// Storage order is a program-wide compile-time policy: column-major by
// default, row-major under the gauss_rowmajor build tag. Every public
// operation is layout-independent; only Data() exposes raw storage order.
//
// All user-triggered failures are package sentinel errors matched via
// errors.Is; nothing in this package panics on user input.
//
// See the examples in this package and vector for usage patterns.
package matrix
