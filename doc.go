// Package gauss is a small fixed-shape linear-algebra toolkit for Go —
// dense matrices with compile-time-configured storage order, 3-component
// vectors, and the classic geometric helpers built on top of them.
//
// 🚀 What is gauss?
//
//	A compact, value-semantics library that brings together:
//		• Dense matrices: generic over any arithmetic scalar, fixed shape,
//		  flat contiguous storage (row- or column-major, chosen per build)
//		• Arithmetic kernels: add, subtract, scale, multiply — strict
//		  fail-fast shape validation, sentinel errors via errors.Is
//		• Structural ops: transpose, trace, identity, row-major bulk fill
//		• Decompositions: determinant (closed forms 1×1–4×4, fraction-free
//		  elimination beyond), inversion with explicit singularity reporting
//		• Vectors: X/Y/Z value type with length, normalization, dot, cross,
//		  angle, lerp and per-component numeric casting
//
// ✨ Why choose gauss?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Value types only – no hidden sharing, no locks, no lifecycle
//   - Pure Go – no cgo, no SIMD intrinsics, no hidden deps
//   - Predictable – every error is a package sentinel; nothing panics on
//     user input
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — generic dense fixed-shape Matrix[T] + kernels and fillers
//	vector/ — Vector3[T] with geometry helpers and casts
//
// The root package holds only what both share: the Scalar/Float constraint
// unions and the default comparison tolerances.
//
// Quick taste:
//
//	m, _ := matrix.New[float64](2, 2)
//	_ = m.Fill(1, 2, 3, 4)
//	inv, err := matrix.Inverse(m) // err is matrix.ErrSingular when det == 0
//
//	go get github.com/katalvlaran/gauss
package gauss
