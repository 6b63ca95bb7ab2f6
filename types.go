// SPDX-License-Identifier: MIT

// Package gauss: shared scalar constraints and numeric policy constants.
// This file is the single source of truth for the element-type unions used
// by matrix/ and vector/, and for the default comparison tolerances.
// Subpackages MUST NOT redeclare these; a single constraint set keeps the
// instantiation surface consistent across the whole library.

package gauss

// Signed is the constraint union of the built-in signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint union of the built-in unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any built-in integer type, signed or unsigned.
type Integer interface {
	Signed | Unsigned
}

// Float is any built-in floating-point type. Operations that divide
// (inversion, normalization, rotation) constrain to Float.
type Float interface {
	~float32 | ~float64
}

// Scalar is any arithmetic element type accepted by Matrix and Vector3.
type Scalar interface {
	Integer | Float
}

// Numeric tolerances (documented defaults; callers may pass their own).
const (
	// Epsilon is the default non-negative tolerance for approximate
	// float64 comparisons (EqualApprox, property checks in tests).
	Epsilon = 1e-9

	// Epsilon32 is the companion tolerance for float32 element types,
	// matching single-precision rounding granularity.
	Epsilon32 = 1e-5
)
