// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.

package vector

import "errors"

// ErrOutOfRange indicates a component index outside 0..2.
// The indexers (At/Set) MUST return this, not panic.
var ErrOutOfRange = errors.New("vector: component index out of range")
