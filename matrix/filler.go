// SPDX-License-Identifier: MIT
// Package matrix: row-major bulk fill.
//
// The fill surface assigns an ordered value sequence to elements in
// row-major traversal order — (i/Cols, i%Cols) for the i-th value —
// regardless of the build's storage layout, so literal-style population
// reads naturally in source. Unlike raw SetFlat loops, the count is
// validated: supplying more values than Rows*Cols is ErrTooManyValues,
// never a silent out-of-bounds write.

package matrix

import "github.com/katalvlaran/gauss"

// Fill assigns values to m in row-major traversal order starting at
// (0, 0). Fewer values than Elements() fill a prefix and leave the rest
// untouched; more values than Elements() is rejected before any write.
// Errors: ErrTooManyValues.
// Complexity: O(len(values)).
func (m *Matrix[T]) Fill(values ...T) error {
	if len(values) > len(m.data) {
		return matrixErrorf(opFill, ErrTooManyValues)
	}

	for i, v := range values {
		m.data[m.offset(i/m.cols, i%m.cols)] = v
	}

	return nil
}

// Filler populates a matrix one value at a time in row-major traversal
// order — the chainable analogue of Fill for call sites that compute
// values incrementally:
//
//	f := matrix.NewFiller(m)
//	f.Push(a).Push(b).Push(c)
//	if err := f.Err(); err != nil { ... }
//
// The first Push past the last element latches ErrTooManyValues; every
// later Push is a no-op and Err reports the latched failure.
type Filler[T gauss.Scalar] struct {
	m    *Matrix[T]
	next int   // row-major index of the next element to write
	err  error // first failure, latched
}

// NewFiller returns a Filler positioned at element (0, 0) of m.
func NewFiller[T gauss.Scalar](m *Matrix[T]) *Filler[T] {
	return &Filler[T]{m: m}
}

// Push writes v at the current row-major position and advances.
// Returns the receiver for chaining; failures latch into Err.
func (f *Filler[T]) Push(v T) *Filler[T] {
	if f.err != nil {
		return f
	}
	if f.next >= len(f.m.data) {
		f.err = matrixErrorf(opFill, ErrTooManyValues)
		return f
	}

	f.m.data[f.m.offset(f.next/f.m.cols, f.next%f.m.cols)] = v
	f.next++

	return f
}

// Count reports how many values have been written so far.
func (f *Filler[T]) Count() int {
	return f.next
}

// Err returns the first failure encountered by Push, or nil.
func (f *Filler[T]) Err() error {
	return f.err
}
