// SPDX-License-Identifier: MIT
// Package matrix: storage-order policy.
//
// Storage order is a program-wide compile-time configuration, never a
// per-instance setting: every Matrix in a build shares one linearization so
// that Data() slices from different instances are always interchangeable.
// The default is column-major; building with -tags gauss_rowmajor flips the
// whole program to row-major (see layout_rowmajor.go / layout_colmajor.go).

package matrix

// Layout identifies the linearization of the flat backing slice.
type Layout int

const (
	// ColMajor stores element (r, c) at offset c*Rows + r.
	ColMajor Layout = iota

	// RowMajor stores element (r, c) at offset r*Cols + c.
	RowMajor
)

// String implements fmt.Stringer for diagnostics.
func (l Layout) String() string {
	if l == RowMajor {
		return "row-major"
	}

	return "column-major"
}

// StorageLayout reports the layout compiled into this build.
func StorageLayout() Layout {
	return storageLayout
}

// offset maps the logical (row, col) position to a flat index.
// Bounds are the caller's responsibility; the branch on a package constant
// compiles down to a single multiply-add.
func (m *Matrix[T]) offset(row, col int) int {
	if storageLayout == RowMajor {
		return row*m.cols + col
	}

	return col*m.rows + row
}
