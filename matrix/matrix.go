// Package matrix: Matrix is a generic, fixed-shape dense matrix storing
// elements of any arithmetic scalar in a flat contiguous slice for
// performance and cache friendliness. Shape is fixed at construction;
// all instances share the build-wide storage layout (see layout.go).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gauss"
)

// accessErrorf wraps an underlying error with element-access context.
func accessErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// flatErrorf wraps an underlying error with flat-offset access context.
func flatErrorf(method string, i int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, i, err)
}

// Matrix is a dense rows×cols matrix of T values.
// rows and cols are fixed at construction; data holds rows*cols elements
// linearized per the build-wide storage layout. The zero Matrix value is
// not usable; construct via New, NewUninit, Identity, or Clone.
type Matrix[T gauss.Scalar] struct {
	rows, cols int // fixed dimensions, both > 0
	data       []T // flat backing storage, length == rows*cols
}

// New creates a rows×cols matrix with every element set to the zero value.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (zeroed by the runtime).
// Stage 3 (Finalize): return new Matrix or ErrBadShape.
// Complexity: O(rows*cols) time and memory.
func New[T gauss.Scalar](rows, cols int) (*Matrix[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// Allocate flat slice; Go zero-fills on allocation.
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewUninit creates a rows×cols matrix whose contents the caller promises
// to overwrite before reading — the uninitialized-construction opt-out for
// result buffers. Go's allocator zero-fills regardless, so this is
// observationally identical to New; the distinct constructor documents
// intent at call sites (Mul uses it for its result).
func NewUninit[T gauss.Scalar](rows, cols int) (*Matrix[T], error) {
	return New[T](rows, cols)
}

// Identity creates the n×n identity matrix.
// Complexity: O(n²).
func Identity[T gauss.Scalar](n int) (*Matrix[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[m.offset(i, i)] = T(1)
	}

	return m, nil
}

// Rows returns the fixed number of rows.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the fixed number of columns.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Elements returns Rows*Cols, the length of the backing storage.
// Complexity: O(1).
func (m *Matrix[T]) Elements() int {
	return len(m.data)
}

// IsSquare reports whether the matrix has equal row and column counts.
func (m *Matrix[T]) IsSquare() bool {
	return m.rows == m.cols
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute linear index per the build layout.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.rows {
		return 0, accessErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.cols {
		return 0, accessErrorf(method, row, col, ErrOutOfRange)
	}

	return m.offset(row, col), nil
}

// At retrieves the element at (row, col).
// This is the checked access form; kernels inside the package index the
// backing slice directly once shapes are validated.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// AtFlat retrieves the element at the given raw storage offset.
// The mapping from offset to (row, col) depends on the build layout; use
// At for layout-independent access.
// Complexity: O(1).
func (m *Matrix[T]) AtFlat(i int) (T, error) {
	if i < 0 || i >= len(m.data) {
		var zero T
		return zero, flatErrorf("AtFlat", i, ErrOutOfRange)
	}

	return m.data[i], nil
}

// SetFlat assigns value v at the given raw storage offset.
// Complexity: O(1).
func (m *Matrix[T]) SetFlat(i int, v T) error {
	if i < 0 || i >= len(m.data) {
		return flatErrorf("SetFlat", i, ErrOutOfRange)
	}
	m.data[i] = v

	return nil
}

// Data returns the flat backing slice in raw storage order. It is a live
// view, not a copy: writes through it are visible to the matrix. Intended
// for bulk hand-off to external numeric routines.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: cp}
}

// String implements fmt.Stringer for easy debugging, one bracketed row per
// line in logical (row, col) order regardless of storage layout.
// Complexity: O(rows*cols).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ { // iterate over logical rows
		b.WriteByte('[')
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.data[m.offset(r, c)])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
