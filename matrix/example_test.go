package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gauss/matrix"
)

// ExampleMatrix_Fill demonstrates row-major bulk population: values land
// in traversal order no matter which storage layout the build selected.
func ExampleMatrix_Fill() {
	m, _ := matrix.New[int](2, 3)
	_ = m.Fill(1, 2, 3, 4, 5, 6)
	fmt.Print(m)
	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
}

// ExampleMul multiplies two 2x2 matrices.
func ExampleMul() {
	a, _ := matrix.New[int](2, 2)
	_ = a.Fill(1, 2, 3, 4)
	b, _ := matrix.New[int](2, 2)
	_ = b.Fill(5, 6, 7, 8)

	prod, _ := matrix.Mul(a, b)
	fmt.Print(prod)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleInverse inverts a 2x2 matrix and shows the singular case.
func ExampleInverse() {
	m, _ := matrix.New[float64](2, 2)
	_ = m.Fill(4, 7, 2, 6)

	inv, err := matrix.Inverse(m)
	fmt.Println(err)
	fmt.Print(inv)

	singular, _ := matrix.New[float64](2, 2) // all zeros
	_, err = matrix.Inverse(singular)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// <nil>
	// [0.6, -0.7]
	// [-0.2, 0.4]
	// true
}

// ExampleMatrix_Transposed shows shape-swapping transposition.
func ExampleMatrix_Transposed() {
	m, _ := matrix.New[int](2, 3)
	_ = m.Fill(1, 2, 3, 4, 5, 6)
	fmt.Print(m.Transposed())
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
