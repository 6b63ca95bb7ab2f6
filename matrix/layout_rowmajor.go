//go:build gauss_rowmajor

package matrix

// storageLayout is the program-wide linearization policy for this build.
const storageLayout = RowMajor
