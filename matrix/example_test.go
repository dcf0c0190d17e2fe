// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// ExampleSplit shows the additive L + D + U decomposition.
func ExampleSplit() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, 1},
		{2, 3},
	})
	sp, _ := matrix.Split(a)
	fmt.Print("L:\n", sp.L, "D:\n", sp.D, "U:\n", sp.U)

	// Output:
	// L:
	// [0, 0]
	// [2, 0]
	// D:
	// [4, 0]
	// [0, 3]
	// U:
	// [0, 1]
	// [0, 0]
}

// ExampleInvertLowerTriangular inverts a small lower-triangular matrix.
func ExampleInvertLowerTriangular() {
	l, _ := matrix.NewDenseFromRows([][]float64{
		{2, 0},
		{4, 8},
	})
	inv, _ := matrix.InvertLowerTriangular(l)
	fmt.Print(inv)

	// Output:
	// [0.5, 0]
	// [-0.25, 0.125]
}
