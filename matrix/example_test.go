// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/vecmat/matrix"
)

func ExampleMat2x2_DivScalarAssign() {
	m := matrix.Mat2x2[float64]{{1, 2}, {3, 4}}
	m.DivScalarAssign(2)
	fmt.Println(m)
	// Output:
	// [0.5, 1]
	// [1.5, 2]
}

func ExampleMat2x3_Transpose() {
	m := matrix.Mat2x3[int]{{1, 2, 3}, {4, 5, 6}}
	fmt.Println(m.Transpose())
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
