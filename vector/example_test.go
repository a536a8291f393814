// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/vecmat/vector"
)

func ExampleVec2_DivAssign() {
	v := vector.Vec2[float64]{4, 9}
	v.DivAssign(vector.Vec2[float64]{2, 3})
	fmt.Println(v)

	inf := vector.Vec2[float64]{1, 1}
	inf.DivAssign(vector.Vec2[float64]{0, 1})
	fmt.Println(inf)
	// Output:
	// (2, 3)
	// (+Inf, 1)
}

func ExampleVec3_DivChecked() {
	_, err := vector.Vec3[int]{1, 2, 3}.DivChecked(vector.Vec3[int]{1, 0, 1})
	fmt.Println(err)
	// Output:
	// Vec3.DivAssignChecked: divisor[1]: vecmat: integer division by zero
}

func ExampleMax() {
	v := vector.Vec4[int]{3, -8, 11, 0}
	fmt.Println(vector.Max(v), vector.Min(v))
	// Output:
	// 11 -8
}

func ExampleRemAssign() {
	v := vector.Vec3[int]{10, 11, 12}
	err := vector.RemAssign(&v, vector.Vec3[int]{3, 4, 5})
	fmt.Println(err, v)

	fmt.Println(vector.RemAssign(&v, vector.Vec3[int]{1, 1, 0}))
	// Output:
	// <nil> (1, 3, 2)
	// RemAssign: divisor[2]: vecmat: integer division by zero
}
