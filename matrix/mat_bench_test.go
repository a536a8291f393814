// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
)

var sinkMat4x4 matrix.Mat4x4[float64]

func BenchmarkMat4x4_DivAssign(b *testing.B) {
	m := matrix.Splat4x4(1e6)
	d := matrix.Splat4x4(1.0000001)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.DivAssign(d)
	}
	sinkMat4x4 = m
}

func BenchmarkMat4x4_Mul(b *testing.B) {
	m := matrix.Identity4[float64]()
	d := matrix.Splat4x4(2.0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat4x4 = m.Mul(d)
	}
}
