// Package vecmat is a small generic linear-algebra value library: fixed-size
// vectors and matrices over any Go numeric element type, with elementwise
// compound-assignment arithmetic.
//
// What's inside:
//
//	numeric/  — Scalar constraint, sentinel errors, division policy,
//	            approximate comparison options
//	vector/   — Vec2, Vec3, Vec4
//	matrix/   — Mat2x2 … Mat4x4 (every R×C with R, C ∈ {2,3,4}), row-major
//
// Every container is a named Go array, so shapes are checked by the compiler
// and values copy on assignment. All operators are elementwise; matrix
// division is the Hadamard quotient, never multiplication by an inverse.
//
// Quick example:
//
//	v := vector.Vec2[float64]{4, 9}
//	v.DivAssign(vector.Vec2[float64]{2, 3}) // (2, 3)
//
//	m := matrix.Mat2x2[float64]{{1, 2}, {3, 4}}
//	m.DivScalarAssign(2) // [0.5, 1] [1.5, 2]
//
//	go get github.com/katalvlaran/vecmat
package vecmat
