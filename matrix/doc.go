// SPDX-License-Identifier: MIT

// Package matrix provides fixed-shape numeric matrices Mat2x2 through Mat4x4
// (every R×C with R, C ∈ {2, 3, 4}) over any numeric.Scalar element type.
//
// Layout:
//
//	Row-major. MatRxC[T] is the array [R][C]T, m[row][col]. Construction
//	(FromSliceRxC reads a flat row-major slice), access (At, Row, Col),
//	formatting and YAML all follow this order.
//
// Shape safety:
//
//	Dimensions are part of the type. Operands of different shape cannot be
//	combined, so the methods carry no runtime shape check. ErrDimensionMismatch
//	guards external data (flat slices, YAML documents) and the package
//	functions below, which take interfaces.
//
// Arithmetic:
//
//	Every operator is elementwise, exactly as for package vector:
//	AddAssign/SubAssign/MulAssign/DivAssign against the same shape,
//	the ...ScalarAssign forms against a scalar, and non-assigning Add/Sub/
//	Mul/Div/...Scalar that copy, assign and return. Mul is the Hadamard
//	product and Div the Hadamard quotient: Div never means multiplication by
//	an inverse.
//
// Division by zero defers to the element type (IEEE-754 for floats, a
// runtime fault for integers); the ...Checked variants return
// numeric.ErrDivisionByZero for integer element types without mutating.
//
// Ordered and integer-only operations are package functions over the Matrix
// and Mutable interfaces:
//
//	matrix.Max(m)  matrix.Min(m)                   // Integer or Float elements
//	matrix.RemAssign(&m, o)  matrix.RemScalarAssign(&m, s)  // Integer elements
//
// The nine matRxC.go files are generated from
// internal/cmd/genshapes/matrix.tmpl by go generate.
//
// Example:
//
//	m := matrix.Mat2x2[float64]{{1, 2}, {3, 4}}
//	m.DivScalarAssign(2) // {{0.5, 1}, {1.5, 2}}
package matrix

//go:generate go run ../internal/cmd/genshapes -kind matrix
