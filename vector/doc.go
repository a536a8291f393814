// SPDX-License-Identifier: MIT

// Package vector provides fixed-length numeric vectors Vec2, Vec3 and Vec4
// over any numeric.Scalar element type.
//
// A vector is a named Go array (type Vec3[T] [3]T): the length is part of the
// type, so operands of different arity cannot be combined and no runtime
// shape check exists. Values copy on assignment; there is no shared state.
//
// Operators come in three families, all elementwise:
//
//	v.AddAssign(o)    v.SubAssign(o)    v.MulAssign(o)    v.DivAssign(o)     // v op= o, in place
//	v.Add(o)          v.Sub(o)          v.Mul(o)          v.Div(o)           // copy, op=, return copy
//	v.AddScalar(s)    ... v.DivScalarAssign(s)                              // broadcast scalar
//
// Division by zero defers to the element type (IEEE-754 for floats, a
// runtime fault for integers). DivChecked and friends return
// numeric.ErrDivisionByZero for integer element types instead, leaving the
// receiver untouched.
//
// Ordered and integer-only operations are package functions over the Vector
// and Mutable interfaces, since complex and floating element types lack them:
//
//	vector.Max(v)  vector.Min(v)                 // Integer or Float elements
//	vector.RemAssign(&v, o)  vector.RemScalarAssign(&v, s)  // Integer elements
//
// vec2.go, vec3.go and vec4.go are generated from one template; edit
// internal/cmd/genshapes/vector.tmpl and run go generate.
//
// Example:
//
//	v := vector.Vec2[float64]{4, 9}
//	v.DivAssign(vector.Vec2[float64]{2, 3}) // v == {2, 3}
package vector

//go:generate go run ../internal/cmd/genshapes -kind vector
