// Package cplx provides Complex, a single-precision complex number value type.
//
// Complex is declared over complex64, so values are plain two-word aggregates:
// they copy freely, never allocate, and can be written as typed constants:
//
//	const z cplx.Complex = 3 + 4i
//
// Go has no operator overloading, so arithmetic is exposed as methods. Value
// receivers return a new value; the *Assign variants store into the receiver.
//
// All failure modes are IEEE-754 ones. Division by zero yields Inf or NaN
// components, NaN compares unequal to everything, and nothing panics.
package cplx
