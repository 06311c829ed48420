// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic.
//
// Saturating functions never wrap: a result that would overflow T is clamped
// to the maximum value of T. This is the required behaviour for cost
// estimation as a wrapped (i.e. small) cost would admit an arbitrarily
// expensive operation.
package intmath

import (
	"golang.org/x/exp/constraints"
)

// Max returns the maximum value representable by T.
func Max[T constraints.Unsigned]() T {
	return ^T(0)
}

// SaturatingAdd returns `min(a+b, Max[T]())`.
func SaturatingAdd[T constraints.Unsigned](a, b T) T {
	if s := a + b; s >= a {
		return s
	}
	return Max[T]()
}

// SaturatingMul returns `min(a*b, Max[T]())`.
func SaturatingMul[T constraints.Unsigned](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	if p := a * b; p/b == a {
		return p
	}
	return Max[T]()
}

// SaturatingMulAdd returns `acc + a*b`, with both operations saturating.
func SaturatingMulAdd[T constraints.Unsigned](acc, a, b T) T {
	return SaturatingAdd(acc, SaturatingMul(a, b))
}

// Saturate converts `v` to T, clamping it to [Max] if it is out of range.
func Saturate[T constraints.Unsigned](v uint64) T {
	if m := uint64(Max[T]()); v > m {
		return T(m)
	}
	return T(v)
}

// BoundedSubtract returns `max(a-b,floor)` without underflow.
func BoundedSubtract[T constraints.Unsigned](a, b, floor T) T {
	// If `floor + b` overflows then it's impossible for `a` to ever be large
	// enough for the subtraction to not be bounded.
	minA := floor + b
	if overflow := minA < b; overflow || a <= minA {
		return floor
	}
	return a - b
}
