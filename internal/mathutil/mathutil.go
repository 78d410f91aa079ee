// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil provides representable-range constants for generic float types
// and a few integer helpers used by the exp driver.
package mathutil

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

const float32Size = unsafe.Sizeof(float32(0))

// isFloat32 reports if F is float32 or a type derived from it.
// constraints.Float has only two widths, so size is enough to tell them apart.
func isFloat32[F constraints.Float]() bool {
	var f F
	return unsafe.Sizeof(f) == float32Size
}

// MaxFloat returns the maximum finite value of F.
func MaxFloat[F constraints.Float]() F {
	// constants are converted through variables:
	// math.MaxFloat64 is not representable by every type in F's type set.
	if isFloat32[F]() {
		m := float32(math.MaxFloat32)
		return F(m)
	}
	m := float64(math.MaxFloat64)
	return F(m)
}

// Inf returns positive infinity of type F.
func Inf[F constraints.Float]() F {
	return F(math.Inf(1))
}

// IsNaN reports whether f is a not-a-number value.
func IsNaN[F constraints.Float](f F) bool {
	return f != f
}

// Int32Bounds returns the range of int32 as values of F.
// For float32, hi is rounded up to 2^31, so any x < hi truncates into int32.
func Int32Bounds[F constraints.Float]() (lo, hi F) {
	return F(math.MinInt32), F(math.MaxInt32)
}

// AbsInt returns the absolute value of val without branching.
// AbsInt of the minimum value of I is the value itself.
func AbsInt[I constraints.Signed](val I) I {
	mask := val >> (unsafe.Sizeof(val)*8 - 1)
	return (val + mask) ^ mask
}
