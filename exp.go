// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package cexp calculates the exponential function for float32 and float64 values
// using series expansion only, without calling math.Exp.
//
// exp(x) is split into e^n * exp(x-n) for integer n, so that the series is only ever
// summed for |x-n| < 1. Overflow and underflow are detected before the operation
// that would cause them, so no intermediate infinity is ever produced.
//
// Go cannot evaluate functions during compilation. To bake exp-derived values
// into a binary as constants, use cmd/expgen with go generate.
package cexp

import (
	"github.com/avdva/cexp/internal/mathutil"

	"golang.org/x/exp/constraints"
)

// E returns Euler's number as the limit of Series(1) for F.
// This is the exact value Exp multiplies by.
func E[F constraints.Float]() F {
	return Series(F(1))
}

// Exp returns e**x.
//
// Special cases are:
//
//	Exp(0) = 1
//	Exp(x) = +Inf for x >= math.MaxInt32, or if the result overflows F
//	Exp(x) = 0 for x <= math.MinInt32, or if the result underflows F
//	Exp(NaN) = NaN
//
// Relative error grows slowly with |x|, as e^n is accumulated with n multiplications.
func Exp[F constraints.Float](x F) F {
	if mathutil.IsNaN(x) {
		return x
	}
	if x == 0 {
		return 1
	}
	lo, hi := mathutil.Int32Bounds[F]()
	if x >= hi {
		return mathutil.Inf[F]()
	}
	if x <= lo {
		return 0
	}

	e := E[F]()
	n := int32(x)
	residual := x - F(n)
	answer := F(1)
	if x > 0 {
		limit := mathutil.MaxFloat[F]() / e
		for i := int32(0); i < n; i++ {
			if answer > limit {
				return mathutil.Inf[F]()
			}
			answer *= e
		}
	} else {
		n = mathutil.AbsInt(n)
		for i := int32(0); i < n; i++ {
			answer /= e
			if answer == 0 {
				return 0
			}
		}
	}

	odd := Series(residual)
	if odd > 1 && answer > mathutil.MaxFloat[F]()/odd {
		return mathutil.Inf[F]()
	}
	return answer * odd
}

// Exp32 is Exp for float32.
func Exp32(x float32) float32 {
	return Exp(x)
}

// Exp64 is Exp for float64.
func Exp64(x float64) float64 {
	return Exp(x)
}
