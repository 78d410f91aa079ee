// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cexp

import "golang.org/x/exp/constraints"

// Series calculates exp(x) for small x (-1 <= x <= 1) by summing
// 1 + x + x^2/2! + x^3/3! + ... until the next term no longer changes the sum.
// It converges for any finite x, but the intermediate powers and factorials
// overflow long before the sum settles for large |x|, use Exp instead.
// The result is deterministic for given F and x.
func Series[F constraints.Float](x F) F {
	answer, xn, factorial := F(1), x, F(1)
	for n := 1; ; {
		next := answer + xn/factorial
		if next == answer {
			return answer
		}
		n++
		xn *= x
		factorial *= F(n)
		answer = next
	}
}
