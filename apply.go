// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Grouped application.
//
// Applying k arguments at once is defined as applying the first and then
// applying the remaining k-1 to the result:
//
//	ApplyK(f, a1, ..., ak) == ApplyK-1(f(a1), a2, ..., ak)
//
// Every grouping of the same argument sequence therefore yields the same
// value and invokes the underlying function the same number of times.
// Supplying more arguments than f's own arity is legal whenever the
// intermediate result is itself curried; otherwise the call does not
// type-check.

// Apply1 applies f to a.
func Apply1[A, R any](f Fn1[A, R], a A) R {
	return f(a)
}

// Apply2 applies f to a, then the result to b.
func Apply2[A, B, R any](f Fn2[A, B, R], a A, b B) R {
	return Apply1(f(a), b)
}

// Apply3 applies f to a, b and c in order.
func Apply3[A, B, C, R any](f Fn3[A, B, C, R], a A, b B, c C) R {
	return Apply2(f(a), b, c)
}

// Apply4 applies f to a, b, c and d in order.
func Apply4[A, B, C, D, R any](f Fn4[A, B, C, D, R], a A, b B, c C, d D) R {
	return Apply3(f(a), b, c, d)
}
