// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Result mapping.
//
// MapN transforms the value a curried function yields once saturated.
// k runs at saturation, never earlier. Mapping a curry constructor over the
// result flattens a function that returns a function:
//
//	h := func(a, b int) func(int, int) int { ... }
//	f := Map2(Curry2(h), Curry2[int, int, int]) // Fn4[int, int, int, int, int]

// Map0 maps over the result of a Thunk.
func Map0[R, S any](t Thunk[R], k func(R) S) Thunk[S] {
	return func() S {
		return k(t())
	}
}

// Map1 maps over the result of a unary curried function.
func Map1[A, R, S any](f Fn1[A, R], k func(R) S) Fn1[A, S] {
	return func(a A) S {
		return k(f(a))
	}
}

// Map2 maps over the result of a binary curried function.
func Map2[A, B, R, S any](f Fn2[A, B, R], k func(R) S) Fn2[A, B, S] {
	return Map1(f, func(g Fn1[B, R]) Fn1[B, S] {
		return Map1(g, k)
	})
}

// Map3 maps over the result of a ternary curried function.
func Map3[A, B, C, R, S any](f Fn3[A, B, C, R], k func(R) S) Fn3[A, B, C, S] {
	return Map1(f, func(g Fn2[B, C, R]) Fn2[B, C, S] {
		return Map2(g, k)
	})
}

// Map4 maps over the result of a quaternary curried function.
func Map4[A, B, C, D, R, S any](f Fn4[A, B, C, D, R], k func(R) S) Fn4[A, B, C, D, S] {
	return Map1(f, func(g Fn3[B, C, D, R]) Fn3[B, C, D, S] {
		return Map3(g, k)
	})
}
