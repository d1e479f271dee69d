// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Classification constraints.
//
// CurriedN[..., R] is satisfied exactly by the curried values that yield R
// when supplied the listed arguments, in any grouping. The constraints are
// resolved by the compiler and have no run-time representation.
//
// Sequences that start with a unit application compose by nesting: a value
// that yields a function of B after the unit application, and R after B, is
// a Curried0[Fn1[B, R]].
//
//	func sum[F curry.Curried2[int, int, int]](f F) int {
//		return curry.Apply2(curry.Fn2[int, int, int](f), 1, 2)
//	}

// Curried0 is satisfied by a Thunk yielding R.
type Curried0[R any] interface {
	Thunk[R]
}

// Curried1 is satisfied by a curried function yielding R after A.
type Curried1[A, R any] interface {
	Fn1[A, R]
}

// Curried2 is satisfied by a curried function yielding R after A and B.
type Curried2[A, B, R any] interface {
	Fn2[A, B, R]
}

// Curried3 is satisfied by a curried function yielding R after A, B and C.
type Curried3[A, B, C, R any] interface {
	Fn3[A, B, C, R]
}

// Curried4 is satisfied by a curried function yielding R after A, B, C and D.
type Curried4[A, B, C, D, R any] interface {
	Fn4[A, B, C, D, R]
}
