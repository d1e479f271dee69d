// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Curried procedures.
// A procedure saturates to Unit, so the argument that saturates it is the
// last one any grouping may supply.

// Proc0 curries a nullary procedure. f runs when the Thunk is applied.
func Proc0(f func()) Thunk[Unit] {
	return func() Unit {
		f()
		return Unit{}
	}
}

// Proc1 curries a unary procedure.
func Proc1[A any](f func(A)) Fn1[A, Unit] {
	return func(a A) Unit {
		f(a)
		return Unit{}
	}
}

// Proc2 curries a binary procedure.
func Proc2[A, B any](f func(A, B)) Fn2[A, B, Unit] {
	return Curry2(func(a A, b B) Unit {
		f(a, b)
		return Unit{}
	})
}

// Proc3 curries a ternary procedure.
func Proc3[A, B, C any](f func(A, B, C)) Fn3[A, B, C, Unit] {
	return Curry3(func(a A, b B, c C) Unit {
		f(a, b, c)
		return Unit{}
	})
}

// Proc4 curries a quaternary procedure.
func Proc4[A, B, C, D any](f func(A, B, C, D)) Fn4[A, B, C, D, Unit] {
	return Curry4(func(a A, b B, c C, d D) Unit {
		f(a, b, c, d)
		return Unit{}
	})
}
