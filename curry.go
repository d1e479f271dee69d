// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Unit is the result of a curried procedure.
// It has no call operator, so nothing can be applied after it.
type Unit = struct{}

// Fn1 is a curried function awaiting one argument.
// Fn1[A, R] yields R once applied to A.
//
// Every curried function of higher arity is an Fn1 whose result is another
// curried function; see [Fn2], [Fn3] and [Fn4].
type Fn1[A, R any] func(A) R

// Fn2 is a curried function awaiting two arguments.
type Fn2[A, B, R any] = Fn1[A, Fn1[B, R]]

// Fn3 is a curried function awaiting three arguments.
type Fn3[A, B, C, R any] = Fn1[A, Fn2[B, C, R]]

// Fn4 is a curried function awaiting four arguments.
// Fn2[A, B, Fn2[C, D, R]] and Fn4[A, B, C, D, R] are the same type.
type Fn4[A, B, C, D, R any] = Fn1[A, Fn3[B, C, D, R]]

// Thunk is a curried function awaiting the unit application.
// Only an explicit call t() evaluates it.
type Thunk[R any] func() R

// Apply applies f to a. It is equivalent to f(a).
func (f Fn1[A, R]) Apply(a A) R {
	return f(a)
}

// Unit returns f unchanged: a function that still awaits an argument
// is not evaluated by the unit application.
func (f Fn1[A, R]) Unit() Fn1[A, R] {
	return f
}

// Apply evaluates t. It is equivalent to t().
func (t Thunk[R]) Apply() R {
	return t()
}

// Curry0 curries a nullary function. f is not called until the returned
// Thunk is applied.
func Curry0[R any](f func() R) Thunk[R] {
	return f
}

// Curry1 curries a unary function.
//
// Curry1 never wraps twice: given a value that is already curried it returns
// the same function value, so Curry1(Curry1(f)) behaves as Curry1(f).
func Curry1[A, R any](f func(A) R) Fn1[A, R] {
	return f
}

// Curry2 curries a binary function.
func Curry2[A, B, R any](f func(A, B) R) Fn2[A, B, R] {
	return curry2(own(f))
}

// Curry3 curries a ternary function.
func Curry3[A, B, C, R any](f func(A, B, C) R) Fn3[A, B, C, R] {
	return curry3(own(f))
}

// Curry4 curries a quaternary function.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) Fn4[A, B, C, D, R] {
	return curry4(own(f))
}

// Ref0 curries the nullary function stored at p without copying it.
//
// The returned Thunk reads *p each time it is applied. p and *p must be
// non-nil by then.
func Ref0[R any](p *func() R) Thunk[R] {
	h := borrow(p)
	return func() R {
		return h.get()()
	}
}

// Ref1 curries the unary function stored at p without copying it.
// *p is read when the function saturates.
func Ref1[A, R any](p *func(A) R) Fn1[A, R] {
	return curry1(borrow(p))
}

// Ref2 curries the binary function stored at p without copying it.
// *p is read when the function saturates, so partial applications made
// before *p is reassigned observe the new function.
func Ref2[A, B, R any](p *func(A, B) R) Fn2[A, B, R] {
	return curry2(borrow(p))
}

// Ref3 curries the ternary function stored at p without copying it.
func Ref3[A, B, C, R any](p *func(A, B, C) R) Fn3[A, B, C, R] {
	return curry3(borrow(p))
}

// Ref4 curries the quaternary function stored at p without copying it.
func Ref4[A, B, C, D, R any](p *func(A, B, C, D) R) Fn4[A, B, C, D, R] {
	return curry4(borrow(p))
}

// Bind2 curries f and binds its first argument.
// Bind2(f, a) is equivalent to Curry2(f)(a).
func Bind2[A, B, R any](f func(A, B) R, a A) Fn1[B, R] {
	return Curry2(f)(a)
}

// Bind3 curries f and binds its first argument.
func Bind3[A, B, C, R any](f func(A, B, C) R, a A) Fn2[B, C, R] {
	return Curry3(f)(a)
}

// Bind4 curries f and binds its first argument.
func Bind4[A, B, C, D, R any](f func(A, B, C, D) R, a A) Fn3[B, C, D, R] {
	return Curry4(f)(a)
}

// curry1 saturates on its only argument.
func curry1[A, R any](h held[func(A) R]) Fn1[A, R] {
	return func(a A) R {
		return h.get()(a)
	}
}

// curry2..curry4 fix the leading argument in a new closure and curry the rest.
// The held function is read only at saturation.

func curry2[A, B, R any](h held[func(A, B) R]) Fn2[A, B, R] {
	return func(a A) Fn1[B, R] {
		return curry1(own(func(b B) R {
			return h.get()(a, b)
		}))
	}
}

func curry3[A, B, C, R any](h held[func(A, B, C) R]) Fn3[A, B, C, R] {
	return func(a A) Fn2[B, C, R] {
		return curry2(own(func(b B, c C) R {
			return h.get()(a, b, c)
		}))
	}
}

func curry4[A, B, C, D, R any](h held[func(A, B, C, D) R]) Fn4[A, B, C, D, R] {
	return func(a A) Fn3[B, C, D, R] {
		return curry3(own(func(b B, c C, d D) R {
			return h.get()(a, b, c, d)
		}))
	}
}
