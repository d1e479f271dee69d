// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// Uncurry0 returns the function held by t.
func Uncurry0[R any](t Thunk[R]) func() R {
	return t
}

// Uncurry1 returns the function held by f.
func Uncurry1[A, R any](f Fn1[A, R]) func(A) R {
	return f
}

// Uncurry2 returns an ordinary binary function equivalent to f.
func Uncurry2[A, B, R any](f Fn2[A, B, R]) func(A, B) R {
	return func(a A, b B) R {
		return Apply2(f, a, b)
	}
}

// Uncurry3 returns an ordinary ternary function equivalent to f.
func Uncurry3[A, B, C, R any](f Fn3[A, B, C, R]) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return Apply3(f, a, b, c)
	}
}

// Uncurry4 returns an ordinary quaternary function equivalent to f.
func Uncurry4[A, B, C, D, R any](f Fn4[A, B, C, D, R]) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return Apply4(f, a, b, c, d)
	}
}
