// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package curry provides statically typed currying for Go functions.
//
// A curried function accepts its arguments incrementally: one at a time, in
// groups, or all at once, with the same result for every grouping.
//
//	add := func(a, b, c, d int) int { return a + b + c + d }
//	f := curry.Curry4(add)
//
//	f(1)(2)(3)(4)                  // 10
//	curry.Apply2(f, 1, 2)(3)(4)    // 10
//	curry.Apply2(f(1)(2), 3, 4)    // 10
//	curry.Apply4(f, 1, 2, 3, 4)    // 10
//
// The underlying function runs exactly once, when the last argument arrives.
// Partial applications only capture arguments.
//
// # Type-Level Design
//
// The core type [Fn1] is a named func type, so curried values are called
// with ordinary call syntax and are assignable to plain func types.
// Higher arities are generic aliases of nested [Fn1]:
//
//   - [Fn2]: Fn1[A, Fn1[B, R]]
//   - [Fn3]: Fn1[A, Fn2[B, C, R]]
//   - [Fn4]: Fn1[A, Fn3[B, C, D, R]]
//
// A curried function that yields another curried function is therefore
// already flat: Fn2[A, B, Fn2[C, D, R]] is the same type as
// Fn4[A, B, C, D, R], and every [Apply4] grouping works across the seam.
//
// Every misuse is a compile error: a wrong argument type, an argument
// supplied to a saturated value, or an argument supplied to a [Thunk].
// There is no run-time dispatch and no error return.
//
// # Construction
//
//   - [Curry0]: Curry a nullary function into a [Thunk] (never auto-invoked)
//   - [Curry1], [Curry2], [Curry3], [Curry4]: Curry a function by value
//   - [Ref0], [Ref1], [Ref2], [Ref3], [Ref4]: Curry the function stored at a pointer
//   - [Proc0], [Proc1], [Proc2], [Proc3], [Proc4]: Curry a procedure; saturates to [Unit]
//   - [Bind2], [Bind3], [Bind4]: Curry and bind the leading argument
//
// [Curry1] of a value that is already curried returns the same function value.
//
// # Application
//
//   - f(a), [Fn1.Apply]: Apply one argument (binds, or saturates an Fn1)
//   - t(), [Thunk.Apply]: Unit application of a [Thunk]
//   - [Fn1.Unit]: Unit application of a function still awaiting arguments (identity)
//   - [Apply1], [Apply2], [Apply3], [Apply4]: Apply a group of arguments
//
// # Composition and Extraction
//
//   - [Map0], [Map1], [Map2], [Map3], [Map4]: Map over the saturated result
//   - [Uncurry0], [Uncurry1], [Uncurry2], [Uncurry3], [Uncurry4]: Back to an ordinary func
//
// # Classification
//
// [Curried0], [Curried1], [Curried2], [Curried3] and [Curried4] are
// constraints satisfied exactly by the curried values that yield a given
// result after a given argument sequence.
//
// # Ownership
//
// CurryN copies the function value. RefN keeps a non-owning view and reads
// the function when the curried value saturates, so reassigning the
// referent is observed by partial applications made earlier.
//
// Results are ordinary Go values. A pointer result keeps aliasing its
// referent through later applications; a non-pointer result is a copy owned
// by the caller.
//
// [Take] returns a one-shot [Once] view that releases the held function
// after its single application.
package curry
