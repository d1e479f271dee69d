// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

import (
	"sync/atomic"
)

// Once is an expiring view of a curried function.
// It can be applied at most once; the held function is released on use, so
// anything it captured becomes collectable as soon as the application ends.
//
// Curried functions are persistent: applying them never consumes them.
// Once is the counterpart for callers that hand a partial application to
// exactly one consumer.
type Once[A, R any] struct {
	used atomic.Uintptr
	f    Fn1[A, R]
}

// Take returns an expiring view of f.
func Take[A, R any](f Fn1[A, R]) *Once[A, R] {
	return &Once[A, R]{f: f}
}

// Apply applies the held function to a and releases it.
// Panics if o has already been applied or discarded.
func (o *Once[A, R]) Apply(a A) R {
	if o.used.Add(1) != 1 {
		panic("curry: expiring function applied twice")
	}
	return o.take()(a)
}

// TryApply attempts to apply the held function to a.
// Returns (result, true) on success, or (zero, false) if already used.
func (o *Once[A, R]) TryApply(a A) (R, bool) {
	if o.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	return o.take()(a), true
}

// Discard expires o without applying it and releases the held function.
// Discarding an already used Once is a no-op.
func (o *Once[A, R]) Discard() {
	if o.used.Add(1) == 1 {
		o.f = nil
	}
}

// take is called only by the Apply or TryApply that won the used counter.
func (o *Once[A, R]) take() Fn1[A, R] {
	f := o.f
	o.f = nil
	return f
}
