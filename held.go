// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry

// held is the storage of a curried value: either an owned copy of the
// callable or a non-owning view of a callable that lives elsewhere.
// All construction paths read the callable through get, so ownership is
// decided once at construction and never again.
type held[F any] struct {
	v F
	p *F
}

// own stores a copy of v.
func own[F any](v F) held[F] {
	return held[F]{v: v}
}

// borrow stores a view of *p. The referent is read on every get.
func borrow[F any](p *F) held[F] {
	return held[F]{p: p}
}

func (h held[F]) get() F {
	if h.p != nil {
		return *h.p
	}
	return h.v
}
