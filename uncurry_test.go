// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package curry_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/curry"
)

func TestUncurryRoundTrip(t *testing.T) {
	f0 := curry.Uncurry0(curry.Curry0(func() int { return 5 }))
	if got := f0(); got != 5 {
		t.Fatalf("Uncurry0: got %d, want 5", got)
	}
	f1 := curry.Uncurry1(curry.Curry1(inc))
	if got := f1(1); got != 2 {
		t.Fatalf("Uncurry1: got %d, want 2", got)
	}
	f2 := curry.Uncurry2(curry.Curry2(add2))
	if got := f2(1, 2); got != 3 {
		t.Fatalf("Uncurry2: got %d, want 3", got)
	}
	f3 := curry.Uncurry3(curry.Curry3(func(a, b, c string) string { return a + b + c }))
	if got := f3("a", "b", "c"); got != "abc" {
		t.Fatalf("Uncurry3: got %q, want %q", got, "abc")
	}
	f4 := curry.Uncurry4(curry.Curry4(add4))
	if got := f4(1, 2, 3, 4); got != 10 {
		t.Fatalf("Uncurry4: got %d, want 10", got)
	}
}

func TestUncurryReturnsHeldFunction(t *testing.T) {
	f := curry.Uncurry1(curry.Curry1(inc))
	if reflect.ValueOf(f).Pointer() != reflect.ValueOf(inc).Pointer() {
		t.Fatal("Uncurry1 must return the held function")
	}
}

func TestUncurryPartialApplication(t *testing.T) {
	// Uncurrying a partial application yields a function of the remaining arguments.
	f := curry.Uncurry3(curry.Curry4(add4)(100))
	if got := f(1, 2, 3); got != 106 {
		t.Fatalf("got %d, want 106", got)
	}
}
