// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp_test

import (
	"testing"

	"code.hybscloud.com/komp"
)

func TestBind(t *testing.T) {
	got := komp.Bind(komp.Some(5), func(x int) komp.Option[int] {
		return komp.Some(x * 2)
	})
	if got != komp.Some(10) {
		t.Fatalf("got %v, want Some(10)", got)
	}
}

func TestBindToEmpty(t *testing.T) {
	got := komp.Bind(komp.Some(5), func(_ int) komp.Option[int] {
		return komp.None[int]()
	})
	if got != komp.None[int]() {
		t.Fatalf("got %v, want Nothing", got)
	}
}

func TestBindShortCircuits(t *testing.T) {
	calls := 0
	got := komp.Bind(komp.None[int](), func(x int) komp.Option[int] {
		calls++
		return komp.Some(x * 2)
	})
	if got != komp.None[int]() {
		t.Fatalf("got %v, want Nothing", got)
	}
	if calls != 0 {
		t.Fatalf("f invoked %d times, want 0", calls)
	}
}

func TestBindMatchesFlatMap(t *testing.T) {
	f := func(x int) komp.Option[int] { return komp.Some(x + 1) }
	for _, m := range []komp.Option[int]{komp.Some(41), komp.None[int]()} {
		if komp.Bind(m, f) != m.FlatMap(f) {
			t.Fatalf("Bind(%v, f) != %v.FlatMap(f)", m, m)
		}
	}
}

func TestThen(t *testing.T) {
	got := komp.Then[int](komp.Some(1), komp.Some(2))
	if got != komp.Some(2) {
		t.Fatalf("got %v, want Some(2)", got)
	}
}

func TestThenShortCircuits(t *testing.T) {
	got := komp.Then[int](komp.None[int](), komp.Some(2))
	if got != komp.None[int]() {
		t.Fatalf("got %v, want Nothing", got)
	}
}
