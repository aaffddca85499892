// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/komp"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// --- Group 1: Option Monad Laws ---

// TestPropertyOptionLeftIdentity: FlatMapOption(Pure(a), f) ≡ f(a)
func TestPropertyOptionLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) komp.Option[int] { return komp.Some(x * 3) }
	for range propertyN {
		a := randInt(rng)
		left := komp.FlatMapOption(komp.Pure(a), f)
		right := f(a)
		if left != right {
			t.Fatalf("left identity: %v != %v (a=%d)", left, right, a)
		}
	}
}

// TestPropertyOptionRightIdentity: m.FlatMap(Pure) ≡ m
func TestPropertyOptionRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := komp.Some(a)
		if left := m.FlatMap(komp.Pure[int]); left != m {
			t.Fatalf("right identity: %v != %v (a=%d)", left, m, a)
		}
	}
	n := komp.None[int]()
	if left := n.FlatMap(komp.Pure[int]); left != n {
		t.Fatalf("right identity on empty: %v != %v", left, n)
	}
}

// TestPropertyOptionAssociativity: m.FlatMap(f).FlatMap(g) ≡ m.FlatMap(x => f(x).FlatMap(g))
func TestPropertyOptionAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) komp.Option[int] { return komp.Some(x + 3) }
	g := func(x int) komp.Option[int] { return komp.Some(x * 2) }
	for range propertyN {
		a := randInt(rng)
		m := komp.Some(a)
		left := m.FlatMap(f).FlatMap(g)
		right := m.FlatMap(func(x int) komp.Option[int] { return f(x).FlatMap(g) })
		if left != right {
			t.Fatalf("associativity: %v != %v (a=%d)", left, right, a)
		}
	}
}

// --- Group 2: Option Functor Laws ---

// TestPropertyOptionFunctor: Pure(a).Map(f) ≡ Pure(f(a))
func TestPropertyOptionFunctor(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x*2 + 1 }
	for range propertyN {
		a := randInt(rng)
		left := komp.Pure(a).Map(f)
		right := komp.Pure(f(a))
		if left != right {
			t.Fatalf("functor: %v != %v (a=%d)", left, right, a)
		}
	}
}

// TestPropertyOptionFunctorComposition: m.Map(f∘g) ≡ m.Map(g).Map(f)
func TestPropertyOptionFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x * 2 }
	g := func(x int) int { return x + 3 }
	fg := func(x int) int { return f(g(x)) }
	for range propertyN {
		a := randInt(rng)
		m := komp.Some(a)
		left := m.Map(fg)
		right := m.Map(g).Map(f)
		if left != right {
			t.Fatalf("functor composition: %v != %v (a=%d)", left, right, a)
		}
	}
}

// TestPropertyOptionMapViaFlatMap: m.Map(f) ≡ m.FlatMap(x => Pure(f(x)))
func TestPropertyOptionMapViaFlatMap(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x - 7 }
	for range propertyN {
		a := randInt(rng)
		m := komp.Some(a)
		left := m.Map(f)
		right := m.FlatMap(func(x int) komp.Option[int] { return komp.Pure(f(x)) })
		if left != right {
			t.Fatalf("map via flatMap: %v != %v (a=%d)", left, right, a)
		}
	}
}

// --- Group 3: Filter Laws ---

// TestPropertyOptionFilter: Some(a).Filter(p) keeps iff p(a); None passes through
func TestPropertyOptionFilter(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		even := func(x int) bool { return x%2 == 0 }
		got := komp.Some(a).Filter(even)
		if even(a) {
			if got != komp.Some(a) {
				t.Fatalf("filter kept: %v, want Some(%d)", got, a)
			}
		} else if got != komp.None[int]() {
			t.Fatalf("filter dropped: %v, want Nothing (a=%d)", got, a)
		}
	}
}

// TestPropertyOptionFilterViaFlatMap: m.Filter(p) ≡ m.FlatMap(x => p(x) ? Pure(x) : None)
func TestPropertyOptionFilterViaFlatMap(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	p := func(x int) bool { return x > 0 }
	for range propertyN {
		a := randInt(rng)
		m := komp.Some(a)
		left := m.Filter(p)
		right := m.FlatMap(func(x int) komp.Option[int] {
			if p(x) {
				return komp.Pure(x)
			}
			return komp.None[int]()
		})
		if left != right {
			t.Fatalf("filter via flatMap: %v != %v (a=%d)", left, right, a)
		}
	}
}

// --- Group 4: Comprehension / Manual Equivalence ---

// TestPropertyForMatchesManual: the translated two-bind pipeline equals the
// hand-nested Filter/FlatMap/Map composition for random payloads and guards.
func TestPropertyForMatchesManual(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		b := randInt(rng)
		limit := randInt(rng)

		v, err := komp.For(
			komp.BindClause{Name: "x", Source: komp.Const(komp.Some(a))},
			komp.GuardClause{Uses: []string{"x"}, Pred: func(s *komp.Scope) bool {
				return komp.At[int](s, "x") < limit
			}},
			komp.BindClause{Name: "y", Source: komp.Const(komp.Some(b))},
			komp.GuardClause{Uses: []string{"y"}, Pred: func(s *komp.Scope) bool {
				return komp.At[int](s, "y")%2 != 0
			}},
			komp.YieldClause{Uses: []string{"x", "y"}, Expr: func(s *komp.Scope) komp.Erased {
				return komp.At[int](s, "x") + komp.At[int](s, "y")
			}},
		)
		if err != nil {
			t.Fatalf("translation failed: %v", err)
		}
		got, ok := komp.AsOption[int](v)
		if !ok {
			t.Fatalf("result is not an Option[int]: %v", v)
		}

		want := komp.FlatMapOption(
			komp.Some(a).Filter(func(x int) bool { return x < limit }),
			func(x int) komp.Option[int] {
				return komp.MapOption(
					komp.Some(b).Filter(func(y int) bool { return y%2 != 0 }),
					func(y int) int { return x + y },
				)
			},
		)
		if got != want {
			t.Fatalf("comprehension %v != manual %v (a=%d b=%d limit=%d)", got, want, a, b, limit)
		}
	}
}
