// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp

// The monad contract for filterable monads.
//
// Minimal definition: a unit constructor and FlatMap are necessary and
// sufficient. Map and Filter are kept in the contract because the
// comprehension translator emits them directly, avoiding the intermediate
// closure a derivation through FlatMap would allocate:
//
//	m.Map(f)    ≡ m.FlatMap(func(x T) M { return unit(f(x)) })
//	m.Filter(p) ≡ m.FlatMap(func(x T) M { if p(x) { return unit(x) }; return empty })
//
// where empty is the monad's failure-channel instance.

// Monad is the F-bounded contract every comprehension-capable monad
// implements. The constraint form M Monad[M, T] lets each operation return
// the concrete monad type, so chained calls stay fully typed and the
// compiler enforces conformance at instantiation time.
//
// Go interfaces have no static methods, so unit is not part of the
// contract: each concrete monad provides a package-level constructor
// ([Pure] for Option). Element-type-changing variants of Map and FlatMap
// are likewise package-level generic functions per concrete monad
// ([MapOption], [FlatMapOption]).
//
// Conforming implementations must satisfy, for all values v, functions f,
// and predicates p:
//
//	left identity:   unit(v).FlatMap(f) ≡ f(v)
//	right identity:  m.FlatMap(unit) ≡ m
//	associativity:   m.FlatMap(f).FlatMap(g) ≡ m.FlatMap(func(x) { return f(x).FlatMap(g) })
//	functor:         unit(v).Map(f) ≡ unit(f(v))
//
// A failure-channel instance must propagate through every operation
// without invoking the supplied function: empty.Map(f), empty.FlatMap(f),
// and empty.Filter(p) all return an equivalent empty instance with f and p
// never called. Filter on a success instance whose payload fails p returns
// the empty instance in the same failure channel, never a panic.
type Monad[M Monad[M, T], T any] interface {
	// Map applies f to the success payload, preserving emptiness unchanged.
	Map(f func(T) T) M

	// FlatMap applies f to the success payload and flattens one level of
	// nesting. Empty instances short-circuit: f is not invoked.
	FlatMap(f func(T) M) M

	// Filter keeps a success payload that satisfies p, and demotes one
	// that does not to the monad's empty instance. Empty instances pass
	// through without evaluating p.
	Filter(p func(T) bool) M
}
