// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp

// Erased represents a type-erased payload in the comprehension pipeline.
// A comprehension binds values of heterogeneous types, so the translator
// processes them through a homogeneous pipeline of Erased values.
// Concrete types are recovered via type assertions at the pipeline
// boundaries ([At] inside clause closures, [AsOption] on the result).
type Erased = any

// Value is the type-erased monad interface the comprehension translator
// binds against. The translator never inspects concrete monad internals;
// it only emits these three operations, so the translation is correct for
// any conforming monad.
//
// Each concrete monad implements Value next to the typed [Monad] contract.
// The erased operations carry the same semantics as their typed
// counterparts, including short-circuit: an empty instance returns its
// erased empty form without invoking the supplied function.
type Value interface {
	// MapErased applies f to the success payload, preserving emptiness.
	MapErased(f func(Erased) Erased) Value

	// FlatMapErased applies f to the success payload and flattens one
	// level of nesting. Empty instances short-circuit.
	FlatMapErased(f func(Erased) Value) Value

	// FilterErased keeps a success payload that satisfies p and demotes
	// one that does not to the empty instance. Empty instances pass
	// through without evaluating p.
	FilterErased(p func(Erased) bool) Value
}
