// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp

// Bind sequences two monadic computations (monadic bind). It is a thin
// direct exposure of FlatMap over the generic contract, independent of the
// comprehension translator, with identical short-circuit semantics: an
// empty m returns without invoking f.
//
// Both type parameters are inferred from the arguments:
//
//	Bind(Some(5), func(x int) Option[int] { return Some(x * 2) })
func Bind[T any, M Monad[M, T]](m M, f func(T) M) M {
	return m.FlatMap(f)
}

// Then sequences two monadic computations, discarding the first payload.
// Equivalent to Bind(m, func(_ T) M { return n }) — the common
// discard-and-replace usage where the function ignores its argument.
// An empty m short-circuits and n is never reached.
//
// T is not deducible from the arguments, so Then takes it explicitly:
//
//	Then[int](Some(1), Some(2))
func Then[T any, M Monad[M, T]](m M, n M) M {
	return m.FlatMap(func(_ T) M { return n })
}
