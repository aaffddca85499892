// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package komp provides monad comprehensions in Go: chained,
// short-circuiting computations written as a linear clause sequence
// instead of hand-nested combinator calls.
//
// A comprehension is an ordered list of clauses — "bind this name to a
// value drawn from a monadic source", "keep going only if this predicate
// holds", and a final "yield this result expression". [For] folds such a
// sequence into the equivalent nested Filter/FlatMap/Map pipeline and
// evaluates it, with exact short-circuit semantics: the first empty
// intermediate value suppresses everything nested inside it.
//
// # Design Philosophy
//
// komp provides:
//   - A minimal but complete generic contract for filterable monads
//   - A translator written purely against that contract, correct for any
//     conforming monad without inspecting its internals
//   - One reference monad, [Option], with Some and None variants
//
// # F-Bounded Contract
//
// The [Monad] interface uses F-bounded polymorphism (type M Monad[M, T])
// so every operation returns the concrete monad type and conformance is
// enforced at compile time instead of through runtime attribute lookup.
// unit is a package-level constructor per concrete monad ([Pure]), since
// Go interfaces carry no static methods; element-type-changing map and
// flatMap are package-level generic functions ([MapOption],
// [FlatMapOption]).
//
// # Type Erasure
//
// A comprehension binds heterogeneously typed names, which Go's generics
// cannot express in one typed pipeline. Following the package's
// defunctionalized design, the translator works against the type-erased
// [Value] interface with [Erased] payloads; concrete types are recovered
// via type assertions at the pipeline boundaries ([At] inside clause
// closures, [AsOption] on the result).
//
// # Clause Model
//
// Clauses are defunctionalized structures implementing the [Clause]
// marker interface:
//
//   - [BindClause]: introduces a name bound to payloads drawn from a source
//   - [GuardClause]: filters the current scope with a predicate
//   - [YieldClause]: the terminal projection, exactly once and last
//
// [Scope] is an immutable chain of bindings grown as binds are processed;
// later clauses read earlier names with [At]. Because Go closures are
// opaque, each clause declares the names it uses, and [Validate] checks
// the declarations against the preceding binds before any monad operation
// runs. A malformed sequence — no yield, a misplaced yield, a guard with
// nothing in scope, an unbound name — fails with a structural error
// wrapping one of the package's sentinel errors.
//
// # Option
//
// [Option] is the reference implementation of the contract: Some carries
// a payload, None is the failure channel. [Of] normalizes a nullable
// input, recognizing the nil pointer as the single absence sentinel —
// pointers to zero values such as 0 or "" still produce Some. None
// renders as the fixed token "Nothing"; Some renders payload-inclusive.
// Absence is data, not an error: it propagates through pipelines by
// short-circuiting, and is inspected like any other result.
//
// # Sequencing
//
// [Bind] exposes FlatMap as a standalone two-operand sequencing primitive
// over the generic contract; [Then] is its discard-and-replace variant.
// Both short-circuit identically to the translator's pipelines.
//
// # Example
//
//	v, err := komp.For(
//		komp.BindClause{Name: "x", Source: komp.Const(komp.Some(2))},
//		komp.GuardClause{Uses: []string{"x"}, Pred: func(s *komp.Scope) bool {
//			return komp.At[int](s, "x") < 10
//		}},
//		komp.BindClause{Name: "y", Source: komp.Const(komp.Some(5))},
//		komp.GuardClause{Uses: []string{"y"}, Pred: func(s *komp.Scope) bool {
//			return komp.At[int](s, "y")%2 != 0
//		}},
//		komp.YieldClause{Uses: []string{"x", "y"}, Expr: func(s *komp.Scope) komp.Erased {
//			return komp.At[int](s, "x") + komp.At[int](s, "y")
//		}},
//	)
//	// err == nil
//	opt, _ := komp.AsOption[int](v)
//	// opt == Some(7)
package komp
