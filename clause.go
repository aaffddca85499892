// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp

import "fmt"

// Defunctionalized comprehension clauses.
//
// A comprehension is an ordered sequence of clauses: zero or more binds
// and guards followed by exactly one terminal yield. Instead of closures
// nested by hand, each clause is a tagged structure carrying the data the
// translator needs; [For] folds the sequence into the equivalent nested
// Filter/FlatMap/Map pipeline. Dispatch uses type switches, not tags —
// Clause is a pure marker interface.

// Clause is the interface for comprehension clauses.
type Clause interface {
	clause() // unexported marker method
}

// BindClause introduces Name into the evaluation scope, bound to the
// payload drawn from the monad Source produces.
type BindClause struct {
	// Name is the identifier the bound payload becomes visible under.
	Name string

	// Uses declares the previously bound names Source reads. Go closures
	// are opaque, so the declaration is what makes scoping checkable
	// before evaluation; leave it empty for sources that ignore the scope.
	Uses []string

	// Source produces the monadic value to draw payloads from. It may
	// read any name bound by an earlier clause.
	Source func(*Scope) Value
}

func (BindClause) clause() {}

// GuardClause filters the current scope: evaluation of everything nested
// after it is suppressed when Pred is false.
type GuardClause struct {
	// Uses declares the bound names Pred reads. A guard must declare at
	// least one — a guard that reads nothing has no scope to filter.
	Uses []string

	// Pred is the predicate over the current scope.
	Pred func(*Scope) bool
}

func (GuardClause) clause() {}

// YieldClause is the terminal projection. It appears exactly once, as the
// final clause.
type YieldClause struct {
	// Uses declares the bound names Expr reads.
	Uses []string

	// Expr computes the comprehension result from the final scope.
	Expr func(*Scope) Erased
}

func (YieldClause) clause() {}

// Const lifts an already-evaluated monad into a scope-ignoring source.
func Const(v Value) func(*Scope) Value {
	return func(*Scope) Value { return v }
}

// --- Scope -----------------------------------------------------------------

// Scope is the set of names bound by preceding clauses, visible to later
// clauses. It is an immutable chain: With extends without mutating, so a
// continuation closing over a scope is unaffected by extensions made on
// other branches. The nil *Scope is the valid empty scope.
type Scope struct {
	name   string
	value  Erased
	parent *Scope
}

// With returns a scope extending s with name bound to v. s is unchanged.
func (s *Scope) With(name string, v Erased) *Scope {
	return &Scope{name: name, value: v, parent: s}
}

// Lookup returns the value bound to name and true, or nil and false.
// When a later bind shadows an earlier name, the innermost binding wins.
func (s *Scope) Lookup(name string) (Erased, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return nil, false
}

// At returns the value bound to name, asserted to type T. Reading a name
// no earlier bind introduced, or asserting the wrong type, is a caller
// programming error and panics; [Validate] guarantees declared uses are
// bound before evaluation starts.
func At[T any](s *Scope, name string) T {
	v, ok := s.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("komp: unbound name %q in scope", name))
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("komp: name %q holds %T, not the requested type", name, v))
	}
	return t
}
