// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp

import "slices"

// Builder accumulates a clause sequence for [For]. It is the construction
// surface intended for external front ends (parsers, code generators)
// that lower some comprehension syntax into clauses; the translator only
// requires that the finished sequence satisfy the structural invariants,
// regardless of how it was built.
//
// Builder methods append without checking: all validation happens in
// [Validate], so a sequence assembled by hand gets identical treatment.
type Builder struct {
	clauses []Clause
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Bind appends a bind clause introducing name from source. uses declares
// the earlier-bound names source reads.
func (b *Builder) Bind(name string, source func(*Scope) Value, uses ...string) *Builder {
	b.clauses = append(b.clauses, BindClause{Name: name, Uses: uses, Source: source})
	return b
}

// Guard appends a guard clause with pred over the names in uses.
func (b *Builder) Guard(pred func(*Scope) bool, uses ...string) *Builder {
	b.clauses = append(b.clauses, GuardClause{Uses: uses, Pred: pred})
	return b
}

// Yield appends the terminal projection clause.
func (b *Builder) Yield(expr func(*Scope) Erased, uses ...string) *Builder {
	b.clauses = append(b.clauses, YieldClause{Uses: uses, Expr: expr})
	return b
}

// Clauses returns a copy of the accumulated sequence.
func (b *Builder) Clauses() []Clause {
	return slices.Clone(b.clauses)
}

// Run validates and evaluates the accumulated sequence.
func (b *Builder) Run() (Value, error) {
	return For(b.clauses...)
}
