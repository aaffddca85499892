// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp

import (
	"errors"
	"fmt"
)

// Structural errors. A malformed clause sequence fails validation before
// any monad operation is invoked; the returned error wraps one of these
// sentinels together with the position of the offending clause.
var (
	// ErrEmpty reports an empty clause sequence.
	ErrEmpty = errors.New("komp: empty clause sequence")

	// ErrNoYield reports a sequence whose final clause is not a yield.
	ErrNoYield = errors.New("komp: clause sequence has no terminal yield")

	// ErrMisplacedYield reports a yield before the final clause, which
	// also covers sequences with more than one yield.
	ErrMisplacedYield = errors.New("komp: yield must be the final clause")

	// ErrNoBind reports a sequence containing no bind clause.
	ErrNoBind = errors.New("komp: comprehension needs at least one bind")

	// ErrBlankName reports a bind clause with an empty name.
	ErrBlankName = errors.New("komp: bind clause has a blank name")

	// ErrGuardScope reports a guard clause declaring no used names. A
	// guard must reference at least one previously bound name, so a guard
	// preceding the first bind can never be valid.
	ErrGuardScope = errors.New("komp: guard references no bound names")

	// ErrUnboundName reports a clause using a name no earlier bind
	// introduced.
	ErrUnboundName = errors.New("komp: reference to unbound name")
)

// For translates an ordered clause sequence into the equivalent nested
// Filter/FlatMap/Map pipeline over the [Value] contract and evaluates it.
//
// The fold walks the sequence front to back: the first bind's source is
// evaluated, guards directly following a bind become Filter calls on that
// source with the predicate seeing the newly bound name, a following bind
// becomes a FlatMap whose continuation closes over the grown scope, and
// the terminal yield becomes the final Map. Evaluation order is strictly
// the clause order, mirroring nested loops; as soon as any Filter or
// FlatMap yields the empty instance, no later clause executes for that
// branch and the empty instance propagates unchanged to the result.
//
// A malformed sequence fails with a structural error before any monad
// operation runs; see [Validate]. Failures raised by caller-supplied
// predicate or projection functions propagate unmodified.
func For(clauses ...Clause) (Value, error) {
	if err := Validate(clauses); err != nil {
		return nil, err
	}
	return eval(clauses, nil), nil
}

// Validate checks the structural invariants of a clause sequence: it is
// non-empty, ends with its only yield, contains at least one bind, binds
// carry non-blank names, guards declare at least one used name, and every
// declared use refers to a name some earlier bind introduced. Validate
// never invokes clause closures.
func Validate(clauses []Clause) error {
	if len(clauses) == 0 {
		return ErrEmpty
	}
	last := len(clauses) - 1
	bound := make(map[string]bool, len(clauses))
	sawBind := false
	for i, c := range clauses {
		switch c := c.(type) {
		case BindClause:
			if c.Name == "" {
				return fmt.Errorf("%w: clause %d", ErrBlankName, i)
			}
			if err := checkUses(bound, c.Uses, i); err != nil {
				return err
			}
			bound[c.Name] = true
			sawBind = true
		case GuardClause:
			if len(c.Uses) == 0 {
				return fmt.Errorf("%w: clause %d", ErrGuardScope, i)
			}
			if err := checkUses(bound, c.Uses, i); err != nil {
				return err
			}
		case YieldClause:
			if i != last {
				return fmt.Errorf("%w: yield at clause %d of %d", ErrMisplacedYield, i, len(clauses))
			}
			if err := checkUses(bound, c.Uses, i); err != nil {
				return err
			}
		}
	}
	if _, ok := clauses[last].(YieldClause); !ok {
		return fmt.Errorf("%w: final clause %d is %T", ErrNoYield, last, clauses[last])
	}
	if !sawBind {
		return ErrNoBind
	}
	return nil
}

func checkUses(bound map[string]bool, uses []string, i int) error {
	for _, name := range uses {
		if !bound[name] {
			return fmt.Errorf("%w: %q at clause %d", ErrUnboundName, name, i)
		}
	}
	return nil
}

// eval folds a validated clause tail into nested erased operations.
// clauses[0] is a bind: validation rejects leading guards and non-final
// yields, and the FlatMap recursion below only ever passes a tail whose
// head broke the guard loop.
func eval(clauses []Clause, scope *Scope) Value {
	b := clauses[0].(BindClause)
	src := b.Source(scope)

	// Guards between this bind and the next clause of another kind filter
	// this bind's source; each predicate sees the scope extended with the
	// value under test.
	i := 1
	for ; i < len(clauses); i++ {
		g, ok := clauses[i].(GuardClause)
		if !ok {
			break
		}
		src = src.FilterErased(func(v Erased) bool {
			return g.Pred(scope.With(b.Name, v))
		})
	}

	if y, ok := clauses[i].(YieldClause); ok {
		return src.MapErased(func(v Erased) Erased {
			return y.Expr(scope.With(b.Name, v))
		})
	}

	rest := clauses[i:]
	return src.FlatMapErased(func(v Erased) Value {
		return eval(rest, scope.With(b.Name, v))
	})
}
