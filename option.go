// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package komp

import "fmt"

// Option represents an optional value: either Some (a value is present)
// or None (no value). It is the reference implementation of the [Monad]
// contract, with None as the failure-channel instance.
//
// Option values are immutable once constructed. Option[T] is comparable
// whenever T is, so two options can be compared with ==.
type Option[T any] struct {
	value   T
	defined bool
}

var (
	_ Monad[Option[int], int] = Option[int]{}
	_ Value                   = Option[int]{}
)

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, defined: true}
}

// None creates the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Pure lifts a value into the Option monad (unit). Unlike [Of], Pure
// never inspects its argument: Pure of a nil pointer is Some(nil).
func Pure[T any](v T) Option[T] {
	return Some(v)
}

// Of converts a nullable value into an Option. A nil pointer is the one
// recognized absence sentinel and produces None; every non-nil pointer
// produces Some of the pointed-to value, including pointers to zero
// values such as 0 or "". The comparison is an explicit nil check, never
// truthiness.
func Of[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

// IsDefined returns true if this is a Some value.
func (o Option[T]) IsDefined() bool {
	return o.defined
}

// IsEmpty returns true if this is the None value.
func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the payload and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.defined {
		return o.value, true
	}
	var zero T
	return zero, false
}

// GetOrElse returns the payload if defined, def otherwise.
func (o Option[T]) GetOrElse(def T) T {
	if o.defined {
		return o.value
	}
	return def
}

// OrElse returns this Option if defined, alt otherwise.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.defined {
		return o
	}
	return alt
}

// ForAll reports whether the payload satisfies p. None vacuously satisfies
// every predicate.
func (o Option[T]) ForAll(p func(T) bool) bool {
	if o.defined {
		return p(o.value)
	}
	return true
}

// ToSlice converts the Option into a slice of zero or one element.
func (o Option[T]) ToSlice() []T {
	if o.defined {
		return []T{o.value}
	}
	return nil
}

// Map applies f to the payload. None passes through, f not invoked.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.defined {
		return Some(f(o.value))
	}
	return o
}

// FlatMap applies f to the payload and returns its result directly.
// None passes through, f not invoked.
func (o Option[T]) FlatMap(f func(T) Option[T]) Option[T] {
	if o.defined {
		return f(o.value)
	}
	return o
}

// Filter returns this Option if the payload satisfies p, None otherwise.
// None passes through, p not invoked.
func (o Option[T]) Filter(p func(T) bool) Option[T] {
	if !o.defined || p(o.value) {
		return o
	}
	return None[T]()
}

// String renders Some payload-inclusive and None as the fixed token
// "Nothing", so the two variants are distinguishable by string comparison.
func (o Option[T]) String() string {
	if o.defined {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "Nothing"
}

// --- Erased operations -----------------------------------------------------

// The erased operations normalize every result into Option[Erased], so a
// comprehension pipeline stays in one concrete instantiation regardless of
// the payload types flowing through it. [AsOption] recovers the typed form.

// MapErased implements [Value].
func (o Option[T]) MapErased(f func(Erased) Erased) Value {
	if o.defined {
		return Some[Erased](f(o.value))
	}
	return None[Erased]()
}

// FlatMapErased implements [Value].
func (o Option[T]) FlatMapErased(f func(Erased) Value) Value {
	if o.defined {
		return f(o.value)
	}
	return None[Erased]()
}

// FilterErased implements [Value].
func (o Option[T]) FilterErased(p func(Erased) bool) Value {
	if o.defined && p(o.value) {
		return Some[Erased](o.value)
	}
	return None[Erased]()
}

// AsOption recovers a typed Option from an erased pipeline result.
// It accepts both the already-typed Option[T] and the erased Option[Erased]
// forms. The second return is false when v is not an Option at all, or
// holds a payload that is not a T.
func AsOption[T any](v Value) (Option[T], bool) {
	switch o := v.(type) {
	case Option[T]:
		return o, true
	case Option[Erased]:
		if !o.defined {
			return None[T](), true
		}
		if t, ok := o.value.(T); ok {
			return Some(t), true
		}
	}
	return None[T](), false
}

// --- Cross-type operations -------------------------------------------------

// MapOption applies a type-changing function to the payload.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.defined {
		return Some(f(o.value))
	}
	return None[U]()
}

// FlatMapOption sequences two Option computations across element types.
func FlatMapOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.defined {
		return f(o.value)
	}
	return None[U]()
}

// ThenOption sequences two Options, discarding the first payload.
// Equivalent to FlatMapOption(o, func(T) Option[U] { return n }) without
// the closure capture.
func ThenOption[T, U any](o Option[T], n Option[U]) Option[U] {
	if o.defined {
		return n
	}
	return None[U]()
}

// FoldOption eliminates an Option: onSome of the payload for Some,
// onNone for None.
func FoldOption[T, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.defined {
		return onSome(o.value)
	}
	return onNone()
}
