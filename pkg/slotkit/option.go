package slotkit

import (
	"fmt"

	"github.com/calvinalkan/slotkit/pkg/slotkit/internal/invariants"
)

// Option holds either a value or nothing. The zero value is None.
//
// Option is meant for slot payloads: a vacant slot keeps None and an occupied
// one Some. Callers that already know a slot is occupied use
// [Option.UnwrapUnchecked].
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether there was one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Unwrap returns the held value. It panics with a [*Violation] if o is None,
// regardless of build mode.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(invariants.Newf("Option.Unwrap", nil, "called on None[%s]", typeName[T]()))
	}

	return o.value
}

// UnwrapUnchecked returns the held value, trusting the caller that o is Some.
// See [UnwrapOption] for the build-mode dependent behavior.
func (o Option[T]) UnwrapUnchecked() T {
	return UnwrapOption(o.value, o.ok)
}

// UnwrapOr returns the held value, or fallback if o is None.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.ok {
		return fallback
	}

	return o.value
}

// Take returns the held value and leaves o empty.
func (o *Option[T]) Take() Option[T] {
	taken := *o
	*o = Option[T]{}

	return taken
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
