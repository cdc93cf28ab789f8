package slotkit

import (
	"fmt"

	"github.com/calvinalkan/slotkit/pkg/slotkit/internal/invariants"
)

// Violation is the panic value raised by checked extraction and by
// [Unreachable]. Recovered values can be matched with errors.As.
type Violation = invariants.Violation

// ChecksEnabled reports whether trusted extraction verifies its precondition
// in this binary. It is false only for builds using the slotkit_unchecked tag
// without -race.
func ChecksEnabled() bool {
	return invariants.Enabled
}

// UnwrapOption returns v, trusting the caller that ok is true.
//
// With checks enabled a false ok panics with a [*Violation]. Otherwise the
// check is compiled out and the result for a false ok is undefined.
func UnwrapOption[T any](v T, ok bool) T {
	if invariants.Enabled && !ok {
		panic(invariants.Newf("UnwrapOption", nil, "called on an absent %s", typeName[T]()))
	}

	return v
}

// UnwrapResult returns v, trusting the caller that err is nil.
//
// With checks enabled a non-nil err panics with a [*Violation] wrapping err.
// Otherwise the check is compiled out and the result for a non-nil err is
// undefined.
func UnwrapResult[T any](v T, err error) T {
	if invariants.Enabled && err != nil {
		panic(invariants.Newf("UnwrapResult", err, "called on a failed %s result: %+v", typeName[T](), err))
	}

	return v
}

// typeName names T without needing a value of it; a nil interface T would
// otherwise format as <nil>.
func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
