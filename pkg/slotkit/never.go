package slotkit

import "github.com/calvinalkan/slotkit/pkg/slotkit/internal/invariants"

// Never is an error type whose only meaningful value is the nil interface.
//
// Callers must not implement Never or embed it in their own types; the only
// value code should ever observe is nil. [Unreachable] is the one sanctioned
// way to produce a Never, and it never returns. Never lets generic code that
// is parameterized over an error type be instantiated at call sites that
// cannot fail.
type Never interface {
	error
	never()
}

// Unreachable converts err into [Never]. It is the only way to obtain a
// Never from a [SlotMapError], and it never returns.
//
// Use it only where the error is statically impossible. Reaching it means an
// upstream invariant is broken, so it panics with a [*Violation] wrapping err.
func Unreachable(err SlotMapError) Never {
	panic(invariants.Newf("Unreachable", err, "impossible error reached: %v", err))
}
