// Package invariants selects between checked and unchecked precondition
// handling at build time and defines the panic value raised when a
// caller-asserted precondition turns out to be false.
package invariants

import "fmt"

// Violation is the panic value for a broken caller-asserted precondition or
// a statically impossible path that was reached at runtime.
//
// It implements error so recovered values can be inspected with errors.Is
// and errors.As. Err holds the offending error, if the violation carried one.
type Violation struct {
	Op  string
	Msg string
	Err error
}

// Newf returns a Violation for op. cause may be nil.
func Newf(op string, cause error, format string, args ...any) *Violation {
	return &Violation{
		Op:  op,
		Msg: fmt.Sprintf(format, args...),
		Err: cause,
	}
}

func (v *Violation) Error() string {
	return "slotkit: " + v.Op + ": " + v.Msg
}

func (v *Violation) Unwrap() error { return v.Err }
