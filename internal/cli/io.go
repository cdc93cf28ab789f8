package cli

import (
	"fmt"
	"io"
)

// IO routes command output to stdout and stderr and collects warnings.
//
// A warning flags a problem that did not stop the command. Warnings are
// written to stderr before the first stdout line and again by Finish, so they
// survive piping through head or tail. Any warning makes the exit code 1.
type IO struct {
	out    io.Writer
	errOut io.Writer

	warnings []warning
	// leadingDone is set once warnings have been written ahead of stdout.
	leadingDone bool
}

type warning struct {
	issue  string
	action string
}

func (w warning) String() string {
	return "warning: " + w.issue + ": " + w.action
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Warn records what went wrong (issue) and what the user should do about it
// (action). Output continues normally.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, warning{issue: issue, action: action})
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	o.writeLeadingWarnings()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	o.writeLeadingWarnings()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish writes the trailing warnings and returns the exit code.
func (o *IO) Finish() int {
	if len(o.warnings) == 0 {
		return 0
	}

	o.writeWarnings()

	return 1
}

func (o *IO) writeLeadingWarnings() {
	if o.leadingDone || len(o.warnings) == 0 {
		return
	}

	o.leadingDone = true
	o.writeWarnings()
}

func (o *IO) writeWarnings() {
	for _, w := range o.warnings {
		o.ErrPrintln(w)
	}
}
