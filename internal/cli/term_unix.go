//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package cli

import (
	"io"

	"golang.org/x/sys/unix"
)

// isTerminal reports whether r is a file descriptor attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	_, err := unix.IoctlGetTermios(int(f.Fd()), ioctlReadTermios)

	return err == nil
}
