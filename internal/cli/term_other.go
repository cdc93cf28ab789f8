//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package cli

import "io"

// isTerminal always reports false; the shell falls back to line mode.
func isTerminal(io.Reader) bool {
	return false
}
