// Package fs provides the small filesystem surface slotver needs.
//
// The main types are:
//   - [FS]: interface for the operations used by config loading, shell
//     history and verify reports
//   - [Real]: production implementation using the [os] package
//
// Example usage:
//
//	fs := fs.NewReal()
//	data, err := fs.ReadFile(".slotver.json")
//	if err != nil {
//	    return err
//	}
package fs

import "os"

// FS defines filesystem operations for reading and atomically writing files.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically.
	// Uses a temp file + rename to prevent partial writes on crash.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	// No error if the directory already exists.
	MkdirAll(path string, perm os.FileMode) error

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)
}

// Compile-time interface check.
var _ FS = (*Real)(nil)
