package fs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// Real implements [FS] using the real filesystem.
//
// [Real.ReadFile] and [Real.MkdirAll] are passthroughs to the [os] package.
// [Real.Exists] wraps [os.Stat] and [Real.WriteFileAtomic] uses atomic file
// writes.
type Real struct{}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{}
}

// A passthrough wrapper for [os.ReadFile].
func (r *Real) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAtomic writes data to path via a temp file and rename. Readers
// never observe a partially written file.
//
// The replacement inherits the mode of an existing file, so perm is applied
// to the existing file first and the swap carries it over. A newly created
// file is chmodded after the rename; until then it has the temp file's 0600,
// which is never broader than the modes slotver writes with.
func (r *Real) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	existed, err := r.Exists(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if existed {
		err = os.Chmod(path, perm)
		if err != nil {
			return fmt.Errorf("chmod %s: %w", path, err)
		}
	}

	err = atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return err
	}

	if existed {
		return nil
	}

	err = os.Chmod(path, perm)
	if err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	return nil
}

// A passthrough wrapper for [os.MkdirAll].
func (r *Real) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Exists checks if a file exists using [os.Stat].
// Returns (true, nil) if the file exists, (false, nil) if it does not,
// or (false, err) for other errors.
func (r *Real) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}
