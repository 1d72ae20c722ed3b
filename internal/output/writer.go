// Package output persists rendered text.
package output

import (
	"fmt"
	"os"
)

// WriteError reports that the destination file could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write stores text in the file at path, creating or truncating it.
//
// The file is closed on every path; a failing Close is reported like a failing
// write since buffered data may not have reached the disk.
func Write(path, text string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
