package cli

import "fmt"

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitUsage is used for bad arguments, like the standard flag package does.
	ExitUsage = 2
	// ExitIOError is used when the image cannot be loaded or the output cannot be written.
	ExitIOError = 2
)

// UsageError reports invalid command line arguments.
type UsageError struct {
	Err error
}

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// RunError reports a failure that happened after the arguments were accepted
// and is neither an image load nor an output write failure.
type RunError struct {
	Err error
}

func (e *RunError) Error() string {
	return e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}
