package app

import (
	"errors"
	"fmt"

	"github.com/mmrzaf/uerr"
)

// Version is the CLI version string.
const Version = "0.2.0"

// Exit codes used by the uerr CLI.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitIO      = 3
)

// Error wraps an error with an exit code.
type Error struct {
	code int
	err  error
}

// Error returns a printable message.
func (e *Error) Error() string { return e.err.Error() }

// Unwrap exposes the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// ExitCode returns the process exit code.
func (e *Error) ExitCode() int { return e.code }

// Wrap wraps err with the given exit code.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, err: err}
}

// Wrapf wraps err with formatted context.
func Wrapf(code int, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, err: fmt.Errorf(format+": %w", append(args, err)...)}
}

// CodeFor derives the process exit code for err: an explicit *Error code
// wins, then the raw OS error code, then ExitIO. nil maps to ExitOK.
func CodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.ExitCode()
	}
	if code, ok := uerr.OSCode(err); ok {
		return code
	}
	return ExitIO
}
