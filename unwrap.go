package uerr

import (
	"errors"
	"fmt"
	"syscall"
)

const fallbackNote = "note: the error code could not be found for this error; reverting to -1..."

// OSCode extracts the raw OS-level error code from err, traversing wrapped
// errors, so *os.PathError and friends resolve to their syscall.Errno.
func OSCode(err error) (int, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno), true
	}
	return 0, false
}

// UnwrapIO returns val when err is nil. Otherwise it prints err as a
// UserError block with the given prefix and terminates the process: with the
// raw OS error code when one can be extracted, else with -1 after noting the
// fallback on the diagnostic stream. The failure path never returns, so
// UnwrapIO must not be used where the caller wants to recover.
//
// See Exit for how negative codes are reported on Unix.
func UnwrapIO[T any](prefix string, val T, err error) T {
	if err == nil {
		return val
	}

	code, ok := OSCode(err)
	if !ok {
		fmt.Fprintln(output, fallbackNote)
		code = -1
	}
	FromError(err).PrintAll(prefix).Exit(code)
	panic("unreachable")
}
