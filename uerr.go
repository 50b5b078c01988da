// Package uerr renders structured, human-readable errors for command-line
// programs.
//
// A UserError carries a primary message plus ordered lists of reasons (the
// causal chain) and help tips (remediation). PrintAll writes the whole block
// to the diagnostic stream in a fixed format:
//
//	myprog: could not open file
//	 - caused by: The system cannot find the file specified.
//	 + help: Does this file exist?
//
// UnwrapIO ties the value to process lifecycle: it unwraps a (value, error)
// pair, and on failure prints the block and exits with the raw OS error code.
package uerr

import "fmt"

// UserError is a human-readable error: a message plus ordered reasons and
// help tips. The zero value is usable; New is the usual entry point.
type UserError struct {
	message string
	reasons []string
	help    []string
}

// New returns a UserError with the given message and empty reason/help lists.
func New(message string) *UserError {
	return &UserError{message: message}
}

// Error implements the error interface. It returns the message only; the
// reasons and help lists are presentation detail for PrintAll.
func (e *UserError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Message returns the primary message.
func (e *UserError) Message() string { return e.message }

// Reasons returns the reason list. The returned slice is the live backing
// array: in-place edits (sort, element rewrite) are visible to the value.
func (e *UserError) Reasons() []string { return e.reasons }

// Help returns the help list. Same aliasing contract as Reasons.
func (e *UserError) Help() []string { return e.help }

// SetReasons replaces the reason list.
func (e *UserError) SetReasons(reasons []string) { e.reasons = reasons }

// SetHelp replaces the help list.
func (e *UserError) SetHelp(help []string) { e.help = help }

// AddReason appends a reason. Insertion order is preserved.
func (e *UserError) AddReason(reason string) {
	e.reasons = append(e.reasons, reason)
}

// AddReasonf appends a reason formatted fmt.Sprintf-style.
func (e *UserError) AddReasonf(format string, args ...any) {
	e.reasons = append(e.reasons, fmt.Sprintf(format, args...))
}

// AddHelp appends a help tip. Insertion order is preserved.
func (e *UserError) AddHelp(help string) {
	e.help = append(e.help, help)
}

// AddHelpf appends a help tip formatted fmt.Sprintf-style.
func (e *UserError) AddHelpf(format string, args ...any) {
	e.help = append(e.help, fmt.Sprintf(format, args...))
}

// WithReason appends a reason and returns the same receiver for chaining.
func (e *UserError) WithReason(reason string) *UserError {
	e.AddReason(reason)
	return e
}

// WithReasonf is WithReason with fmt.Sprintf formatting.
func (e *UserError) WithReasonf(format string, args ...any) *UserError {
	e.AddReasonf(format, args...)
	return e
}

// WithHelp appends a help tip and returns the same receiver for chaining.
func (e *UserError) WithHelp(help string) *UserError {
	e.AddHelp(help)
	return e
}

// WithHelpf is WithHelp with fmt.Sprintf formatting.
func (e *UserError) WithHelpf(format string, args ...any) *UserError {
	e.AddHelpf(format, args...)
	return e
}
