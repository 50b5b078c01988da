package uerr

import (
	"errors"
	"fmt"
)

// Convert turns any fmt.Stringer into a UserError whose message is the
// value's textual representation. Reasons and help start empty. Conversion
// is total: it applies to every Stringer without per-type code.
func Convert[D fmt.Stringer](v D) *UserError {
	return New(v.String())
}

// FromError turns any error into a UserError whose message is err.Error().
// Reasons and help start empty.
func FromError(err error) *UserError {
	return New(err.Error())
}

// Chain turns an error into a UserError and fills the reasons list with the
// error's unwrap chain, outermost cause first. The message is the error's
// own text; each call to errors.Unwrap contributes one reason.
func Chain(err error) *UserError {
	e := New(err.Error())
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		e.AddReason(cause.Error())
	}
	return e
}
