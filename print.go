package uerr

import (
	"fmt"
	"io"
	"os"
)

// Section markers. The continuation strings are fixed literals aligned under
// the first marker's content column; there is no dynamic width computation.
const (
	reasonFirst = " - caused by: "
	reasonRest  = "     |        "
	helpFirst   = " + help: "
	helpRest    = "     |   "
)

var (
	output io.Writer = os.Stderr
	osExit           = os.Exit
)

// SetOutput replaces the diagnostic stream used by PrintAll and UnwrapIO.
// The default is os.Stderr. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// PrintAll writes the error block to the diagnostic stream and returns the
// same receiver so a call can chain straight into Exit.
//
// The first line is the prefix immediately followed by the message; no
// separator is inserted, so the prefix must carry its own trailing
// punctuation or space. Reasons and help follow, one line per entry, each
// section omitted entirely when its list is empty. Writes are best-effort;
// failures to write are not reported.
func (e *UserError) PrintAll(prefix string) *UserError {
	return e.Fprint(output, prefix)
}

// Fprint is PrintAll writing to an explicit writer.
func (e *UserError) Fprint(w io.Writer, prefix string) *UserError {
	fmt.Fprintf(w, "%s%s\n", prefix, e.message)
	enumerate(w, e.reasons, reasonFirst, reasonRest)
	enumerate(w, e.help, helpFirst, helpRest)
	return e
}

// enumerate writes one line per entry: the first entry behind the first
// marker, every subsequent entry behind the rest marker. An empty list
// produces no output.
func enumerate(w io.Writer, entries []string, first, rest string) {
	for i, entry := range entries {
		marker := rest
		if i == 0 {
			marker = first
		}
		fmt.Fprintf(w, "%s%s\n", marker, entry)
	}
}

// Exit terminates the process with the given code. It never returns.
//
// On Unix the status reported to the shell is truncated to a byte, so
// negative codes wrap: Exit(-1) is observed as 255.
func (e *UserError) Exit(code int) {
	osExit(code)
}
