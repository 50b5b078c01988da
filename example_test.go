package uerr_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/mmrzaf/uerr"
)

func ExampleUserError_Fprint() {
	uerr.New("could not open file").
		WithReason("The system cannot find the file specified.").
		WithHelp("Does this file exist?").
		Fprint(os.Stdout, "uerr/error: ")
	// Output:
	// uerr/error: could not open file
	//  - caused by: The system cannot find the file specified.
	//  + help: Does this file exist?
}

func ExampleChain() {
	root := errors.New("connection refused")
	err := fmt.Errorf("fetch config: %w", root)

	uerr.Chain(err).
		WithHelp("Is the server running?").
		Fprint(os.Stdout, "myprog: ")
	// Output:
	// myprog: fetch config: connection refused
	//  - caused by: connection refused
	//  + help: Is the server running?
}

func ExampleUnwrapIO() {
	f := uerr.UnwrapIO("myprog: ", os.Stdin, nil)
	fmt.Println(f.Name())
	// Output:
	// /dev/stdin
}
