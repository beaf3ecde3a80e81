package clean

import "errors"

// Stream level failures. Invalid sentences are never reported as errors.
var (
	// ErrRead indicates the input stream could not be read.
	ErrRead = errors.New("clean: cannot read input")

	// ErrWrite indicates the output stream could not be written.
	ErrWrite = errors.New("clean: cannot write output")
)
