// Package reader abstracts the REPL's line source.
//
// Implementations provide one line of text per call and must signal
// interrupt and end-of-input distinctly from other I/O failures: the loop
// shuts down gracefully on the former and recovers from the latter.
package reader

import (
	"context"
	"errors"
)

// ErrInterrupted signals an interrupt (Ctrl-C) during a pending read.
// An interrupt cancels only the pending read, never an in-flight
// pipeline run.
var ErrInterrupted = errors.New("interrupted")

// LineSource provides one line of text per call.
type LineSource interface {
	// ReadLine blocks for the next line. It returns io.EOF at end of
	// input, ErrInterrupted on an interrupt signal, and other errors for
	// recoverable read failures.
	ReadLine(ctx context.Context) (string, error)

	// AppendHistory records a line in the editing history, fire and
	// forget: failures must never surface to the loop.
	AppendHistory(line string)
}
