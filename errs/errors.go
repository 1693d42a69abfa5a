// Package errs defines the fatal error kinds of a documentation run.
//
// Every failure is terminal: nothing is retried, and the first error aborts the run.
package errs

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError reports a malformed command line.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Usage creates a UsageError
func Usage(format string, args ...interface{}) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ReadError reports a required input that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Read wraps err as a ReadError for path, nil stays nil
func Read(path string, err error) error {
	if err == nil {
		return nil
	}
	var readErr *ReadError
	if errors.As(err, &readErr) {
		return err
	}
	return &ReadError{Path: path, Err: err}
}

// TraceError reports a tracer failure for one (code, file) pair.
type TraceError struct {
	File string
	Code string
	Err  error
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("error reading %s (tracing %s):\n%v", e.File, e.Code, e.Err)
}

func (e *TraceError) Unwrap() error {
	return e.Err
}

// WriteError reports a failed output write.
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

// Write wraps err as a WriteError for path, nil stays nil
func Write(path string, err error) error {
	if err == nil {
		return nil
	}
	return &WriteError{Path: path, Err: err}
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	return ExitFailure
}
