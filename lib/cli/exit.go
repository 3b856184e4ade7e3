// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ExitError signals a non-zero exit code whose diagnostic has already
// been written. Dispatch returns one for every failure it renders
// itself (unknown command, parse failure, broken registration), so
// [Main] exits with Code without printing anything further.
//
// Operations may return an ExitError too, when a non-zero exit is a
// valid outcome rather than an unexpected error.
type ExitError struct {
	Code int

	// Err is the failure that was rendered, if any.
	Err error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the rendered failure so callers can inspect its type
// with errors.As.
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the exit code. [Main] checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitCode maps a dispatch result to a process exit code: 0 for nil,
// the carried code for anything implementing ExitCode() int, and 1 for
// every other error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// exitFailure wraps a rendered failure in the standard exit-1 error.
func exitFailure(err error) *ExitError {
	return &ExitError{Code: 1, Err: err}
}
