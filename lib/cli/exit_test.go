// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	rendered := errors.New("rendered")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"exit error", &ExitError{Code: 2}, 2},
		{"wrapped exit error", fmt.Errorf("context: %w", &ExitError{Code: 4, Err: rendered}), 4},
		{"exit failure", exitFailure(rendered), 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ExitCode(test.err); got != test.want {
				t.Errorf("ExitCode() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	rendered := &UnrecognizedArgumentsError{Tokens: []string{"x"}}
	exitError := &ExitError{Code: 1, Err: rendered}

	if exitError.Error() != rendered.Error() {
		t.Errorf("Error() = %q, want the wrapped message", exitError.Error())
	}
	var unwrapped *UnrecognizedArgumentsError
	if !errors.As(exitError, &unwrapped) {
		t.Error("errors.As does not find the rendered error")
	}

	bare := &ExitError{Code: 7}
	if bare.Error() != "exit code 7" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "exit code 7")
	}
}
