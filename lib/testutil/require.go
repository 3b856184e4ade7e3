// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"strings"
)

// TestingT is the subset of testing.TB the helpers need.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
}

// RequireContains fails the test unless haystack contains every needle.
// The full haystack is printed on failure so the surrounding output is
// visible.
//
//	testutil.RequireContains(t, output.Stdout.String(), []string{"Usage:", "deploy"}, "group help")
func RequireContains(t TestingT, haystack string, needles []string, msgAndArgs ...any) {
	t.Helper()
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			t.Errorf("%s: output missing %q\n\nFull output:\n%s", formatMessage(msgAndArgs), needle, haystack)
		}
	}
}

// RequireNotContains fails the test if haystack contains any needle.
//
//	testutil.RequireNotContains(t, output.Stdout.String(), []string{"_private"}, "help lists private commands")
func RequireNotContains(t TestingT, haystack string, needles []string, msgAndArgs ...any) {
	t.Helper()
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			t.Errorf("%s: output unexpectedly contains %q\n\nFull output:\n%s", formatMessage(msgAndArgs), needle, haystack)
		}
	}
}

// RequireExitCode fails the test immediately when got differs from
// want, printing both captured streams.
//
//	testutil.RequireExitCode(t, cli.Run(ctx, root, environment), 1, output)
func RequireExitCode(t TestingT, got, want int, output *Output) {
	t.Helper()
	if got == want {
		return
	}
	if output == nil {
		t.Fatalf("exit code = %d, want %d", got, want)
		return
	}
	t.Fatalf("exit code = %d, want %d\n\nstdout:\n%s\nstderr:\n%s",
		got, want, output.Stdout.String(), output.Stderr.String())
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
