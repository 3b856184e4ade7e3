// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import "bytes"

// Output captures the two streams of one command run.
//
//	output := &testutil.Output{}
//	environment := &cli.Environment{Argv: argv, Stdout: &output.Stdout, Stderr: &output.Stderr}
type Output struct {
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

// Reset empties both streams.
func (o *Output) Reset() {
	o.Stdout.Reset()
	o.Stderr.Reset()
}
