// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"

	"github.com/bureau-foundation/cmdgroup/lib/cli"
)

// writeHighlighted writes source to the environment's output, syntax
// highlighted with Chroma when the color mode allows it. Unknown
// languages and Chroma errors fall back to the plain text.
func writeHighlighted(environment *cli.Environment, source, language string) error {
	output := environment.Output()
	if !colorEnabled(environment) {
		_, err := io.WriteString(output, source)
		return err
	}

	var buffer strings.Builder
	if err := quick.Highlight(&buffer, source, language, "terminal256", "monokai"); err != nil {
		_, err = io.WriteString(output, source)
		return err
	}
	_, err := io.WriteString(output, buffer.String())
	return err
}

// colorEnabled resolves the environment's color mode for stdout.
func colorEnabled(environment *cli.Environment) bool {
	switch environment.Color {
	case cli.ColorAlways:
		return true
	case cli.ColorNever:
		return false
	}
	file, ok := environment.Output().(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
