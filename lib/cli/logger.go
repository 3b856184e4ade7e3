// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the structured logger for framework diagnostics.
// With format "auto" (or ""), a terminal gets slog.TextHandler for
// human-readable output and anything else (pipes, CI, files) gets
// slog.JSONHandler for machine-parseable output. "text" and "json"
// force one handler.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewLogger(os.Stderr, slog.LevelDebug, "auto").With(
//	    "command", "config/show",
//	)
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}

	useText := false
	switch format {
	case "text":
		useText = true
	case "json":
		useText = false
	default:
		if file, ok := w.(*os.File); ok {
			useText = term.IsTerminal(int(file.Fd()))
		}
	}

	var handler slog.Handler
	if useText {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
