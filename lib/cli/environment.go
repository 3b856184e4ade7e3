// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/bureau-foundation/cmdgroup/lib/config"
)

// ColorMode controls styling of help output.
type ColorMode string

const (
	// ColorAuto styles help only when the output is a terminal.
	ColorAuto ColorMode = "auto"

	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// defaultWidth is the help wrap width when neither configuration, the
// terminal, nor COLUMNS provide one.
const defaultWidth = 80

// Environment is everything dispatch reads from outside the command
// tree. One Environment is shared by every level of a dispatch.
type Environment struct {
	// Argv is the full argument vector; Argv[0] is the program name.
	Argv []string

	Stdout io.Writer
	Stderr io.Writer

	// Logger receives framework diagnostics. Nil discards them.
	Logger *slog.Logger

	Color ColorMode

	// Width is the column at which option help wraps. Zero disables
	// wrapping.
	Width int

	// Descriptions is the base description mapping under the root
	// group's own ArgDescriptions.
	Descriptions map[string]string

	// Config is the configuration the environment was built from, or
	// nil when it was assembled by hand.
	Config *config.Config
}

// NewEnvironment builds the environment for a process run from its
// argument vector, output streams, and loaded configuration.
func NewEnvironment(argv []string, stdout, stderr io.Writer, configuration *config.Config) (*Environment, error) {
	if configuration == nil {
		configuration = config.Default()
	}

	level, err := ParseLevel(configuration.Log.Level)
	if err != nil {
		return nil, err
	}

	width := configuration.Help.Width
	if width == 0 {
		width = detectWidth(stdout)
	}

	return &Environment{
		Argv:         argv,
		Stdout:       stdout,
		Stderr:       stderr,
		Logger:       NewLogger(stderr, level, configuration.Log.Format),
		Color:        ColorMode(configuration.Help.Color),
		Width:        width,
		Descriptions: configuration.ArgDescriptions,
		Config:       configuration,
	}, nil
}

// Output returns the writer for normal output, never nil.
func (e *Environment) Output() io.Writer {
	if e.Stdout == nil {
		return io.Discard
	}
	return e.Stdout
}

// ErrorOutput returns the writer for diagnostics, never nil.
func (e *Environment) ErrorOutput() io.Writer {
	if e.Stderr == nil {
		return io.Discard
	}
	return e.Stderr
}

// Log returns the framework logger, never nil.
func (e *Environment) Log() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// detectWidth returns the terminal width of w, then $COLUMNS, then
// defaultWidth.
func detectWidth(w io.Writer) int {
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if columns, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && columns > 0 {
		return columns
	}
	return defaultWidth
}

// ParseLevel parses a log level name ("debug", "info", "warn",
// "error"). The empty string means warn.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

type environmentKey struct{}

// WithEnvironment returns a context carrying environment. Dispatch
// attaches the environment before running an operation.
func WithEnvironment(ctx context.Context, environment *Environment) context.Context {
	return context.WithValue(ctx, environmentKey{}, environment)
}

// EnvironmentFrom returns the environment attached to ctx. Without
// one it returns an environment on the process's own streams with
// default configuration.
func EnvironmentFrom(ctx context.Context) *Environment {
	if environment, ok := ctx.Value(environmentKey{}).(*Environment); ok && environment != nil {
		return environment
	}
	return &Environment{
		Argv:   os.Args,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Color:  ColorAuto,
		Config: config.Default(),
	}
}
