// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bureau-foundation/cmdgroup/lib/config"
)

// isHelpToken reports whether a command token asks for the group's help.
func isHelpToken(token string) bool {
	return token == "-h" || token == "--help" || token == "help"
}

// Dispatch resolves the command token at this group's level and either
// recurses into a nested group or parses the remaining tokens and runs
// the selected operation.
//
// Help requests write to stdout and return nil. Every failure dispatch
// renders itself (missing or unknown command, argument errors, a broken
// registry) is written to stderr and returned as an *ExitError with
// code 1 that wraps the typed error. An operation's own error is
// returned unchanged.
func (g *CommandGroup) Dispatch(ctx context.Context) error {
	environment := g.environment
	stderr := environment.ErrorOutput()
	logger := g.logger()

	registry, err := g.Registry()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure(err)
	}

	if len(environment.Argv) <= g.level {
		missing := &MissingRequiredArgumentError{Path: g.Path(), Names: []string{"command"}}
		g.WriteHelp(stderr)
		fmt.Fprintf(stderr, "\nerror: %v\n", missing)
		return exitFailure(missing)
	}

	token := environment.Argv[g.level]
	if isHelpToken(token) {
		g.WriteHelp(environment.Output())
		return nil
	}

	entry, ok := registry.Lookup(token)
	if !ok {
		unrecognized := &UnrecognizedCommandError{Token: token}
		if !strings.HasPrefix(token, "_") {
			unrecognized.Suggestion = suggestCommand(token, registry.Names())
		}
		logger.Debug("unrecognized command", "token", token)
		fmt.Fprintf(stderr, "%v\n\n", unrecognized)
		g.WriteHelp(stderr)
		return exitFailure(unrecognized)
	}

	logger.Debug("resolved command", "token", token, "command", entry.DisplayName)

	switch target := entry.Target.(type) {
	case GroupFactory:
		definition := target()
		if definition == nil {
			failure := Internal("command %q: group factory returned no group", entry.DisplayName)
			fmt.Fprintf(stderr, "error: %v\n", failure)
			return exitFailure(failure)
		}
		logger.Debug("entering command group", "command", entry.DisplayName)
		return g.child(definition).Dispatch(ctx)
	case *Operation:
		return g.invoke(ctx, entry, target)
	default:
		failure := Internal("command %q has no target", entry.DisplayName)
		fmt.Fprintf(stderr, "error: %v\n", failure)
		return exitFailure(failure)
	}
}

// invoke parses the tokens after the command name and runs operation.
func (g *CommandGroup) invoke(ctx context.Context, entry CommandEntry, operation *Operation) error {
	environment := g.environment
	stderr := environment.ErrorOutput()

	path := commandPath(environment.Argv, g.level+1)
	parser, err := NewCommandParser(path, operation, g.argDescriptions)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure(err)
	}

	args, err := parser.Parse(environment.Argv[g.level+1:])
	if err != nil {
		if errors.Is(err, ErrHelp) {
			parser.WriteHelp(environment.Output(), operation.Doc, environment.Color, environment.Width)
			return nil
		}

		var missing *MissingRequiredArgumentError
		if errors.As(err, &missing) {
			parser.WriteHelp(stderr, operation.Doc, environment.Color, environment.Width)
			fmt.Fprintf(stderr, "\nerror: %v\n", err)
			return exitFailure(err)
		}

		parser.WriteUsage(stderr)
		fmt.Fprintf(stderr, "error: %v\n\nRun '%s --help' for usage.\n", err, strings.Join(path, " "))
		return exitFailure(err)
	}

	g.logger().Debug("invoking command",
		"command", entry.DisplayName,
		"supplied", args.Supplied(),
	)
	return operation.Run(WithEnvironment(ctx, environment), args)
}

// Run dispatches root against environment and returns the process exit
// code. Errors that were not already rendered by dispatch are written
// to environment.Stderr.
func Run(ctx context.Context, root *Group, environment *Environment) int {
	if environment == nil {
		environment = &Environment{}
	}
	err := NewCommandGroup(root, environment).Dispatch(ctx)
	if err != nil {
		var coder interface{ ExitCode() int }
		if !errors.As(err, &coder) {
			fmt.Fprintf(environment.ErrorOutput(), "error: %v\n", err)
		}
	}
	return ExitCode(err)
}

// Main runs root against the process arguments and exits. The
// configuration file named by CMDGROUP_CONFIG is loaded when the
// variable is set; otherwise defaults apply. SIGINT and SIGTERM cancel
// the context passed to the operation.
func Main(root *Group) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, root)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, root *Group) int {
	configuration := config.Default()
	if os.Getenv(config.EnvironmentVariable) != "" {
		loaded, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		configuration = loaded
	}

	environment, err := NewEnvironment(os.Args, os.Stdout, os.Stderr, configuration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return Run(ctx, root, environment)
}
