// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies dispatch errors so that callers can decide
// between "fix the command line" and "fix the program" without parsing
// message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the user typed something the command
	// tree cannot accept: an unknown command, a missing required
	// argument, a value that does not convert. The user should fix the
	// command line and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryInternal indicates the command tree itself is broken:
	// duplicate command names, an operation with an invalid parameter
	// list, a group factory returning nothing. Retrying will not help.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error with an arbitrary message. Use the
// category-specific constructors rather than constructing it directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message. The category is not
// part of the text.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// ErrorCategory reports the category.
func (e *ToolError) ErrorCategory() ErrorCategory { return e.Category }

// Validation creates a validation error: the user provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: the command tree is malformed.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Category returns the category of the first categorized error in the
// chain, or "" if nothing in the chain carries one.
func Category(err error) ErrorCategory {
	var categorized interface{ ErrorCategory() ErrorCategory }
	if errors.As(err, &categorized) {
		return categorized.ErrorCategory()
	}
	return ""
}

// ErrHelp is returned by [CommandParser.Parse] when the tokens ask for
// help (-h or --help). It is not a failure: dispatch renders the
// command help to stdout and exits 0.
var ErrHelp = errors.New("help requested")

// UnrecognizedCommandError reports a command token that matches no
// registered entry at its level.
type UnrecognizedCommandError struct {
	// Token is the command token as typed.
	Token string

	// Suggestion is the closest registered name, or "" when nothing
	// is within the suggestion distance.
	Suggestion string
}

func (e *UnrecognizedCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("Unrecognized command: %s (did you mean %q?)", e.Token, e.Suggestion)
	}
	return fmt.Sprintf("Unrecognized command: %s", e.Token)
}

func (e *UnrecognizedCommandError) ErrorCategory() ErrorCategory { return CategoryValidation }

// MissingRequiredArgumentError reports required arguments that were not
// supplied. At a group level the single missing name is "command".
type MissingRequiredArgumentError struct {
	// Path is the command path consumed so far, starting with the
	// program name.
	Path []string

	// Names are the missing arguments in declaration order, rendered
	// as the user would type them ("--name").
	Names []string
}

func (e *MissingRequiredArgumentError) Error() string {
	return "the following arguments are required: " + strings.Join(e.Names, ", ")
}

func (e *MissingRequiredArgumentError) ErrorCategory() ErrorCategory { return CategoryValidation }

// ArgumentTypeCoercionError reports a supplied value that the
// argument's converter rejected. For structured literals Err is a
// *literal.Error.
type ArgumentTypeCoercionError struct {
	// Argument is the long option the value was given for.
	Argument string

	// Value is the raw token.
	Value string

	// Kind is the declared kind of the argument.
	Kind Kind

	Err error
}

func (e *ArgumentTypeCoercionError) Error() string {
	return fmt.Sprintf("argument %s: invalid %s value: %q: %v", e.Argument, e.Kind, e.Value, e.Err)
}

func (e *ArgumentTypeCoercionError) Unwrap() error { return e.Err }

func (e *ArgumentTypeCoercionError) ErrorCategory() ErrorCategory { return CategoryValidation }

// UnrecognizedArgumentsError reports positional tokens left over after
// every declared argument was bound.
type UnrecognizedArgumentsError struct {
	Tokens []string
}

func (e *UnrecognizedArgumentsError) Error() string {
	return "unrecognized arguments: " + strings.Join(e.Tokens, " ")
}

func (e *UnrecognizedArgumentsError) ErrorCategory() ErrorCategory { return CategoryValidation }

// FlagValueError reports a flag argument given an inline value, as in
// "--dry-run=false". Flags take no value.
type FlagValueError struct {
	// Argument is the flag's long option.
	Argument string

	// Value is the text after "=".
	Value string
}

func (e *FlagValueError) Error() string {
	return fmt.Sprintf("argument %s: ignored explicit argument %q", e.Argument, e.Value)
}

func (e *FlagValueError) ErrorCategory() ErrorCategory { return CategoryValidation }

// UnknownOptionError reports an option token that names no declared
// argument.
type UnknownOptionError struct {
	// Option is the token as typed, without any "=value" suffix.
	Option string

	// Suggestion is the closest declared long option, or "".
	Suggestion string

	// Err is the parser's own message.
	Err error
}

func (e *UnknownOptionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v (did you mean %s?)", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

func (e *UnknownOptionError) Unwrap() error { return e.Err }

func (e *UnknownOptionError) ErrorCategory() ErrorCategory { return CategoryValidation }

// DuplicateCommandNameError reports two members of one group whose
// names collide after case folding.
type DuplicateCommandNameError struct {
	// Name is the folded command name.
	Name string

	// First and Second are the member names as declared.
	First  string
	Second string
}

func (e *DuplicateCommandNameError) Error() string {
	return fmt.Sprintf("duplicate command name %q (declared as %q and %q)", e.Name, e.First, e.Second)
}

func (e *DuplicateCommandNameError) ErrorCategory() ErrorCategory { return CategoryInternal }
