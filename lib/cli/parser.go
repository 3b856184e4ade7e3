// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// CommandParser binds the tokens after a leaf command name to the
// operation's parameters. It is built fresh for every dispatch and
// parses at most once.
type CommandParser struct {
	path      []string
	arguments []Argument
	values    []*argumentValue
	flagSet   *pflag.FlagSet
}

// NewCommandParser builds the parser for operation. path is the command
// path that selected it (program name first) and is used in usage
// lines. descriptions is the effective description mapping at the
// operation's level.
func NewCommandParser(path []string, operation *Operation, descriptions map[string]string) (parser *CommandParser, err error) {
	signature, err := Inspect(operation)
	if err != nil {
		return nil, err
	}

	flagSet := pflag.NewFlagSet(strings.Join(path, " "), pflag.ContinueOnError)
	// Suppress pflag's own error output and usage dump. Dispatch
	// renders errors and help itself.
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}
	flagSet.SortFlags = false

	parser = &CommandParser{
		path:      append([]string(nil), path...),
		arguments: make([]Argument, len(signature.Params)),
		values:    make([]*argumentValue, len(signature.Params)),
		flagSet:   flagSet,
	}

	// AddFlag panics on conflicting definitions. Inspect and the
	// option namer rule those out, but a panic must not cross the API.
	defer func() {
		if recovered := recover(); recovered != nil {
			parser = nil
			err = Internal("binding options for %q: %v", strings.Join(path, " "), recovered)
		}
	}()

	namer := NewOptionNamer()
	for index, param := range signature.Params {
		argument := NewArgument(param, descriptions)
		argument.Long, argument.Short = namer.Assign(param.Name)
		parser.arguments[index] = argument

		value := &argumentValue{argument: &parser.arguments[index]}
		parser.values[index] = value

		flag := &pflag.Flag{
			Name:      strings.TrimPrefix(argument.Long, "--"),
			Shorthand: strings.TrimPrefix(argument.Short, "-"),
			Usage:     argument.Description,
			Value:     value,
			DefValue:  formatDefault(argument),
		}
		if argument.Action == ActionFlag {
			flag.NoOptDefVal = "true"
		}
		flagSet.AddFlag(flag)
	}

	return parser, nil
}

// Arguments returns the parser's arguments in declaration order, with
// their option strings assigned.
func (p *CommandParser) Arguments() []Argument {
	return append([]Argument(nil), p.arguments...)
}

// Path returns the command path the parser was built for.
func (p *CommandParser) Path() []string {
	return append([]string(nil), p.path...)
}

// Parse binds tokens. On success every supplied argument, and every
// flag, is present in the result. Failures are returned as typed
// errors: [ErrHelp], *UnknownOptionError, *ArgumentTypeCoercionError,
// *FlagValueError, *MissingRequiredArgumentError,
// *UnrecognizedArgumentsError, or a validation *ToolError for other
// malformed option syntax.
func (p *CommandParser) Parse(tokens []string) (Args, error) {
	if err := p.flagSet.Parse(tokens); err != nil {
		return Args{}, p.classify(tokens, err)
	}
	if err := flagValue(tokens, p.flagSet); err != nil {
		return Args{}, err
	}

	var missing []string
	for _, value := range p.values {
		if value.argument.Required && !value.set {
			missing = append(missing, value.argument.Long)
		}
	}
	if len(missing) > 0 {
		return Args{}, &MissingRequiredArgumentError{Path: p.Path(), Names: missing}
	}

	if leftover := p.flagSet.Args(); len(leftover) > 0 {
		return Args{}, &UnrecognizedArgumentsError{Tokens: append([]string(nil), leftover...)}
	}

	supplied := make(map[string]any, len(p.values))
	defaults := make(map[string]any)
	for _, value := range p.values {
		argument := value.argument
		switch {
		case value.set:
			supplied[argument.Name] = value.value
		case argument.Action == ActionFlag:
			supplied[argument.Name] = false
		}
		if argument.HasDefault {
			defaults[argument.Name] = argument.Default
		}
	}
	return NewArgs(supplied, defaults), nil
}

// classify turns a pflag parse failure into one of the typed errors.
func (p *CommandParser) classify(tokens []string, err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return ErrHelp
	}

	// pflag formats conversion failures with %v, losing the chain, so
	// the value records its own typed error.
	for _, value := range p.values {
		if value.err != nil {
			return value.err
		}
	}

	message := err.Error()
	if strings.Contains(message, "unknown flag") || strings.Contains(message, "unknown shorthand flag") {
		option := unknownOption(tokens, p.flagSet)
		return &UnknownOptionError{
			Option:     option,
			Suggestion: suggestOption(option, p.flagSet),
			Err:        err,
		}
	}
	return &ToolError{Category: CategoryValidation, Err: err}
}

// flagValue finds a flag argument written with an inline value. pflag
// hands the flag's Value "true" for both "--dry-run" and
// "--dry-run=true", so the tokens are checked directly. The walk skips
// the value token of every option that takes one and stops at "--".
func flagValue(tokens []string, flagSet *pflag.FlagSet) error {
	for index := 0; index < len(tokens); index++ {
		token := tokens[index]
		if token == "--" {
			return nil
		}
		if len(token) < 2 || token[0] != '-' {
			continue
		}

		if strings.HasPrefix(token, "--") {
			name, value, hasValue := strings.Cut(token[2:], "=")
			flag := flagSet.Lookup(name)
			switch {
			case flag == nil:
			case flag.NoOptDefVal != "" && hasValue:
				return &FlagValueError{Argument: "--" + flag.Name, Value: value}
			case flag.NoOptDefVal == "" && !hasValue:
				index++
			}
			continue
		}

		shorthands := token[1:]
		for position := 0; position < len(shorthands); position++ {
			flag := flagSet.ShorthandLookup(shorthands[position : position+1])
			if flag == nil {
				break
			}
			if flag.NoOptDefVal != "" {
				if position+1 < len(shorthands) && shorthands[position+1] == '=' {
					return &FlagValueError{Argument: "--" + flag.Name, Value: shorthands[position+2:]}
				}
				continue
			}
			// The rest of the token, or the next one, is the value.
			if position == len(shorthands)-1 {
				index++
			}
			break
		}
	}
	return nil
}

// argumentValue adapts an Argument to pflag.Value.
type argumentValue struct {
	argument *Argument
	value    any
	set      bool
	err      *ArgumentTypeCoercionError
}

func (v *argumentValue) String() string {
	if !v.set {
		return formatDefault(*v.argument)
	}
	return fmt.Sprint(v.value)
}

func (v *argumentValue) Set(token string) error {
	value, err := v.argument.Parse(token)
	if err != nil {
		v.err = &ArgumentTypeCoercionError{
			Argument: v.argument.Long,
			Value:    token,
			Kind:     v.argument.Kind,
			Err:      err,
		}
		return v.err
	}
	v.value = value
	v.set = true
	return nil
}

func (v *argumentValue) Type() string {
	return v.argument.Kind.String()
}
