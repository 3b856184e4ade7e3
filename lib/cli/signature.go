// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"regexp"
)

// Kind is the declared type of an operation parameter. It decides how
// the raw token is converted and whether the argument is a flag.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat

	// Structured-literal kinds, parsed by lib/literal.
	KindList
	KindTuple
	KindMap
	KindSet

	// KindCustom converts the token with the parameter's own Convert
	// function.
	KindCustom
)

// String returns the kind name shown in help and manifests.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindCustom:
		return "value"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) valid() bool {
	return k >= KindString && k <= KindCustom
}

// Param declares one parameter of an operation.
type Param struct {
	// Name is the keyword the parsed value is stored under in [Args].
	// It becomes the long option with underscores turned into hyphens.
	Name string

	Kind Kind

	// Default is used when the argument is omitted. Only meaningful
	// when HasDefault is true; a parameter without a default is
	// required (booleans excepted).
	Default    any
	HasDefault bool

	// Doc is the fallback help text when no description mapping in
	// scope covers Name.
	Doc string

	// Convert parses the raw token for KindCustom parameters.
	Convert func(string) (any, error)
}

// Operation is a leaf command: a documented, typed parameter list and
// the function it binds to.
type Operation struct {
	// Doc is the help text. Its first line is the summary shown in the
	// parent group's command list.
	Doc string

	// Params are declared in the order they appear in help.
	Params []Param

	Run func(ctx context.Context, args Args) error
}

func (*Operation) isTarget() {}

// Signature is the validated, ordered parameter list of an operation.
type Signature struct {
	Params []Param
}

var paramNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Inspect validates an operation's parameter list and returns it as a
// Signature. An operation that fails inspection cannot be registered:
// [NewRegistry] logs the returned error and leaves the command out.
func Inspect(operation *Operation) (Signature, error) {
	if operation == nil {
		return Signature{}, Internal("operation is nil")
	}
	if operation.Run == nil {
		return Signature{}, Internal("operation has no Run function")
	}

	seen := make(map[string]bool, len(operation.Params))
	for index, param := range operation.Params {
		if !paramNamePattern.MatchString(param.Name) {
			return Signature{}, Internal("parameter %d: invalid name %q", index, param.Name)
		}
		if param.Name == "help" {
			return Signature{}, Internal("parameter %q conflicts with the help option", param.Name)
		}
		if seen[param.Name] {
			return Signature{}, Internal("parameter %q declared twice", param.Name)
		}
		seen[param.Name] = true

		if !param.Kind.valid() {
			return Signature{}, Internal("parameter %q: unknown kind %d", param.Name, int(param.Kind))
		}
		if param.Kind == KindCustom && param.Convert == nil {
			return Signature{}, Internal("parameter %q: custom kind requires a Convert function", param.Name)
		}
		if param.HasDefault {
			if err := checkDefault(param); err != nil {
				return Signature{}, err
			}
		}
	}

	params := make([]Param, len(operation.Params))
	copy(params, operation.Params)
	return Signature{Params: params}, nil
}

// checkDefault verifies that a declared default has the Go type the
// parsed value of its kind would have, so [Args] accessors see one
// type regardless of whether the value was supplied.
func checkDefault(param Param) error {
	if param.Default == nil {
		return nil
	}
	var ok bool
	switch param.Kind {
	case KindString:
		_, ok = param.Default.(string)
	case KindBool:
		// Omitting a flag always means false.
		if value, isBool := param.Default.(bool); isBool && value {
			return Internal("parameter %q: boolean flags cannot default to true", param.Name)
		}
		_, ok = param.Default.(bool)
	case KindInt:
		_, ok = param.Default.(int)
	case KindFloat:
		_, ok = param.Default.(float64)
	case KindList, KindTuple, KindSet:
		_, ok = param.Default.([]any)
	case KindMap:
		_, ok = param.Default.(map[string]any)
	case KindCustom:
		ok = true
	}
	if !ok {
		return Internal("parameter %q: default %#v (%T) does not match kind %s",
			param.Name, param.Default, param.Default, param.Kind)
	}
	return nil
}
