// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strconv"

	"github.com/bureau-foundation/cmdgroup/lib/literal"
)

// Undocumented is the description shown for an argument that neither
// a description mapping nor the parameter itself documents.
const Undocumented = "FIXME: UNDOCUMENTED"

// Action says whether an argument consumes a value token.
type Action int

const (
	// ActionValue arguments take exactly one value token.
	ActionValue Action = iota

	// ActionFlag arguments take no value: present means true.
	ActionFlag
)

func (a Action) String() string {
	if a == ActionFlag {
		return "flag"
	}
	return "value"
}

// Argument is the command-line view of one parameter. It is derived
// once per parser build and not modified afterwards.
type Argument struct {
	Name        string
	Kind        Kind
	Description string

	// Required is true exactly when the parameter has no default and
	// is not a boolean.
	Required bool

	Action Action

	// Parse converts the raw token to the value stored in [Args].
	Parse func(string) (any, error)

	Default    any
	HasDefault bool

	// Long and Short are the option strings, filled in by the
	// [OptionNamer] when the argument joins a parser. Short is "" when
	// the first letter was already taken.
	Long  string
	Short string
}

// NewArgument derives the Argument for param. The description comes
// from descriptions[param.Name] when present, then from param.Doc,
// then falls back to [Undocumented].
func NewArgument(param Param, descriptions map[string]string) Argument {
	argument := Argument{
		Name:       param.Name,
		Kind:       param.Kind,
		Default:    param.Default,
		HasDefault: param.HasDefault,
		Parse:      converterFor(param),
	}

	if param.Kind == KindBool {
		argument.Action = ActionFlag
		argument.Required = false
	} else {
		argument.Action = ActionValue
		argument.Required = !param.HasDefault
	}

	switch {
	case descriptions[param.Name] != "":
		argument.Description = descriptions[param.Name]
	case param.Doc != "":
		argument.Description = param.Doc
	default:
		argument.Description = Undocumented
	}

	return argument
}

// converterFor picks the token converter for a parameter's kind.
func converterFor(param Param) func(string) (any, error) {
	switch param.Kind {
	case KindBool:
		return parseBool
	case KindInt:
		return parseInt
	case KindFloat:
		return parseFloat
	case KindList:
		return literal.For(literal.List)
	case KindTuple:
		return literal.For(literal.Tuple)
	case KindMap:
		return literal.For(literal.Map)
	case KindSet:
		return literal.For(literal.Set)
	case KindCustom:
		if param.Convert != nil {
			return param.Convert
		}
	}
	return parseString
}

func parseString(token string) (any, error) {
	return token, nil
}

func parseBool(token string) (any, error) {
	value, err := strconv.ParseBool(token)
	if err != nil {
		return nil, fmt.Errorf("not a boolean")
	}
	return value, nil
}

func parseInt(token string) (any, error) {
	value, err := strconv.ParseInt(token, 10, strconv.IntSize)
	if err != nil {
		return nil, fmt.Errorf("not an integer")
	}
	return int(value), nil
}

func parseFloat(token string) (any, error) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number")
	}
	return value, nil
}

// formatDefault renders a default for help text and manifests. Empty
// defaults render as "" so the parser library treats them as zero and
// omits the "(default ...)" suffix.
func formatDefault(argument Argument) string {
	if !argument.HasDefault || argument.Default == nil {
		return ""
	}
	switch value := argument.Default.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
