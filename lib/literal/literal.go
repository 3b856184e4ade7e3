// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package literal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Shape is the top-level form a literal must take.
type Shape int

const (
	List Shape = iota + 1
	Tuple
	Map
	Set
)

// String returns the lower-case shape name used in error messages and
// on the command line ("list", "tuple", "map", "set").
func (s Shape) String() string {
	switch s {
	case List:
		return "list"
	case Tuple:
		return "tuple"
	case Map:
		return "map"
	case Set:
		return "set"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape maps a shape name back to its Shape. "dict" is accepted
// as a synonym for "map".
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "list":
		return List, nil
	case "tuple":
		return Tuple, nil
	case "map", "dict":
		return Map, nil
	case "set":
		return Set, nil
	default:
		return 0, fmt.Errorf("unknown literal shape %q (want list, tuple, map, or set)", name)
	}
}

// Error reports a literal that could not be parsed into the requested
// shape.
type Error struct {
	// Shape is the shape the caller asked for.
	Shape Shape

	// Text is the literal as typed.
	Text string

	// Reason is a short description of what was wrong.
	Reason string

	// Err is the underlying decoder error, when the text was not
	// syntactically valid at all.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s literal %q: %s: %v", e.Shape, e.Text, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed %s literal %q: %s", e.Shape, e.Text, e.Reason)
}

// Unwrap returns the underlying decoder error, if any.
func (e *Error) Unwrap() error { return e.Err }

// emptySet is the only way to spell an empty set: "{}" is an empty map.
const emptySet = "set()"

// Parse decodes text as a literal of the given shape. Lists, tuples,
// and sets decode to []any; maps decode to map[string]any.
func Parse(shape Shape, text string) (any, error) {
	switch shape {
	case List, Tuple, Map, Set:
	default:
		return nil, &Error{Shape: shape, Text: text, Reason: "unsupported shape"}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &Error{Shape: shape, Text: text, Reason: "empty literal"}
	}
	if shape == Set && trimmed == emptySet {
		return []any{}, nil
	}

	rewritten, opened := bracketTuples(trimmed)
	var document yaml.Node
	if err := yaml.Unmarshal([]byte(rewritten), &document); err != nil {
		return nil, &Error{Shape: shape, Text: text, Reason: "invalid syntax", Err: err}
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) != 1 {
		return nil, &Error{Shape: shape, Text: text, Reason: "empty literal"}
	}
	node := document.Content[0]

	if reason := checkSafe(node); reason != "" {
		return nil, &Error{Shape: shape, Text: text, Reason: reason}
	}

	decoder := &nodeDecoder{shape: shape, text: text, openers: opened}
	switch shape {
	case List, Tuple:
		if node.Kind != yaml.SequenceNode || node.Style&yaml.FlowStyle == 0 {
			return nil, decoder.mismatch(node)
		}
		return decoder.sequence(node)
	case Map:
		if node.Kind != yaml.MappingNode || node.Style&yaml.FlowStyle == 0 {
			return nil, decoder.mismatch(node)
		}
		if isSetForm(node) {
			return nil, &Error{Shape: shape, Text: text, Reason: "got a set literal, want key: value pairs"}
		}
		return decoder.mapping(node)
	default:
		if node.Kind != yaml.MappingNode || node.Style&yaml.FlowStyle == 0 {
			return nil, decoder.mismatch(node)
		}
		if len(node.Content) == 0 {
			return nil, &Error{Shape: shape, Text: text, Reason: `"{}" is an empty map; write set() for an empty set`}
		}
		if !isSetForm(node) {
			return nil, &Error{Shape: shape, Text: text, Reason: "got key: value pairs, want set elements"}
		}
		return decoder.set(node)
	}
}

// For returns a converter bound to one shape, suitable as an argument
// parse function.
func For(shape Shape) func(string) (any, error) {
	return func(text string) (any, error) {
		return Parse(shape, text)
	}
}

// position is a 1-based line and rune column, as yaml.Node reports
// them.
type position struct {
	line, column int
}

func at(node *yaml.Node) position {
	return position{line: node.Line, column: node.Column}
}

// openers records where tuples and braces open outside quoted strings.
type openers struct {
	tuples map[position]bool
	braces map[position]bool
}

// bracketTuples rewrites parentheses outside quoted strings into
// square brackets so that tuple syntax decodes as a flow sequence. It
// also returns where each tuple and brace opened, so the decoder can
// tell tuples from lists and braced maps from bare "key: value" pairs.
func bracketTuples(text string) (string, openers) {
	var builder strings.Builder
	builder.Grow(len(text))
	found := openers{tuples: map[position]bool{}, braces: map[position]bool{}}

	line, column := 1, 0
	var quote byte
	for i := 0; i < len(text); i++ {
		character := text[i]
		switch {
		case character == '\n':
			line, column = line+1, 0
		case character == '\r' && i+1 < len(text) && text[i+1] == '\n':
		case character == '\r':
			line, column = line+1, 0
		case character&0xC0 != 0x80:
			column++
		}

		switch {
		case quote == '"' && character == '\\' && i+1 < len(text):
			builder.WriteByte(character)
			i++
			builder.WriteByte(text[i])
			// The escaped byte starts a character.
			column++
			continue
		case quote != 0:
			if character == quote {
				quote = 0
			}
		case character == '"' || character == '\'':
			quote = character
		case character == '{':
			found.braces[position{line, column}] = true
		case character == '(':
			found.tuples[position{line, column}] = true
			character = '['
		case character == ')':
			character = ']'
		}
		builder.WriteByte(character)
	}
	return builder.String(), found
}

// checkSafe walks the node tree and returns a non-empty reason for the
// first construct a literal must not contain.
func checkSafe(node *yaml.Node) string {
	switch {
	case node.Kind == yaml.AliasNode:
		return "aliases are not allowed"
	case node.Anchor != "":
		return "anchors are not allowed"
	case node.Style&yaml.TaggedStyle != 0:
		return fmt.Sprintf("explicit tag %s is not allowed", node.Tag)
	}
	for _, child := range node.Content {
		if reason := checkSafe(child); reason != "" {
			return reason
		}
	}
	return ""
}

// isSetForm reports whether a flow mapping was written as "{a, b}":
// every value is an implicit null with no text.
func isSetForm(node *yaml.Node) bool {
	if len(node.Content) == 0 {
		return false
	}
	for i := 1; i < len(node.Content); i += 2 {
		value := node.Content[i]
		if value.Kind != yaml.ScalarNode || value.Tag != "!!null" || value.Value != "" {
			return false
		}
	}
	return true
}

type nodeDecoder struct {
	shape   Shape
	text    string
	openers openers
}

func (d *nodeDecoder) fail(reason string) *Error {
	return &Error{Shape: d.shape, Text: d.text, Reason: reason}
}

func (d *nodeDecoder) mismatch(node *yaml.Node) *Error {
	return d.fail("got " + describe(node))
}

func (d *nodeDecoder) value(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return d.scalar(node)
	case yaml.SequenceNode:
		return d.sequence(node)
	case yaml.MappingNode:
		if !d.openers.braces[at(node)] {
			return nil, d.fail("key: value pairs must be inside braces")
		}
		if isSetForm(node) {
			return d.set(node)
		}
		return d.mapping(node)
	default:
		return nil, d.fail("unexpected " + describe(node))
	}
}

// Unquoted scalars are limited to numbers, True, False, and None. YAML's
// other plain forms (bare words, null, ~, yes) are rejected.
var (
	intPattern = regexp.MustCompile(`^[-+]?(0[xX](_?[0-9a-fA-F])+|0[oO](_?[0-7])+|0[bB](_?[01])+|[1-9](_?[0-9])*|0(_?0)*)$`)

	floatPattern = regexp.MustCompile(`^[-+]?(` +
		digits + `\.(` + digits + `)?(` + exponent + `)?|` +
		`\.` + digits + `(` + exponent + `)?|` +
		digits + exponent + `)$`)
)

const (
	digits   = `[0-9](_?[0-9])*`
	exponent = `[eE][-+]?` + digits
)

func (d *nodeDecoder) scalar(node *yaml.Node) (any, error) {
	if node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		return node.Value, nil
	}

	switch text := node.Value; {
	case text == "None":
		return nil, nil
	case text == "True":
		return true, nil
	case text == "False":
		return false, nil
	case text == "":
		return nil, d.fail("missing value")
	case intPattern.MatchString(text):
		value, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 0, strconv.IntSize)
		if err != nil {
			return nil, &Error{Shape: d.shape, Text: d.text, Reason: fmt.Sprintf("invalid integer %q", text), Err: err}
		}
		return int(value), nil
	case floatPattern.MatchString(text):
		value, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
		if err != nil {
			return nil, &Error{Shape: d.shape, Text: d.text, Reason: fmt.Sprintf("invalid number %q", text), Err: err}
		}
		return value, nil
	default:
		return nil, d.fail(fmt.Sprintf("bare word %q is not a literal", text))
	}
}

func (d *nodeDecoder) sequence(node *yaml.Node) (any, error) {
	elements := make([]any, 0, len(node.Content))
	for _, child := range node.Content {
		element, err := d.value(child)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return elements, nil
}

func (d *nodeDecoder) mapping(node *yaml.Node) (any, error) {
	entries := make(map[string]any, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Kind != yaml.ScalarNode {
			return nil, d.fail("map keys must be scalars, got " + describe(key))
		}
		// Keys keep their text; decoding only checks they are literals.
		if _, err := d.scalar(key); err != nil {
			return nil, err
		}
		value, err := d.value(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		entries[key.Value] = value
	}
	return entries, nil
}

// tupleKey stands in for a tuple element when removing set duplicates.
type tupleKey string

func (d *nodeDecoder) set(node *yaml.Node) (any, error) {
	elements := make([]any, 0, len(node.Content)/2)
	seen := make(map[any]bool, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		element, err := d.hashable(node.Content[i])
		if err != nil {
			return nil, err
		}
		var key any = element
		if tuple, ok := element.([]any); ok {
			key = tupleKey(fmt.Sprintf("%#v", tuple))
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		elements = append(elements, element)
	}
	return elements, nil
}

// hashable decodes a set element: a scalar, or a tuple of hashable
// elements.
func (d *nodeDecoder) hashable(node *yaml.Node) (any, error) {
	switch {
	case node.Kind == yaml.ScalarNode:
		return d.scalar(node)
	case node.Kind == yaml.SequenceNode && d.openers.tuples[at(node)]:
		elements := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			element, err := d.hashable(child)
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
		}
		return elements, nil
	default:
		return nil, d.fail("set elements must be hashable, got " + describe(node))
	}
}

func describe(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		if node.Style&yaml.FlowStyle == 0 {
			return "a block sequence"
		}
		return "a list"
	case yaml.MappingNode:
		if node.Style&yaml.FlowStyle == 0 {
			return "a block mapping"
		}
		if isSetForm(node) {
			return "a set"
		}
		return "a map"
	case yaml.ScalarNode:
		return fmt.Sprintf("scalar %q", node.Value)
	case yaml.AliasNode:
		return "an alias"
	default:
		return "an unknown construct"
	}
}
