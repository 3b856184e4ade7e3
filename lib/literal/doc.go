// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package literal parses structured literals typed on a command line
// into plain Go values without evaluating anything.
//
// Four shapes are supported:
//
//   - [List] and [Tuple]: "[1, 2, 3]" or "(1, 2, 3)", decoded as []any.
//   - [Map]: "{'region': 'us-east', 'replicas': 3}", decoded as
//     map[string]any keyed by the literal text of each key.
//   - [Set]: "{'a', 'b'}" or "set()", decoded as []any with duplicates
//     removed in order of first appearance.
//
// Element values are scalars (string, int, float64, bool, nil) or
// nested lists, tuples, maps, and sets. Nested sets decode as []any like
// top-level ones. Set elements must be scalars or tuples of them.
//
// Strings must be quoted. The only unquoted scalars are numbers
// (decimal, 0x, 0o, 0b, with optional underscores), True, False, and
// None; a bare word such as foo, null, or ~ is an error. "key: value"
// pairs are only accepted inside braces.
//
// Decoding goes through a yaml.v3 node tree rather than a reflective
// unmarshal, so the parser can refuse everything a literal must never
// do: anchors, aliases, and explicit type tags are rejected before any
// value is built. A literal whose top-level shape does not match the
// requested [Shape] is an error, not a silent conversion.
//
// Failures are reported as [*Error], which carries the input text, the
// requested shape, and the underlying decoder error when there is one.
//
// This package depends on no other cmdgroup packages.
package literal
