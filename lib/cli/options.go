// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "strings"

// OptionNamer hands out option strings for the arguments of one parser
// build. Every argument gets a long option; the short option "-x" goes
// to the first argument whose name starts with x, in declaration order.
// A namer is used for exactly one parser and then discarded, so short
// options never leak between commands.
type OptionNamer struct {
	claimed map[byte]bool
}

// NewOptionNamer returns a namer with "-h" already claimed by help.
func NewOptionNamer() *OptionNamer {
	return &OptionNamer{claimed: map[byte]bool{'h': true}}
}

// Assign returns the long option for name and, if its first character
// is still free, the short option. It claims the short option it
// returns.
func (n *OptionNamer) Assign(name string) (long, short string) {
	long = "--" + strings.ReplaceAll(name, "_", "-")
	if name == "" {
		return long, ""
	}
	first := name[0]
	if n.claimed[first] {
		return long, ""
	}
	n.claimed[first] = true
	return long, "-" + string(first)
}
