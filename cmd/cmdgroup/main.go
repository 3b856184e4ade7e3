// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/bureau-foundation/cmdgroup/lib/cli"

func main() {
	cli.Main(rootGroup())
}

// rootGroup returns the full command tree. It is a function rather than
// a package variable so that the schema command can walk the tree it
// belongs to.
func rootGroup() *cli.Group {
	return &cli.Group{
		Description: `Inspect and exercise a cmdgroup command tree.

Every command below is dispatched by lib/cli: command names are
case-insensitive, options are derived from each operation's parameter
list, and "<command> --help" documents any of them.`,
		ArgDescriptions: map[string]string{
			"format": "output encoding: json, yaml, or cbor",
			"file":   "path of the file to read",
			"pretty": "indent the output",
		},
		Members: []cli.Member{
			{Name: "schema", Target: schemaOperation()},
			{Name: "literal", Target: cli.GroupFactory(literalGroup)},
			{Name: "config", Target: cli.GroupFactory(configGroup)},
			{Name: "version", Target: versionOperation()},
		},
	}
}
