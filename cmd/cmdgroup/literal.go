// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"

	"github.com/bureau-foundation/cmdgroup/lib/cli"
	"github.com/bureau-foundation/cmdgroup/lib/literal"
)

func literalGroup() *cli.Group {
	return &cli.Group{
		Description: `Parse structured literals the way list, tuple, map, and set arguments do.`,
		ArgDescriptions: map[string]string{
			"kind": "literal shape: list, tuple, map (or dict), or set",
			"text": "the literal, e.g. \"[1, 2]\" or \"{'a': 1}\"",
		},
		Members: []cli.Member{
			{Name: "parse", Target: literalParseOperation()},
		},
	}
}

func literalParseOperation() *cli.Operation {
	return &cli.Operation{
		Doc: `Parse a literal and print the value as JSON.

Sets print as arrays in order of first appearance. Map keys print as
the text they were written with.`,
		Params: []cli.Param{
			{Name: "kind", Kind: cli.KindString},
			{Name: "text", Kind: cli.KindString},
			{Name: "pretty", Kind: cli.KindBool},
		},
		Run: func(ctx context.Context, args cli.Args) error {
			shape, err := literal.ParseShape(args.String("kind"))
			if err != nil {
				return cli.Validation("%v", err)
			}
			value, err := literal.Parse(shape, args.String("text"))
			if err != nil {
				return err
			}

			output := cli.EnvironmentFrom(ctx).Output()
			if args.Bool("pretty") {
				return cli.WriteJSON(output, value)
			}
			return json.NewEncoder(output).Encode(value)
		},
	}
}
