// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/bureau-foundation/cmdgroup/lib/cli"
	"github.com/bureau-foundation/cmdgroup/lib/version"
)

func versionOperation() *cli.Operation {
	return &cli.Operation{
		Doc: "Print version information.",
		Params: []cli.Param{
			{Name: "detail", Kind: cli.KindBool, Doc: "include the Go version and platform"},
			{Name: "json", Kind: cli.KindBool, Doc: "print the build description as JSON"},
		},
		Run: func(ctx context.Context, args cli.Args) error {
			output := cli.EnvironmentFrom(ctx).Output()
			build := version.Current()

			switch {
			case args.Bool("json"):
				return cli.WriteJSON(output, build)
			case args.Bool("detail"):
				_, err := fmt.Fprintln(output, build.Detail())
				return err
			default:
				_, err := fmt.Fprintln(output, build.String())
				return err
			}
		},
	}
}
