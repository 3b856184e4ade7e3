// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cmdgroup/lib/cli"
	"github.com/bureau-foundation/cmdgroup/lib/config"
)

func configGroup() *cli.Group {
	return &cli.Group{
		Description: `Show and validate configuration.

The configuration file is named by CMDGROUP_CONFIG. Without it the
built-in defaults apply.`,
		ArgDescriptions: map[string]string{
			"format": "output encoding: yaml or json",
			"file":   "configuration file to validate (.yaml, .json, or .jsonc)",
		},
		Members: []cli.Member{
			{Name: "show", Target: configShowOperation()},
			{Name: "check", Target: configCheckOperation()},
		},
	}
}

func configShowOperation() *cli.Operation {
	return &cli.Operation{
		Doc: "Print the effective configuration.",
		Params: []cli.Param{
			{Name: "format", Kind: cli.KindString, Default: "yaml", HasDefault: true},
		},
		Run: func(ctx context.Context, args cli.Args) error {
			environment := cli.EnvironmentFrom(ctx)
			configuration := environment.Config
			if configuration == nil {
				configuration = config.Default()
			}

			var buffer bytes.Buffer
			format := args.String("format")
			switch format {
			case "yaml":
				encoder := yaml.NewEncoder(&buffer)
				encoder.SetIndent(2)
				if err := encoder.Encode(configuration); err != nil {
					return err
				}
				if err := encoder.Close(); err != nil {
					return err
				}
			case "json":
				if err := cli.WriteJSON(&buffer, configuration); err != nil {
					return err
				}
			default:
				return cli.Validation("unknown format %q (want yaml or json)", format)
			}
			return writeHighlighted(environment, buffer.String(), format)
		},
	}
}

func configCheckOperation() *cli.Operation {
	return &cli.Operation{
		Doc: `Validate a configuration file without using it.

Unknown keys, invalid values, and syntax errors are all reported. The
exit code is 0 only for a valid file.`,
		Params: []cli.Param{
			{Name: "file", Kind: cli.KindString},
		},
		Run: func(ctx context.Context, args cli.Args) error {
			path := args.String("file")
			if _, err := config.LoadFile(path); err != nil {
				return cli.Validation("%s: %v", path, err)
			}
			_, err := fmt.Fprintf(cli.EnvironmentFrom(ctx).Output(), "%s: ok\n", path)
			return err
		},
	}
}
