// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/bureau-foundation/cmdgroup/lib/cli"
	"github.com/bureau-foundation/cmdgroup/lib/codec"
)

func schemaOperation() *cli.Operation {
	return &cli.Operation{
		Doc: `Print the manifest of this program's command tree.

The manifest lists every command path with its arguments, option
strings, kinds, defaults, and effective descriptions. CBOR output uses
Core Deterministic Encoding; add --diagnose to print it in diagnostic
notation instead of raw bytes. --digest prints only the manifest's
BLAKE3 digest, which changes whenever the tree does.`,
		Params: []cli.Param{
			{Name: "format", Kind: cli.KindString, Default: "json", HasDefault: true},
			{Name: "diagnose", Kind: cli.KindBool, Doc: "print CBOR as diagnostic notation"},
			{Name: "digest", Kind: cli.KindBool, Doc: "print the manifest digest instead of the manifest"},
		},
		Run: func(ctx context.Context, args cli.Args) error {
			environment := cli.EnvironmentFrom(ctx)

			program := "cmdgroup"
			if len(environment.Argv) > 0 {
				program = filepath.Base(environment.Argv[0])
			}
			manifest, err := cli.BuildManifest(program, rootGroup(), environment.Descriptions)
			if err != nil {
				return err
			}

			if args.Bool("digest") {
				digest, err := manifest.Digest()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(environment.Output(), digest)
				return err
			}

			format := cli.ManifestFormat(args.String("format"))
			if args.Bool("diagnose") && format != cli.ManifestCBOR {
				return cli.Validation("--diagnose requires --format cbor")
			}

			var buffer bytes.Buffer
			if err := cli.WriteManifest(&buffer, manifest, format); err != nil {
				return err
			}

			switch {
			case format == cli.ManifestCBOR && args.Bool("diagnose"):
				notation, err := codec.Diagnose(buffer.Bytes())
				if err != nil {
					return fmt.Errorf("diagnose manifest: %w", err)
				}
				_, err = fmt.Fprintln(environment.Output(), notation)
				return err
			case format == cli.ManifestCBOR:
				_, err := environment.Output().Write(buffer.Bytes())
				return err
			default:
				return writeHighlighted(environment, buffer.String(), string(format))
			}
		},
	}
}
