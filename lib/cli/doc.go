// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli dispatches multi-level command lines to typed operations.
//
// A program declares its commands as a tree of [Group] values. Each
// [Member] of a group names either an [*Operation] (a leaf with a typed
// [Param] list and a Run function) or a [GroupFactory] that builds a
// nested group on demand. [Main] loads configuration, wraps the
// process streams in an [Environment], and hands argv to the root
// [CommandGroup]:
//
//	cli.Main(&cli.Group{
//	    Description: "Manage releases.",
//	    Members: []cli.Member{
//	        {Name: "deploy", Target: deployOperation},
//	        {Name: "release", Target: cli.GroupFactory(releaseGroup)},
//	    },
//	})
//
// Each dispatch level reads one command token (argv[1] at the root,
// argv[2] one level down, and so on), folds it to lower case, and looks
// it up in the group's [Registry]. A group recurses; an operation gets
// a [CommandParser] built from its parameters, which binds the
// remaining tokens with pflag and hands the resulting [Args] to Run.
//
// Parameters map to options mechanically: "dry_run" becomes
// --dry-run, and the first parameter starting with each letter gets
// the matching short option (-h belongs to help). A parameter without
// a default is required; boolean parameters are always optional flags.
// List, tuple, map, and set parameters accept structured literals
// parsed by lib/literal.
//
// Help text for a parameter comes from the nearest ArgDescriptions
// mapping that names it. Mappings inherit down the tree (a nested
// group's entries override its parent's), with the configuration's
// arg_descriptions as the base layer. A parameter's own Doc is the
// fallback, then the [Undocumented] placeholder.
//
// Dispatch renders its own failures, a usage line or full help followed
// by the diagnostic on stderr, and returns them as an [*ExitError]
// wrapping a typed error ([*UnrecognizedCommandError],
// [*MissingRequiredArgumentError], [*ArgumentTypeCoercionError], ...).
// Unknown commands and options get a Levenshtein "did you mean"
// suggestion (threshold: distance <= 3), implemented in suggest.go.
//
// [BuildManifest] walks a whole tree and describes every command for
// other tools; [WriteManifest] encodes it as JSON, YAML, or CBOR.
package cli
