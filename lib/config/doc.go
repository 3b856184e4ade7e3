// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for programs built on
// lib/cli.
//
// Configuration is loaded from a single file specified by either the
// CMDGROUP_CONFIG environment variable (via [Load]) or an explicit
// path (via [LoadFile]). There are no fallbacks, no ~/.config
// discovery, and no automatic file search. A program started without
// CMDGROUP_CONFIG runs on [Default].
//
// Files are YAML, except that names ending in .json or .jsonc are read
// as JSON with comments and trailing commas allowed. Unknown keys are
// rejected in both formats so that a typo never silently becomes a
// default.
//
// Variable expansion is performed on arg_descriptions values after
// loading: ${VAR} and ${VAR:-default} patterns are expanded from the
// process environment. No environment variable overrides a config
// value.
//
// Key exports:
//
//   - [Config] -- master struct with Help, Log, ArgDescriptions
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Parse] -- decoding from bytes, used by both
//
// This package depends on no other cmdgroup packages.
package config
