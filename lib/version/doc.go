// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for cmdgroup
// binaries.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// For example:
//
//	go build -ldflags "-X github.com/bureau-foundation/cmdgroup/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When they are not injected, [Current] falls back to the VCS
// information the Go toolchain stamps into the binary, and otherwise
// reports "unknown" / "0.1.0-dev".
//
// [Build.String] is the one-line form for "version" output;
// [Build.Detail] adds the Go version and platform.
package version
