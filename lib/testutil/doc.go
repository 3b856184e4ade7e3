// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for cmdgroup packages.
//
// [Output] captures stdout and stderr of a dispatch so tests can assert
// on which stream help and diagnostics went to.
//
// [RequireContains], [RequireNotContains], and [RequireExitCode] check
// rendered output and exit codes, printing the full captured text on
// failure so a broken help layout is visible in the test log.
//
// [WriteFile] writes a fixture (usually a config file) into a
// per-test temporary directory.
//
// All helpers call t.Helper() so failures point at the calling test.
//
// This package has no cmdgroup-internal dependencies.
package testutil
