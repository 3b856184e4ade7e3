// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration for command
// manifests.
//
// A manifest describes a command tree for other programs: shell
// completion generators, documentation builders, wrappers that
// validate a command line before running it. JSON and YAML renderings
// are for people and scripts; CBOR is the compact form for tools that
// cache or compare manifests. The encoder uses Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. The same command tree always
// produces identical bytes, so two manifests can be compared with
// bytes.Equal.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(manifest)
//	err = codec.Unmarshal(data, &manifest)
//
// For writing straight to an output stream:
//
//	encoder := codec.NewEncoder(os.Stdout)
//
// [Diagnose] renders encoded bytes in CBOR diagnostic notation for
// debugging.
//
// # Struct Tags
//
// Manifest types carry `json` tags only. fxamacker/cbor v2 reads
// `json` tags as fallback when `cbor` tags are absent, so a single tag
// controls field naming and omitempty for both formats.
package codec
