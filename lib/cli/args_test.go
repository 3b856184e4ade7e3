// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgs(t *testing.T) {
	args := NewArgs(
		map[string]any{
			"name":    "web",
			"count":   0,
			"ratio":   0.75,
			"force":   true,
			"ids":     []any{1, 2},
			"labels":  map[string]any{"tier": "front"},
			"timeout": "not an int",
		},
		map[string]any{"count": 5, "region": "eu"},
	)

	if got := args.String("name"); got != "web" {
		t.Errorf("String(name) = %q, want web", got)
	}
	if got := args.Int("count"); got != 0 {
		t.Errorf("Int(count) = %d, want the supplied 0", got)
	}
	if got := args.Float("ratio"); got != 0.75 {
		t.Errorf("Float(ratio) = %v, want 0.75", got)
	}
	if !args.Bool("force") {
		t.Error("Bool(force) = false, want true")
	}
	if diff := cmp.Diff([]any{1, 2}, args.List("ids")); diff != "" {
		t.Errorf("List(ids) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"tier": "front"}, args.Map("labels")); diff != "" {
		t.Errorf("Map(labels) mismatch (-want +got):\n%s", diff)
	}

	// Defaults apply only to what was not supplied.
	if got := args.String("region"); got != "eu" {
		t.Errorf("String(region) = %q, want the default eu", got)
	}
	if args.Has("region") {
		t.Error("Has(region) = true, want false for a default")
	}
	if _, ok := args.Lookup("region"); ok {
		t.Error("Lookup(region) ok = true, want false for a default")
	}

	// Wrong types and unknown names read as zero values.
	if got := args.Int("timeout"); got != 0 {
		t.Errorf("Int(timeout) = %d, want 0 for a string value", got)
	}
	if got := args.Value("missing"); got != nil {
		t.Errorf("Value(missing) = %#v, want nil", got)
	}

	want := []string{"count", "force", "ids", "labels", "name", "ratio", "timeout"}
	if diff := cmp.Diff(want, args.Supplied()); diff != "" {
		t.Errorf("Supplied() mismatch (-want +got):\n%s", diff)
	}
}

func TestArgs_Zero(t *testing.T) {
	var args Args
	if args.Has("anything") {
		t.Error("zero Args reports a supplied value")
	}
	if got := args.String("anything"); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
	if got := args.Supplied(); len(got) != 0 {
		t.Errorf("Supplied() = %v, want empty", got)
	}
}
