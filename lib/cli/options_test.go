// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "testing"

func TestOptionNamer_Assign(t *testing.T) {
	namer := NewOptionNamer()

	tests := []struct {
		name      string
		wantLong  string
		wantShort string
	}{
		{"verbose", "--verbose", "-v"},
		{"version", "--version", ""},
		{"dry_run", "--dry-run", "-d"},
		{"host", "--host", ""},
		{"Verbose", "--Verbose", "-V"},
		{"max_retry_count", "--max-retry-count", "-m"},
	}

	for _, test := range tests {
		long, short := namer.Assign(test.name)
		if long != test.wantLong {
			t.Errorf("Assign(%q) long = %q, want %q", test.name, long, test.wantLong)
		}
		if short != test.wantShort {
			t.Errorf("Assign(%q) short = %q, want %q", test.name, short, test.wantShort)
		}
	}
}

func TestOptionNamer_Independent(t *testing.T) {
	first := NewOptionNamer()
	second := NewOptionNamer()

	if _, short := first.Assign("name"); short != "-n" {
		t.Fatalf("first namer short = %q, want -n", short)
	}
	if _, short := second.Assign("namespace"); short != "-n" {
		t.Errorf("second namer short = %q, want -n (claims must not leak between namers)", short)
	}
}
