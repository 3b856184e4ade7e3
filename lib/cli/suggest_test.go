// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSuggestCommand(t *testing.T) {
	names := []string{"Deploy", "release", "rollback", "status"}

	tests := []struct {
		unknown string
		want    string
	}{
		{"deplyo", "Deploy"},
		{"DEPLOI", "Deploy"},
		{"relase", "release"},
		{"rollbak", "rollback"},
		{"stat", "status"},
		{"xyzzyplugh", ""},
		{"", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.unknown, names); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.unknown, got, test.want)
		}
	}
}

func TestSuggestCommand_NoCandidates(t *testing.T) {
	if got := suggestCommand("deploy", nil); got != "" {
		t.Errorf("suggestCommand() = %q, want empty", got)
	}
}

func testFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.StringP("target", "t", "", "")
	flagSet.Int("replicas", 1, "")
	flagSet.BoolP("dry-run", "d", false, "")
	return flagSet
}

func TestSuggestOption(t *testing.T) {
	flagSet := testFlagSet()

	tests := []struct {
		option string
		want   string
	}{
		{"--replica", "--replicas"},
		{"--taget", "--target"},
		{"--dryrun", "--dry-run"},
		{"--completely-different", ""},
		{"-x", ""},
	}
	for _, test := range tests {
		if got := suggestOption(test.option, flagSet); got != test.want {
			t.Errorf("suggestOption(%q) = %q, want %q", test.option, got, test.want)
		}
	}
}

func TestUnknownOption(t *testing.T) {
	flagSet := testFlagSet()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown long", []string{"--target", "prod", "--zone", "a"}, "--zone"},
		{"unknown long with value", []string{"--zone=a"}, "--zone"},
		{"value that looks like an option", []string{"--target", "--zone"}, ""},
		{"unknown short", []string{"-x"}, "-x"},
		{"unknown in a short cluster", []string{"-dx"}, "-x"},
		{"short value skipped", []string{"-t", "-x"}, ""},
		{"after terminator", []string{"--", "--zone"}, ""},
		{"all known", []string{"--replicas", "2", "-d"}, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := unknownOption(test.args, flagSet); got != test.want {
				t.Errorf("unknownOption(%q) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
