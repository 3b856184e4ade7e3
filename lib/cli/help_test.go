// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/cmdgroup/lib/testutil"
)

func TestCommandGroup_WriteHelp_Layout(t *testing.T) {
	root := &Group{
		Description: "Manage releases.",
		Members: []Member{
			{Name: "rollback", Target: (&recorder{}).operation("Roll back.\nSecond line.")},
			{Name: "deploy", Target: deployOperation(&recorder{})},
			{Name: "release", Target: GroupFactory(func() *Group {
				return &Group{Description: "\nWork with releases."}
			})},
			{Name: "undocumented", Target: (&recorder{}).operation("")},
		},
	}
	environment := &Environment{Argv: []string{"/opt/bin/prog"}, Color: ColorNever}

	var buffer bytes.Buffer
	NewCommandGroup(root, environment).WriteHelp(&buffer)

	// The longest name is 12 characters; every summary starts at column
	// 2 + 12 + 6.
	want := `Manage releases.

Usage:
  prog <command> [<args>]

Available commands:
  deploy            Deploy a release.
  release           Work with releases.
  rollback          Roll back.
  undocumented      FIXME: UNDOCUMENTED

Run 'prog <command> --help' for more information on a command.
`
	if got := buffer.String(); got != want {
		t.Errorf("help mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCommandGroup_WriteHelp_EmptyGroup(t *testing.T) {
	environment := &Environment{Argv: []string{"prog"}, Color: ColorNever}

	var buffer bytes.Buffer
	NewCommandGroup(&Group{}, environment).WriteHelp(&buffer)

	if got, want := buffer.String(), "Usage:\n  prog <command> [<args>]\n"; got != want {
		t.Errorf("help = %q, want %q", got, want)
	}
}

func TestCommandGroup_WriteHelp_Color(t *testing.T) {
	root := &Group{Members: []Member{{Name: "deploy", Target: deployOperation(&recorder{})}}}

	var plain, styled bytes.Buffer
	NewCommandGroup(root, &Environment{Argv: []string{"prog"}, Color: ColorNever}).WriteHelp(&plain)
	NewCommandGroup(root, &Environment{Argv: []string{"prog"}, Color: ColorAlways}).WriteHelp(&styled)

	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("ColorNever output contains escape sequences: %q", plain.String())
	}
	if !strings.Contains(styled.String(), "\x1b[") {
		t.Errorf("ColorAlways output has no escape sequences: %q", styled.String())
	}
}

func TestCommandParser_WriteHelp(t *testing.T) {
	parser := newDeployParser(t)

	var buffer bytes.Buffer
	parser.WriteHelp(&buffer, "Deploy a release.", ColorNever, 0)
	help := buffer.String()

	testutil.RequireContains(t, help, []string{
		"Deploy a release.\n\nUsage:\n  prog deploy [<args>]\n",
		"Required arguments:\n",
		"Options:\n",
	}, "command help")

	// Required arguments are listed under their own heading, and help
	// leads the options.
	required := help[strings.Index(help, "Required arguments:"):strings.Index(help, "Options:")]
	testutil.RequireContains(t, required, []string{"--target"}, "required section")
	testutil.RequireNotContains(t, required, []string{"--replicas", "--help"}, "required section")

	options := help[strings.Index(help, "Options:"):]
	if strings.Index(options, "--help") > strings.Index(options, "--replicas") {
		t.Errorf("--help should be the first option:\n%s", options)
	}
	for _, name := range []string{"--replicas", "--dry-run", "--zones"} {
		if !strings.Contains(options, name) {
			t.Errorf("options section missing %s:\n%s", name, options)
		}
	}
}

func TestCommandParser_WriteHelp_NoRequired(t *testing.T) {
	operation := (&recorder{}).operation("", Param{Name: "verbose", Kind: KindBool})
	parser, err := NewCommandParser([]string{"prog", "status"}, operation, nil)
	if err != nil {
		t.Fatalf("NewCommandParser() error: %v", err)
	}

	var buffer bytes.Buffer
	parser.WriteHelp(&buffer, "", ColorNever, 0)

	testutil.RequireNotContains(t, buffer.String(), []string{"Required arguments:"}, "no required arguments")
	if !strings.HasPrefix(buffer.String(), "Usage:") {
		t.Errorf("help without a doc should start with the usage line:\n%s", buffer.String())
	}
}

func TestCommandParser_WriteUsage(t *testing.T) {
	var buffer bytes.Buffer
	newDeployParser(t).WriteUsage(&buffer)
	if got, want := buffer.String(), "Usage: prog deploy [<args>]\n"; got != want {
		t.Errorf("usage = %q, want %q", got, want)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"One line.", "One line."},
		{"\n\n  Indented first line.\nSecond.", "Indented first line."},
		{"", Undocumented},
		{"   \n\t\n", Undocumented},
	}
	for _, test := range tests {
		if got := summary(test.text); got != test.want {
			t.Errorf("summary(%q) = %q, want %q", test.text, got, test.want)
		}
	}
}

func TestCommandGroup_WriteHelp_WrapsDescription(t *testing.T) {
	root := &Group{Description: "Deploy releases across every region the fleet controller knows about."}
	environment := &Environment{Argv: []string{"prog"}, Color: ColorNever, Width: 24}

	var buffer bytes.Buffer
	NewCommandGroup(root, environment).WriteHelp(&buffer)

	description := buffer.String()[:strings.Index(buffer.String(), "Usage:")]
	lines := strings.Split(strings.TrimSpace(description), "\n")
	if len(lines) < 2 {
		t.Fatalf("description not wrapped at width 24:\n%s", description)
	}
	for _, line := range lines {
		if len(line) > 24 {
			t.Errorf("line %q is wider than 24 columns", line)
		}
	}
}

func TestCommandGroup_WriteHelp_WideNames(t *testing.T) {
	root := &Group{Members: []Member{
		{Name: "déployer", Target: (&recorder{}).operation("French.")},
		{Name: "deploy", Target: (&recorder{}).operation("English.")},
	}}
	environment := &Environment{Argv: []string{"prog"}, Color: ColorNever}

	var buffer bytes.Buffer
	NewCommandGroup(root, environment).WriteHelp(&buffer)

	// "déployer" is eight cells but nine bytes; both summaries must
	// start in the same column.
	testutil.RequireContains(t, buffer.String(), []string{
		"  deploy        English.\n",
		"  déployer      French.\n",
	}, "aligned command list")
}
