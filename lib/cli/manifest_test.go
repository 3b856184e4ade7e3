// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/cmdgroup/lib/codec"
	"github.com/bureau-foundation/cmdgroup/lib/testutil"
)

func manifestTree() *Group {
	return &Group{
		Description:     "Manage releases.",
		ArgDescriptions: map[string]string{"target": "where to deploy"},
		Members: []Member{
			{Name: "deploy", Target: deployOperation(&recorder{})},
			{Name: "_debug", Target: deployOperation(&recorder{})},
			{Name: "release", Target: GroupFactory(func() *Group {
				return &Group{
					Description:     "Work with releases.",
					ArgDescriptions: map[string]string{"name": "release name"},
					Members: []Member{
						{Name: "promote", Target: (&recorder{}).operation("Promote a release.",
							Param{Name: "name", Kind: KindString})},
					},
				}
			})},
		},
	}
}

func TestBuildManifest(t *testing.T) {
	manifest, err := BuildManifest("prog", manifestTree(), map[string]string{"zones": "from config"})
	if err != nil {
		t.Fatalf("BuildManifest() error: %v", err)
	}

	if manifest.Program != "prog" || manifest.Description != "Manage releases." {
		t.Errorf("header = %q, %q", manifest.Program, manifest.Description)
	}

	var paths []string
	for _, command := range manifest.Commands {
		paths = append(paths, strings.Join(command.Path, " "))
	}
	if diff := cmp.Diff([]string{"deploy", "release", "release promote"}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	deploy := manifest.Commands[0]
	if deploy.Summary != "Deploy a release." || deploy.Group {
		t.Errorf("deploy = %+v", deploy)
	}
	wantArguments := []ManifestArgument{
		{Name: "target", Long: "--target", Short: "-t", Kind: "string", Required: true, TakesValue: true, Description: "where to deploy"},
		{Name: "replicas", Long: "--replicas", Short: "-r", Kind: "int", TakesValue: true, Default: 1, Description: Undocumented},
		{Name: "dry_run", Long: "--dry-run", Short: "-d", Kind: "bool", Description: Undocumented},
		{Name: "zones", Long: "--zones", Short: "-z", Kind: "list", TakesValue: true, Description: "from config"},
	}
	if diff := cmp.Diff(wantArguments, deploy.Arguments); diff != "" {
		t.Errorf("deploy arguments mismatch (-want +got):\n%s", diff)
	}

	release := manifest.Commands[1]
	if !release.Group || release.Summary != "Work with releases." || len(release.Arguments) != 0 {
		t.Errorf("release = %+v", release)
	}

	promote := manifest.Commands[2]
	if got := promote.Arguments[0].Description; got != "release name" {
		t.Errorf("promote name description = %q, want the nested group's", got)
	}
}

func TestBuildManifest_Duplicate(t *testing.T) {
	root := &Group{Members: []Member{
		{Name: "a", Target: deployOperation(&recorder{})},
		{Name: "A", Target: deployOperation(&recorder{})},
	}}
	if _, err := BuildManifest("prog", root, nil); err == nil {
		t.Fatal("BuildManifest() succeeded with duplicate names")
	}
}

func TestBuildManifest_SelfReferencingGroup(t *testing.T) {
	var loop GroupFactory
	loop = func() *Group {
		return &Group{Members: []Member{{Name: "again", Target: loop}}}
	}
	root := &Group{Members: []Member{{Name: "again", Target: loop}}}

	_, err := BuildManifest("prog", root, nil)
	if err == nil {
		t.Fatal("BuildManifest() terminated without error on an endless tree")
	}
	if !strings.Contains(err.Error(), "nested deeper than") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestWriteManifest(t *testing.T) {
	manifest, err := BuildManifest("prog", manifestTree(), nil)
	if err != nil {
		t.Fatalf("BuildManifest() error: %v", err)
	}

	t.Run("json", func(t *testing.T) {
		var buffer bytes.Buffer
		if err := WriteManifest(&buffer, manifest, ManifestJSON); err != nil {
			t.Fatalf("WriteManifest() error: %v", err)
		}
		var decoded Manifest
		if err := json.Unmarshal(buffer.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, buffer.String())
		}
		if len(decoded.Commands) != len(manifest.Commands) {
			t.Errorf("decoded %d commands, want %d", len(decoded.Commands), len(manifest.Commands))
		}
		testutil.RequireContains(t, buffer.String(), []string{`"takes_value": true`, `"program": "prog"`}, "json manifest")
	})

	t.Run("yaml", func(t *testing.T) {
		var buffer bytes.Buffer
		if err := WriteManifest(&buffer, manifest, ManifestYAML); err != nil {
			t.Fatalf("WriteManifest() error: %v", err)
		}
		testutil.RequireContains(t, buffer.String(), []string{"program: prog\n", "commands:\n", "takes_value: true"}, "yaml manifest")
	})

	t.Run("cbor", func(t *testing.T) {
		var buffer bytes.Buffer
		if err := WriteManifest(&buffer, manifest, ManifestCBOR); err != nil {
			t.Fatalf("WriteManifest() error: %v", err)
		}
		var decoded map[string]any
		if err := codec.Unmarshal(buffer.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not CBOR: %v", err)
		}
		if decoded["program"] != "prog" {
			t.Errorf("program = %#v, want prog", decoded["program"])
		}
	})

	t.Run("unknown", func(t *testing.T) {
		err := WriteManifest(&bytes.Buffer{}, manifest, ManifestFormat("xml"))
		if err == nil {
			t.Fatal("WriteManifest(xml) succeeded")
		}
		if Category(err) != CategoryValidation {
			t.Errorf("category = %q, want validation", Category(err))
		}
	})
}

func TestManifest_Digest(t *testing.T) {
	first, err := BuildManifest("prog", manifestTree(), nil)
	if err != nil {
		t.Fatalf("BuildManifest() error: %v", err)
	}
	second, err := BuildManifest("prog", manifestTree(), nil)
	if err != nil {
		t.Fatalf("BuildManifest() error: %v", err)
	}

	firstDigest, err := first.Digest()
	if err != nil {
		t.Fatalf("Digest() error: %v", err)
	}
	if len(firstDigest) != 64 {
		t.Errorf("digest %q is not 32 hex-encoded bytes", firstDigest)
	}
	secondDigest, _ := second.Digest()
	if firstDigest != secondDigest {
		t.Errorf("identical trees digest differently: %s vs %s", firstDigest, secondDigest)
	}

	changed, err := BuildManifest("prog", manifestTree(), map[string]string{"zones": "changed"})
	if err != nil {
		t.Fatalf("BuildManifest() error: %v", err)
	}
	changedDigest, _ := changed.Digest()
	if changedDigest == firstDigest {
		t.Error("a description change does not change the digest")
	}
}
