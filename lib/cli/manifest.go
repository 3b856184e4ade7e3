// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/hex"
	"io"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cmdgroup/lib/codec"
)

// maxManifestDepth bounds the walk through group factories. Dispatch
// only ever instantiates the groups a command line selects, so a
// factory may legitimately return a tree that contains itself; the
// manifest walk instantiates everything and must stop somewhere.
const maxManifestDepth = 32

// manifestDomainKey keys the BLAKE3 hash behind [Manifest.Digest]: the
// ASCII domain name, zero-padded to 32 bytes.
var manifestDomainKey = [32]byte{
	'c', 'm', 'd', 'g', 'r', 'o', 'u', 'p', '.', 'm', 'a', 'n', 'i', 'f', 'e', 's',
	't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Manifest describes a whole command tree for other programs: shell
// completion generators, documentation builders, wrappers that check
// a command line before running it.
type Manifest struct {
	// Program is the program name that prefixes every command path.
	Program string `json:"program" yaml:"program"`

	// Description is the root group's description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Commands lists every group and operation, depth first, sorted by
	// name within each group.
	Commands []ManifestCommand `json:"commands" yaml:"commands"`
}

// ManifestCommand is one group or operation in a [Manifest].
type ManifestCommand struct {
	// Path is the sequence of command tokens below the program name.
	Path []string `json:"path" yaml:"path"`

	// Summary is the first line of the documentation, as listed in the
	// parent's help.
	Summary string `json:"summary" yaml:"summary"`

	// Group is true for nested command groups, which have no arguments
	// of their own.
	Group bool `json:"group,omitempty" yaml:"group,omitempty"`

	// Arguments are the operation's arguments in declaration order.
	Arguments []ManifestArgument `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// ManifestArgument is one argument of an operation in a [Manifest].
type ManifestArgument struct {
	Name  string `json:"name" yaml:"name"`
	Long  string `json:"long" yaml:"long"`
	Short string `json:"short,omitempty" yaml:"short,omitempty"`

	// Kind is the declared kind name ("int", "list", ...).
	Kind string `json:"kind" yaml:"kind"`

	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// TakesValue is false for flags.
	TakesValue bool `json:"takes_value" yaml:"takes_value"`

	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Description is the effective description, after inheritance.
	Description string `json:"description" yaml:"description"`
}

// BuildManifest walks the tree rooted at root, instantiating every
// nested group through its factory, and describes every command.
// descriptions is the base description mapping, as in
// [Environment].Descriptions. The walk applies the same registration
// rules as dispatch: private and invalid commands are left out, and a
// duplicate name fails the whole manifest.
func BuildManifest(program string, root *Group, descriptions map[string]string) (*Manifest, error) {
	if root == nil {
		root = &Group{}
	}
	manifest := &Manifest{
		Program:     program,
		Description: root.Description,
		Commands:    []ManifestCommand{},
	}
	effective := inheritDescriptions(descriptions, root.ArgDescriptions)
	if err := manifest.walk(nil, root, effective, 1); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) walk(path []string, definition *Group, descriptions map[string]string, depth int) error {
	registry, err := NewRegistry(definition.Members, nil)
	if err != nil {
		return err
	}

	for _, entry := range registry.Entries() {
		commandPath := append(append([]string(nil), path...), entry.DisplayName)

		switch target := entry.Target.(type) {
		case GroupFactory:
			nested := target()
			if nested == nil {
				return Internal("command %q: group factory returned no group", entry.DisplayName)
			}
			if depth >= maxManifestDepth {
				return Internal("command %q: groups nested deeper than %d", entry.DisplayName, maxManifestDepth)
			}
			m.Commands = append(m.Commands, ManifestCommand{
				Path:    commandPath,
				Summary: summary(nested.Description),
				Group:   true,
			})
			nestedDescriptions := inheritDescriptions(descriptions, nested.ArgDescriptions)
			if err := m.walk(commandPath, nested, nestedDescriptions, depth+1); err != nil {
				return err
			}

		case *Operation:
			parser, err := NewCommandParser(append([]string{m.Program}, commandPath...), target, descriptions)
			if err != nil {
				return err
			}
			command := ManifestCommand{
				Path:    commandPath,
				Summary: summary(target.Doc),
			}
			for _, argument := range parser.Arguments() {
				manifestArgument := ManifestArgument{
					Name:        argument.Name,
					Long:        argument.Long,
					Short:       argument.Short,
					Kind:        argument.Kind.String(),
					Required:    argument.Required,
					TakesValue:  argument.Action == ActionValue,
					Description: argument.Description,
				}
				if argument.HasDefault {
					manifestArgument.Default = argument.Default
				}
				command.Arguments = append(command.Arguments, manifestArgument)
			}
			m.Commands = append(m.Commands, command)
		}
	}
	return nil
}

// Digest returns the hex BLAKE3 keyed hash of the manifest's
// deterministic CBOR encoding. Equal trees give equal digests, so
// generated completion scripts and docs can be cached on it.
func (m *Manifest) Digest() (string, error) {
	data, err := codec.Marshal(m)
	if err != nil {
		return "", err
	}
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(manifestDomainKey[:])
	if err != nil {
		return "", err
	}
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// ManifestFormat names an encoding for [WriteManifest].
type ManifestFormat string

const (
	ManifestJSON ManifestFormat = "json"
	ManifestYAML ManifestFormat = "yaml"
	ManifestCBOR ManifestFormat = "cbor"
)

// WriteManifest encodes manifest to w. JSON is indented, YAML uses
// two-space indentation, and CBOR uses deterministic encoding.
func WriteManifest(w io.Writer, manifest *Manifest, format ManifestFormat) error {
	switch format {
	case ManifestJSON:
		return WriteJSON(w, manifest)
	case ManifestYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(manifest); err != nil {
			return err
		}
		return encoder.Close()
	case ManifestCBOR:
		return codec.NewEncoder(w).Encode(manifest)
	default:
		return Validation("unknown manifest format %q (want json, yaml, or cbor)", format)
	}
}
