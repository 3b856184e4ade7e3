// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"sort"
	"strings"
)

// CommandEntry is one resolvable command of a group: the name as
// declared and the operation or nested group it reaches.
type CommandEntry struct {
	DisplayName string
	Target      Target
}

// Registry maps folded command names to entries for one group level.
type Registry struct {
	entries map[string]CommandEntry
	// declared holds every public name seen, registered or not, so
	// that duplicates are caught even when one side is invalid.
	declared map[string]string
}

// NewRegistry builds the registry for a group's members.
//
// Names are folded to lower case. Members whose names start with "_"
// are private and never registered. Operations that fail [Inspect] and
// members with no target are left out with a warning on logger. Two
// members that fold to the same name make the whole group invalid: the
// result is a *DuplicateCommandNameError and no registry.
func NewRegistry(members []Member, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	registry := &Registry{
		entries:  make(map[string]CommandEntry, len(members)),
		declared: make(map[string]string, len(members)),
	}

	for _, member := range members {
		if member.Name == "" || strings.HasPrefix(member.Name, "_") {
			continue
		}
		folded := strings.ToLower(member.Name)

		if first, exists := registry.declared[folded]; exists {
			return nil, &DuplicateCommandNameError{Name: folded, First: first, Second: member.Name}
		}
		registry.declared[folded] = member.Name

		switch target := member.Target.(type) {
		case *Operation:
			if _, err := Inspect(target); err != nil {
				logger.Warn("excluding command with invalid signature",
					"command", member.Name,
					"error", err,
				)
				continue
			}
		case GroupFactory:
			if target == nil {
				logger.Warn("excluding group with nil factory", "command", member.Name)
				continue
			}
		default:
			logger.Warn("excluding command with no target", "command", member.Name)
			continue
		}

		registry.entries[folded] = CommandEntry{DisplayName: member.Name, Target: member.Target}
	}

	logger.Debug("command registry built", "commands", len(registry.entries))
	return registry, nil
}

// Lookup resolves a command token. Tokens are folded to lower case;
// tokens starting with "_" never resolve.
func (r *Registry) Lookup(token string) (CommandEntry, bool) {
	if strings.HasPrefix(token, "_") {
		return CommandEntry{}, false
	}
	entry, ok := r.entries[strings.ToLower(token)]
	return entry, ok
}

// Entries returns every entry sorted by folded name.
func (r *Registry) Entries() []CommandEntry {
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]CommandEntry, len(keys))
	for i, key := range keys {
		entries[i] = r.entries[key]
	}
	return entries
}

// Names returns the display names in the order of [Registry.Entries].
func (r *Registry) Names() []string {
	entries := r.Entries()
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.DisplayName
	}
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.entries) }
