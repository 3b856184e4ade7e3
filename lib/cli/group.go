// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"maps"
	"path/filepath"
)

// Group defines one level of a command tree.
type Group struct {
	// Description is shown at the top of the group's help and, by its
	// first line, in the parent's command list.
	Description string

	// ArgDescriptions maps parameter names to help text for every
	// operation at this level and below. Entries here override the
	// same names inherited from enclosing groups.
	ArgDescriptions map[string]string

	Members []Member
}

// Member is one named entry of a group.
type Member struct {
	// Name is what users type, compared case-insensitively. Names
	// starting with "_" are private and never dispatched to.
	Name string

	Target Target
}

// Target is what a command name resolves to: an [*Operation] or a
// [GroupFactory]. No other implementations exist.
type Target interface {
	isTarget()
}

// GroupFactory builds a nested group's definition. Dispatch calls it
// only when a command token selects the group; help rendering calls it
// to read the description. Factories must not have side effects.
type GroupFactory func() *Group

func (GroupFactory) isTarget() {}

// CommandGroup is the runtime state of one dispatch level. The root is
// level 1 and reads its command token from argv[1]; each nested group
// reads the next token.
type CommandGroup struct {
	definition  *Group
	environment *Environment

	level  int
	parent *CommandGroup
	top    *CommandGroup

	// argDescriptions is the effective mapping: the enclosing group's
	// mapping overlaid with this group's own.
	argDescriptions map[string]string

	registry      *Registry
	registryError error
	registryBuilt bool
}

// NewCommandGroup returns the root dispatch level for definition. The
// root's effective description mapping is environment.Descriptions
// overlaid with definition.ArgDescriptions.
func NewCommandGroup(definition *Group, environment *Environment) *CommandGroup {
	if definition == nil {
		definition = &Group{}
	}
	if environment == nil {
		environment = &Environment{}
	}
	group := &CommandGroup{
		definition:      definition,
		environment:     environment,
		level:           1,
		argDescriptions: inheritDescriptions(environment.Descriptions, definition.ArgDescriptions),
	}
	group.top = group
	return group
}

// child returns the dispatch level for a nested group selected by the
// token at g's level.
func (g *CommandGroup) child(definition *Group) *CommandGroup {
	return &CommandGroup{
		definition:      definition,
		environment:     g.environment,
		level:           g.level + 1,
		parent:          g,
		top:             g.top,
		argDescriptions: inheritDescriptions(g.argDescriptions, definition.ArgDescriptions),
	}
}

// Level returns the argv index this group reads its command token from.
func (g *CommandGroup) Level() int { return g.level }

// Parent returns the enclosing group, or nil for the root.
func (g *CommandGroup) Parent() *CommandGroup { return g.parent }

// Top returns the root group.
func (g *CommandGroup) Top() *CommandGroup { return g.top }

// Description returns the group's description.
func (g *CommandGroup) Description() string { return g.definition.Description }

// ArgDescriptions returns a copy of the effective description mapping.
func (g *CommandGroup) ArgDescriptions() map[string]string {
	return maps.Clone(g.argDescriptions)
}

// Environment returns the environment shared by every level.
func (g *CommandGroup) Environment() *Environment { return g.environment }

// Registry returns the group's command registry, building it on first
// use. The result, including a failure, is kept for the lifetime of
// the group.
func (g *CommandGroup) Registry() (*Registry, error) {
	if !g.registryBuilt {
		g.registry, g.registryError = NewRegistry(g.definition.Members, g.logger())
		g.registryBuilt = true
	}
	return g.registry, g.registryError
}

// Path returns the tokens that led to this group: the program name
// followed by each command token consumed above it.
func (g *CommandGroup) Path() []string {
	return commandPath(g.environment.Argv, g.level)
}

func (g *CommandGroup) logger() *slog.Logger {
	return g.environment.Log().With("level", g.level)
}

// commandPath returns argv[:count] with the program name reduced to its
// base name. Missing trailing tokens are left out.
func commandPath(argv []string, count int) []string {
	if len(argv) == 0 {
		return []string{"command"}
	}
	count = min(count, len(argv))
	path := make([]string, count)
	copy(path, argv[:count])
	path[0] = filepath.Base(path[0])
	return path
}

// inheritDescriptions overlays own on inherited. Neither input is
// modified.
func inheritDescriptions(inherited, own map[string]string) map[string]string {
	effective := make(map[string]string, len(inherited)+len(own))
	maps.Copy(effective, inherited)
	maps.Copy(effective, own)
	return effective
}
