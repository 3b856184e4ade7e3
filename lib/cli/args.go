// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "sort"

// Args holds the arguments bound for one operation invocation.
//
// A value-taking argument the user did not supply is absent: Lookup
// reports false for it, while the typed accessors fall back to the
// declared default and then to the zero value. This keeps "--replicas 0"
// distinguishable from omitting --replicas. Flags are always present,
// false when omitted.
type Args struct {
	supplied map[string]any
	defaults map[string]any
}

// NewArgs builds an Args from already-converted values. Dispatch
// builds Args through [CommandParser.Parse]; NewArgs is for calling an
// operation's Run directly.
func NewArgs(supplied map[string]any, defaults map[string]any) Args {
	return Args{supplied: supplied, defaults: defaults}
}

// Lookup returns the value supplied for name and whether it was
// supplied at all.
func (a Args) Lookup(name string) (any, bool) {
	value, ok := a.supplied[name]
	return value, ok
}

// Has reports whether name was supplied.
func (a Args) Has(name string) bool {
	_, ok := a.supplied[name]
	return ok
}

// Value returns the supplied value, else the declared default, else nil.
func (a Args) Value(name string) any {
	if value, ok := a.supplied[name]; ok {
		return value
	}
	return a.defaults[name]
}

// Supplied returns the names of the supplied arguments in sorted order.
func (a Args) Supplied() []string {
	names := make([]string, 0, len(a.supplied))
	for name := range a.supplied {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns name as a string, or "".
func (a Args) String(name string) string {
	value, _ := a.Value(name).(string)
	return value
}

// Int returns name as an int, or 0.
func (a Args) Int(name string) int {
	value, _ := a.Value(name).(int)
	return value
}

// Float returns name as a float64, or 0.
func (a Args) Float(name string) float64 {
	value, _ := a.Value(name).(float64)
	return value
}

// Bool returns name as a bool, or false.
func (a Args) Bool(name string) bool {
	value, _ := a.Value(name).(bool)
	return value
}

// List returns a list, tuple, or set argument, or nil.
func (a Args) List(name string) []any {
	value, _ := a.Value(name).([]any)
	return value
}

// Map returns a map argument, or nil.
func (a Args) Map(name string) map[string]any {
	value, _ := a.Value(name).(map[string]any)
	return value
}
